package handlers

import (
	"journal-catalog/app/server/jwt"
	"journal-catalog/app/server/middlewares"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func Register(e *echo.Echo, a *App, j *jwt.JWT) {
	adminAuth := middlewares.AdminAuth(j)

	e.GET("/", a.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.POST("/login", a.AuthLogin)
	e.POST("/admin", a.AdminCreate)

	e.GET("/articles", a.ArticleList)
	e.GET("/articles/:id", a.ArticleGet)

	// 写操作需要携带有效的管理员 token
	e.POST("/articles", a.ArticleSubmit, adminAuth)
	e.DELETE("/articles/:id", a.ArticleDelete, adminAuth)
}
