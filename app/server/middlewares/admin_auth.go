package middlewares

import (
	"journal-catalog/app/server/jwt"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

// AdminAuth 保护写操作：解析 Bearer token 并把管理员身份放进请求上下文，
// token 缺失、无效或过期统一返回 401
func AdminAuth(j *jwt.JWT) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			return j.ParseAdmin(auth)
		},
	})
}
