package handlers

import (
	"errors"
	"fmt"
	"journal-catalog/app/server/constants"
	"journal-catalog/app/server/jwt"
	"journal-catalog/app/server/models"
	"journal-catalog/app/server/services"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

var articleSubmitCounter = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "catalog_articles_submitted_total",
		Help: "Total number of article submissions, by result.",
	},
	[]string{"result"},
)

func init() {
	prometheus.MustRegister(articleSubmitCounter)
}

type articleSubmitResponse struct {
	Message   string            `json:"message"`
	Article   *models.Article   `json:"article"`
	Reference *models.Reference `json:"reference"`
	Cited     *models.Cited     `json:"cited"`
}

func (a *App) ArticleSubmit(c echo.Context) error {
	rctx := c.Request().Context()

	// 绑定请求体
	var req services.ArticleSubmission
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind json body", zap.Error(err))
		return a.er(c, http.StatusBadRequest, "All required fields are missing or invalid")
	}

	res, err := a.articles.Submit(rctx, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			return a.er(c, http.StatusBadRequest, "All required fields are missing or invalid")
		case errors.Is(err, services.ErrConflict):
			return a.er(c, http.StatusConflict, "Article with this title already exists")
		default:
			a.l.Error("failed to submit article", zap.Error(err))
			return a.er(c, http.StatusInternalServerError, "Server error")
		}
	}

	// 写入成功，旧缓存作废
	a.cacheDel(rctx, fmt.Sprintf(constants.CacheKeyArticle, res.Article.ID))

	result := "updated"
	statusCode := http.StatusOK
	message := "Article updated successfully"
	if res.Created {
		result = "created"
		statusCode = http.StatusCreated
		message = "Article created successfully"
	}
	articleSubmitCounter.WithLabelValues(result).Inc()

	if admin, ok := c.Get("user").(*jwt.Admin); ok {
		a.l.Info("article submitted",
			zap.String("title", res.Article.Title),
			zap.String("result", result),
			zap.String("admin", admin.Username),
		)
	}

	return c.JSON(statusCode, &articleSubmitResponse{
		Message:   message,
		Article:   res.Article,
		Reference: res.Reference,
		Cited:     res.Cited,
	})
}
