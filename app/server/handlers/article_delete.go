package handlers

import (
	"errors"
	"fmt"
	"journal-catalog/app/server/constants"
	"journal-catalog/app/server/services"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type articleDeleteResponse struct {
	Message string `json:"message"`
}

func (a *App) ArticleDelete(c echo.Context) error {
	rctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return a.er(c, http.StatusNotFound, "Article not found")
	}

	if err := a.articles.Delete(rctx, id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return a.er(c, http.StatusNotFound, "Article not found")
		}
		a.l.Error("failed to delete article", zap.String("id", id.String()), zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Server error")
	}

	a.cacheDel(rctx, fmt.Sprintf(constants.CacheKeyArticle, id))

	return c.JSON(http.StatusOK, &articleDeleteResponse{
		Message: "Article deleted successfully",
	})
}
