package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"journal-catalog/app/server/constants"
	"journal-catalog/app/server/models"
	"journal-catalog/app/server/services"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type articleListResponse struct {
	Articles []models.Article `json:"articles"`
}

type articleResponse struct {
	Article *models.Article `json:"article"`
}

func (a *App) ArticleList(c echo.Context) error {
	rctx := c.Request().Context()

	articles, err := a.articles.List(rctx)
	if err != nil {
		a.l.Error("failed to list articles", zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Server error")
	}

	return c.JSON(http.StatusOK, &articleListResponse{
		Articles: articles,
	})
}

func (a *App) ArticleGet(c echo.Context) error {
	rctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return a.er(c, http.StatusNotFound, "Article not found")
	}

	// 查询缓存
	cacheKey := fmt.Sprintf(constants.CacheKeyArticle, id)
	if cacheBytes := a.cacheGet(rctx, cacheKey); cacheBytes != nil {
		return c.JSONBlob(http.StatusOK, cacheBytes)
	}

	// 查询数据库
	article, err := a.articles.Get(rctx, id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return a.er(c, http.StatusNotFound, "Article not found")
		}
		a.l.Error("failed to get article", zap.String("id", id.String()), zap.Error(err))
		return a.er(c, http.StatusInternalServerError, "Server error")
	}

	// 格式化并加入缓存，方便下一次查询
	res := &articleResponse{Article: article}
	if cacheBytes, err := json.Marshal(res); err != nil {
		a.l.Error("failed to marshal article", zap.String("id", id.String()), zap.Error(err))
	} else {
		a.cacheSet(rctx, cacheKey, cacheBytes, constants.CacheExpireArticle)
		return c.JSONBlob(http.StatusOK, cacheBytes)
	}

	return c.JSON(http.StatusOK, res)
}
