package handlers

import (
	"journal-catalog/app/server/jwt"
	"journal-catalog/app/server/services"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	l   *zap.Logger   // 日志
	db  *gorm.DB      // 数据库
	rdb *redis.Client // Redis ，可以为 nil （不启用缓存）
	jwt *jwt.JWT      // JWT ，用于无状态验证

	articles *services.ArticleService
	admins   *services.AdminService
}

func NewApp(l *zap.Logger, db *gorm.DB, rdb *redis.Client, j *jwt.JWT) *App {
	return &App{
		l:   l,
		db:  db,
		rdb: rdb,
		jwt: j,

		articles: services.NewArticleService(db, l),
		admins:   services.NewAdminService(db, l),
	}
}
