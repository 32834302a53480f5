package main

import (
	"fmt"
	"journal-catalog/app/server/handlers"
	"journal-catalog/app/server/inits"
	"journal-catalog/app/server/jwt"
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	// 初始化配置
	cfg, err := inits.Config()
	if err != nil {
		log.Fatal(fmt.Errorf("error loading config: %w", err))
	}

	// 初始化日志
	l, err := inits.Logger(!cfg.System.IsProd)
	if err != nil {
		log.Fatal(fmt.Errorf("error initializing logger: %w", err))
	}

	// 切换日志系统
	l.Debug("logger initialized")

	// 初始化数据库连接
	db, err := inits.DB(cfg)
	if err != nil {
		l.Fatal("error initializing DB connection", zap.Error(err))
	}

	// 初始化 redis 连接（可选）
	rdb, err := inits.Redis(cfg.System.RedisConnectionString)
	if err != nil {
		l.Fatal("error initializing Redis connection", zap.Error(err))
	}
	if rdb == nil {
		l.Info("redis not configured, article cache disabled")
	}

	// 初始化 JWT
	j, err := jwt.New(cfg.Security.SignatureSecretKey)
	if err != nil {
		l.Fatal("error initializing JWT", zap.Error(err))
	}

	// 准备 handler app
	handlerApp := handlers.NewApp(l, db, rdb, j)

	// 准备 echo 服务
	e := echo.New()
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			l.Info("request",
				zap.String("URI", v.URI),
				zap.Int("status", v.Status),
			)

			return nil
		},
	}))
	e.Use(middleware.Recover())

	// 绑定 echo 服务
	handlers.Register(e, handlerApp, j)

	// 启动 echo 服务
	if err := e.Start(cfg.System.Listen); err != nil {
		l.Fatal("shutting down the server", zap.Error(err))
	}
}
