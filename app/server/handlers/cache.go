package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// 缓存只是加速，任何缓存故障都只记录日志，不影响请求本身

func (a *App) cacheGet(ctx context.Context, key string) []byte {
	if a.rdb == nil {
		return nil
	}
	cacheBytes, err := a.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			a.l.Error("failed to query cache", zap.String("key", key), zap.Error(err))
		}
		return nil
	}
	return cacheBytes
}

func (a *App) cacheSet(ctx context.Context, key string, value []byte, expire time.Duration) {
	if a.rdb == nil {
		return
	}
	if err := a.rdb.Set(ctx, key, value, expire).Err(); err != nil {
		a.l.Error("failed to set cache", zap.String("key", key), zap.Error(err))
	}
}

func (a *App) cacheDel(ctx context.Context, key string) {
	if a.rdb == nil {
		return
	}
	if err := a.rdb.Del(ctx, key).Err(); err != nil {
		a.l.Error("failed to delete cache", zap.String("key", key), zap.Error(err))
	}
}
