package inits

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

func Redis(conn string) (*redis.Client, error) {
	if conn == "" {
		// 没有配置缓存，直接打数据库
		return nil, nil
	}

	opts, err := redis.ParseURL(conn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis connection string: %w", err)
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return rdb, nil
}
