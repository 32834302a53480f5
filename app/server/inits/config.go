package inits

import (
	"fmt"
	"journal-catalog/app/server/config"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

func Config() (cfg *config.Config, err error) {
	// 本地开发时允许用 .env 文件提供环境变量，文件不存在也没关系
	_ = godotenv.Load()

	cfg = &config.Config{}

	{
		mode, exist := os.LookupEnv("MODE")
		cfg.System.IsProd = exist && strings.HasPrefix(strings.ToLower(mode), "p")
	}

	if listen, exist := os.LookupEnv("LISTEN"); !exist {
		cfg.System.Listen = ":1323" // 默认监听地址
	} else {
		cfg.System.Listen = listen
	}

	if dbconn, exist := os.LookupEnv("DB_CONN"); !exist {
		return nil, fmt.Errorf("DB_CONN environment variable not set")
	} else {
		cfg.System.DBConnectionString = dbconn
	}

	// 缓存是可选能力，没有配置就直接打数据库
	cfg.System.RedisConnectionString = os.Getenv("REDIS_CONN")

	if sigsk, exist := os.LookupEnv("JWT_SECRET"); !exist {
		return nil, fmt.Errorf("JWT_SECRET environment variable not set")
	} else {
		cfg.Security.SignatureSecretKey = sigsk
	}

	// 初始管理员，只在管理员表为空时使用
	cfg.Seed.AdminName = os.Getenv("SEED_ADMIN_NAME")
	cfg.Seed.AdminUsername = os.Getenv("SEED_ADMIN_USERNAME")
	cfg.Seed.AdminPassword = os.Getenv("SEED_ADMIN_PASSWORD")

	return cfg, nil
}
