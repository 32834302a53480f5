package inits

import (
	"fmt"
	"journal-catalog/app/server/config"
	"journal-catalog/app/server/models"

	"github.com/alexedwards/argon2id"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func DB(cfg *config.Config) (db *gorm.DB, err error) {
	// 打开连接， TranslateError 把驱动层的唯一索引冲突翻译成 gorm.ErrDuplicatedKey
	if db, err = gorm.Open(postgres.Open(cfg.System.DBConnectionString), &gorm.Config{
		TranslateError: true,
	}); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// 迁移
	if err = mig(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// 初始化启动数据
	if err = initData(db, cfg); err != nil {
		return nil, fmt.Errorf("failed to init data into database: %w", err)
	}

	// 返回
	return db, nil
}

func mig(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Admin{},
		&models.Article{},
		&models.Reference{},
		&models.Cited{},
	)
}

func initData(db *gorm.DB, cfg *config.Config) (err error) {
	// 查询现有记录数量
	var counter int64

	// 初始化管理员
	if err = db.Model(&models.Admin{}).Count(&counter).Error; err != nil {
		return fmt.Errorf("failed to get admin count: %w", err)
	} else if counter == 0 && cfg.Seed.AdminUsername != "" && cfg.Seed.AdminPassword != "" {
		// 没有任何管理员，且配置了初始账号，添加初始管理员
		// 创建密码
		var password string
		if password, err = argon2id.CreateHash(cfg.Seed.AdminPassword, argon2id.DefaultParams); err != nil {
			return fmt.Errorf("failed to generate password: %w", err)
		}

		name := cfg.Seed.AdminName
		if name == "" {
			name = "Catalog Admin"
		}

		// 插入记录
		if err = db.Create(&models.Admin{
			Name:     name,
			Username: cfg.Seed.AdminUsername,
			Password: password,
		}).Error; err != nil {
			return fmt.Errorf("failed to create seed admin: %w", err)
		}
	}

	// 已有数据或全部导入成功
	return nil
}
