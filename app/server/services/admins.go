package services

import (
	"context"
	"errors"
	"fmt"
	"journal-catalog/app/server/models"
	"unicode/utf8"

	"github.com/alexedwards/argon2id"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type AdminService struct {
	db *gorm.DB
	l  *zap.Logger
}

func NewAdminService(db *gorm.DB, l *zap.Logger) *AdminService {
	return &AdminService{
		db: db,
		l:  l,
	}
}

// Create 新建管理员，密码在落库前替换为 argon2id 哈希
func (s *AdminService) Create(ctx context.Context, name, username, password string) (*models.Admin, error) {
	if name == "" || username == "" || password == "" {
		return nil, fmt.Errorf("name, username and password are required: %w", ErrValidation)
	}
	if l := utf8.RuneCountInString(name); l < 2 || l > 50 {
		return nil, fmt.Errorf("name length must be between 2 and 50: %w", ErrValidation)
	}

	// 处理密码
	passwordHash, err := argon2id.CreateHash(password, argon2id.DefaultParams)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	admin := models.Admin{
		Name:     name,
		Username: username,
		Password: passwordHash,
	}
	if err := s.db.WithContext(ctx).Create(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("username %s already exists: %w", username, ErrConflict)
		}
		s.l.Error("failed to create admin", zap.String("username", username), zap.Error(err))
		return nil, fmt.Errorf("create admin: %w", err)
	}

	return &admin, nil
}

func (s *AdminService) FindByUsername(ctx context.Context, username string) (*models.Admin, error) {
	var admin models.Admin
	if err := s.db.WithContext(ctx).First(&admin, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find admin: %w", err)
	}
	return &admin, nil
}
