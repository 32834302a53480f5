package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Admin struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// 基础信息：显示名称长度 2-50 ，用户名全局唯一
	Name     string `gorm:"column:name" json:"name"`
	Username string `gorm:"column:username;uniqueIndex" json:"username"`

	// 登录凭据，使用 argon2id 储存，永远不落明文
	Password string `gorm:"column:password" json:"-"`
}

func (a *Admin) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
