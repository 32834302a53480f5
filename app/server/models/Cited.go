package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Cited struct {
	ID        uuid.UUID `gorm:"column:cited_id;type:uuid;primaryKey" json:"cited_id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	CitedTitle string `gorm:"column:cited_title" json:"cited_title"`
	CitedHost  string `gorm:"column:cited_host" json:"cited_host"`

	// 所属文章，唯一索引保证每篇文章至多一条
	ArticleID uuid.UUID `gorm:"column:article_id;type:uuid;uniqueIndex" json:"articleId"`
}

func (c *Cited) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
