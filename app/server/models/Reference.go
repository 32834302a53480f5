package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Reference struct {
	ID        uuid.UUID `gorm:"column:reference_id;type:uuid;primaryKey" json:"reference_id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	ReferenceAuthor string `gorm:"column:reference_author" json:"reference_author"`
	ReferenceTitle  string `gorm:"column:reference_title" json:"reference_title"`
	ReferenceHost   string `gorm:"column:reference_host" json:"reference_host"`

	// 所属文章，唯一索引保证每篇文章至多一条
	ArticleID uuid.UUID `gorm:"column:article_id;type:uuid;uniqueIndex" json:"articleId"`
}

func (r *Reference) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
