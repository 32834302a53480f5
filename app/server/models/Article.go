package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Article struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// 文章基础信息，标题是业务唯一键（写入前去除首尾空白），日期形如 YYYY-MM-DD
	JournalTitle string `gorm:"column:journal_title" json:"journalTitle"`
	Title        string `gorm:"column:title;uniqueIndex" json:"title"`
	CoverImage   string `gorm:"column:cover_image" json:"coverImage"`
	Volume       string `gorm:"column:volume" json:"volume"`
	Part         string `gorm:"column:part" json:"part"`
	Date         string `gorm:"column:date" json:"date"`
	Link         string `gorm:"column:link" json:"link"`

	// 作者与内容
	Authors           pq.StringArray `gorm:"column:authors;type:text[]" json:"authors"`
	AuthorsUniversity pq.StringArray `gorm:"column:authors_university;type:text[]" json:"authors_university"`
	Highlight         pq.StringArray `gorm:"column:highlight;type:text[]" json:"highlight"`
	Introduction      string         `gorm:"column:introduction;type:text" json:"introduction"`
	Abstract          string         `gorm:"column:abstract;type:text" json:"abstract"`

	// 期刊专题，可选
	IssueTitle         string `gorm:"column:issue_title" json:"issue_title"`
	IssueAuthorDetails string `gorm:"column:issue_author_details;type:text" json:"issue_author_details"`

	// 连接模型时使用，每篇文章至多各一条
	Reference *Reference `gorm:"foreignKey:ArticleID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"reference,omitempty"`
	Cited     *Cited     `gorm:"foreignKey:ArticleID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"cited,omitempty"`
}

func (a *Article) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
