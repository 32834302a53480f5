package services

import (
	"context"
	"errors"
	"fmt"
	"journal-catalog/app/server/models"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ArticleService struct {
	db *gorm.DB
	l  *zap.Logger
}

func NewArticleService(db *gorm.DB, l *zap.Logger) *ArticleService {
	return &ArticleService{
		db: db,
		l:  l,
	}
}

// ArticleSubmission 是一次提交携带的全部字段，文章本体加上随附的参考文献与被引记录
type ArticleSubmission struct {
	JournalTitle       string   `json:"journalTitle"`
	Title              string   `json:"title"`
	CoverImage         string   `json:"coverImage"`
	Volume             string   `json:"volume"`
	Part               string   `json:"part"`
	Date               string   `json:"date"`
	Authors            []string `json:"authors"`
	AuthorsUniversity  []string `json:"authors_university"`
	Link               string   `json:"link"`
	Highlight          []string `json:"highlight"`
	Introduction       string   `json:"introduction"`
	Abstract           string   `json:"abstract"`
	IssueTitle         string   `json:"issue_title"`
	IssueAuthorDetails string   `json:"issue_author_details"`

	ReferenceAuthor string `json:"reference_author"`
	ReferenceTitle  string `json:"reference_title"`
	ReferenceHost   string `json:"reference_host"`

	CitedTitle string `json:"cited_title"`
	CitedHost  string `json:"cited_host"`
}

type SubmitResult struct {
	Article   *models.Article
	Reference *models.Reference
	Cited     *models.Cited
	Created   bool // true 表示新建，false 表示覆盖已有文章
}

// 整体替换时使用的文章标量列，不含 id
var articleScalarColumns = []string{
	"journal_title", "title", "cover_image", "volume", "part", "date",
	"authors", "authors_university", "link", "highlight",
	"introduction", "abstract", "issue_title", "issue_author_details",
}

func (sub *ArticleSubmission) validate() error {
	required := []struct {
		name  string
		empty bool
	}{
		{"journalTitle", sub.JournalTitle == ""},
		{"title", strings.TrimSpace(sub.Title) == ""},
		{"coverImage", sub.CoverImage == ""},
		{"volume", sub.Volume == ""},
		{"part", sub.Part == ""},
		{"date", sub.Date == ""},
		{"authors", len(sub.Authors) == 0},
		{"authors_university", len(sub.AuthorsUniversity) == 0},
		{"link", sub.Link == ""},
		{"highlight", len(sub.Highlight) == 0},
		{"introduction", sub.Introduction == ""},
		{"abstract", sub.Abstract == ""},
		{"reference_author", sub.ReferenceAuthor == ""},
		{"reference_title", sub.ReferenceTitle == ""},
		{"reference_host", sub.ReferenceHost == ""},
	}
	for _, field := range required {
		if field.empty {
			return fmt.Errorf("missing required field %s: %w", field.name, ErrValidation)
		}
	}

	if _, err := time.Parse("2006-01-02", sub.Date); err != nil {
		return fmt.Errorf("date must be YYYY-MM-DD: %w", ErrValidation)
	}

	return nil
}

func (sub *ArticleSubmission) apply(article *models.Article, title string) {
	article.JournalTitle = sub.JournalTitle
	article.Title = title
	article.CoverImage = sub.CoverImage
	article.Volume = sub.Volume
	article.Part = sub.Part
	article.Date = sub.Date
	article.Authors = pq.StringArray(sub.Authors)
	article.AuthorsUniversity = pq.StringArray(sub.AuthorsUniversity)
	article.Link = sub.Link
	article.Highlight = pq.StringArray(sub.Highlight)
	article.Introduction = sub.Introduction
	article.Abstract = sub.Abstract
	article.IssueTitle = sub.IssueTitle
	article.IssueAuthorDetails = sub.IssueAuthorDetails
}

// Submit 是文章写入的唯一入口：按去除空白后的标题创建或整体覆盖文章，
// 并在同一事务里协调参考文献与被引记录，保证三张表要么全部落地要么全部回滚。
func (s *ArticleService) Submit(ctx context.Context, sub *ArticleSubmission) (*SubmitResult, error) {
	// 校验在任何持久化操作之前完成
	if err := sub.validate(); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(sub.Title)

	res := &SubmitResult{}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		article, created, err := upsertArticleRow(tx, title, sub)
		if err != nil {
			return err
		}

		reference, err := reconcileReference(tx, article.ID, sub)
		if err != nil {
			return err
		}

		cited, err := reconcileCited(tx, article.ID, sub)
		if err != nil {
			return err
		}

		res.Article = article
		res.Reference = reference
		res.Cited = cited
		res.Created = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

// upsertArticleRow 按标题查找或插入文章行。插入包在保存点里，
// 并发提交撞上标题唯一索引时不会污染外层事务，输掉竞争的一方改读赢家的行走更新。
func upsertArticleRow(tx *gorm.DB, title string, sub *ArticleSubmission) (*models.Article, bool, error) {
	var article models.Article
	err := tx.First(&article, "title = ?", title).Error
	if err == nil {
		return &article, false, replaceScalars(tx, &article, title, sub)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("find article by title: %w", err)
	}

	fresh := models.Article{}
	sub.apply(&fresh, title)
	err = tx.Transaction(func(tx2 *gorm.DB) error {
		return tx2.Create(&fresh).Error
	})
	if err == nil {
		return &fresh, true, nil
	}
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, false, fmt.Errorf("create article: %w", err)
	}

	// 输掉了插入竞争，赢家的行此刻已经可见
	if err := tx.First(&article, "title = ?", title).Error; err != nil {
		return nil, false, fmt.Errorf("reread article after duplicate title: %w", err)
	}
	return &article, false, replaceScalars(tx, &article, title, sub)
}

// replaceScalars 用提交内容整体覆盖文章的标量列，选中的列即使是零值也会写入
func replaceScalars(tx *gorm.DB, article *models.Article, title string, sub *ArticleSubmission) error {
	sub.apply(article, title)
	if err := tx.Model(article).Select(articleScalarColumns).Updates(article).Error; err != nil {
		return fmt.Errorf("update article: %w", err)
	}
	return nil
}

func reconcileReference(tx *gorm.DB, articleID uuid.UUID, sub *ArticleSubmission) (*models.Reference, error) {
	overwrite := func(ref *models.Reference) error {
		ref.ReferenceAuthor = sub.ReferenceAuthor
		ref.ReferenceTitle = sub.ReferenceTitle
		ref.ReferenceHost = sub.ReferenceHost
		if err := tx.Model(ref).Select("reference_author", "reference_title", "reference_host").Updates(ref).Error; err != nil {
			return fmt.Errorf("update reference: %w", err)
		}
		return nil
	}

	var ref models.Reference
	err := tx.First(&ref, "article_id = ?", articleID).Error
	if err == nil {
		return &ref, overwrite(&ref)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find reference: %w", err)
	}

	fresh := models.Reference{
		ReferenceAuthor: sub.ReferenceAuthor,
		ReferenceTitle:  sub.ReferenceTitle,
		ReferenceHost:   sub.ReferenceHost,
		ArticleID:       articleID,
	}
	err = tx.Transaction(func(tx2 *gorm.DB) error {
		return tx2.Create(&fresh).Error
	})
	if err == nil {
		return &fresh, nil
	}
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, fmt.Errorf("create reference: %w", err)
	}

	// 并发提交抢先建好了这篇文章的记录，改走覆盖
	if err := tx.First(&ref, "article_id = ?", articleID).Error; err != nil {
		return nil, fmt.Errorf("reread reference: %w", err)
	}
	return &ref, overwrite(&ref)
}

func reconcileCited(tx *gorm.DB, articleID uuid.UUID, sub *ArticleSubmission) (*models.Cited, error) {
	overwrite := func(cited *models.Cited) error {
		cited.CitedTitle = sub.CitedTitle
		cited.CitedHost = sub.CitedHost
		if err := tx.Model(cited).Select("cited_title", "cited_host").Updates(cited).Error; err != nil {
			return fmt.Errorf("update cited: %w", err)
		}
		return nil
	}

	var cited models.Cited
	err := tx.First(&cited, "article_id = ?", articleID).Error
	if err == nil {
		return &cited, overwrite(&cited)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find cited: %w", err)
	}

	// cited 字段可以为空，仍然保留一条随附记录
	fresh := models.Cited{
		CitedTitle: sub.CitedTitle,
		CitedHost:  sub.CitedHost,
		ArticleID:  articleID,
	}
	err = tx.Transaction(func(tx2 *gorm.DB) error {
		return tx2.Create(&fresh).Error
	})
	if err == nil {
		return &fresh, nil
	}
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, fmt.Errorf("create cited: %w", err)
	}

	if err := tx.First(&cited, "article_id = ?", articleID).Error; err != nil {
		return nil, fmt.Errorf("reread cited: %w", err)
	}
	return &cited, overwrite(&cited)
}

// List 返回全部文章，最近更新的排在最前
func (s *ArticleService) List(ctx context.Context) ([]models.Article, error) {
	var articles []models.Article
	if err := s.db.WithContext(ctx).
		Preload("Reference").
		Preload("Cited").
		Order("updated_at DESC, created_at DESC").
		Find(&articles).Error; err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}

func (s *ArticleService) Get(ctx context.Context, id uuid.UUID) (*models.Article, error) {
	var article models.Article
	if err := s.db.WithContext(ctx).
		Preload("Reference").
		Preload("Cited").
		First(&article, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find article: %w", err)
	}
	return &article, nil
}

func (s *ArticleService) FindByTitle(ctx context.Context, title string) (*models.Article, error) {
	var article models.Article
	if err := s.db.WithContext(ctx).
		Preload("Reference").
		Preload("Cited").
		First(&article, "title = ?", strings.TrimSpace(title)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find article by title: %w", err)
	}
	return &article, nil
}

// Delete 删除文章并连带删除随附的参考文献与被引记录，不留孤儿行
func (s *ArticleService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var article models.Article
		if err := tx.First(&article, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("find article: %w", err)
		}

		if err := tx.Where("article_id = ?", id).Delete(&models.Reference{}).Error; err != nil {
			return fmt.Errorf("delete reference: %w", err)
		}
		if err := tx.Where("article_id = ?", id).Delete(&models.Cited{}).Error; err != nil {
			return fmt.Errorf("delete cited: %w", err)
		}
		if err := tx.Delete(&article).Error; err != nil {
			return fmt.Errorf("delete article: %w", err)
		}
		return nil
	})
}
