// Package gormdb provides a GORM implementation of the content repository
// for PostgreSQL. It shares the schema of the postgres package and is
// selected with CONTENT_REPO=gorm.
package gormdb

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"recruitpro/internal/domain/entity"
	"recruitpro/internal/query"
	"recruitpro/internal/repository"
)

type contentRow struct {
	ID             int64 `gorm:"primaryKey"`
	Type           string
	Title          string
	Slug           string
	Excerpt        string
	Status         string
	AuthorName     string
	PublishedAt    time.Time
	ModifiedAt     time.Time
	Company        string
	Location       string
	EmploymentType string
	SalaryMin      int
	SalaryMax      int
	Featured       bool
	Remote         bool
}

func (contentRow) TableName() string { return "contents" }

type termRow struct {
	ContentID int64
	Taxonomy  string
	Slug      string
	Name      string
}

func (termRow) TableName() string { return "content_terms" }

var orderColumns = map[string]string{
	query.OrderByDate:     "published_at",
	query.OrderByTitle:    "title",
	query.OrderByModified: "modified_at",
	query.OrderByID:       "id",
}

// Open wraps an existing pool (a *sql.DB or a circuit breaker around one)
// in a GORM handle using the postgres dialect.
func Open(conn gorm.ConnPool) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("gorm open: %w", err)
	}
	return db, nil
}

type ContentRepo struct {
	db *gorm.DB
}

func NewContentRepo(db *gorm.DB) *ContentRepo {
	return &ContentRepo{db: db}
}

var (
	_ repository.ContentRepository = (*ContentRepo)(nil)
	_ repository.ContentWriter     = (*ContentRepo)(nil)
)

// scope applies the filters of d. The status condition is always present.
func (repo *ContentRepo) scope(ctx context.Context, d query.Descriptor) *gorm.DB {
	tx := repo.db.WithContext(ctx).
		Model(&contentRow{}).
		Where("status = ?", query.StatusPublish).
		Where("type = ?", d.PostType)

	if d.Search != "" {
		p := "%" + escapeLike(d.Search) + "%"
		tx = tx.Where("(title ILIKE ? OR excerpt ILIKE ?)", p, p)
	}
	for _, pair := range d.TermPairs() {
		tx = tx.Where("EXISTS (SELECT 1 FROM content_terms ct WHERE ct.content_id = contents.id AND ct.taxonomy = ? AND ct.slug = ?)",
			pair[0], pair[1])
	}
	if d.Featured != nil {
		tx = tx.Where("featured = ?", *d.Featured)
	}
	if d.Remote != nil {
		tx = tx.Where("remote = ?", *d.Remote)
	}
	return tx
}

// Find returns one page of published content matching d, ordered with the
// id as tie-breaker.
func (repo *ContentRepo) Find(ctx context.Context, d query.Descriptor, offset, limit int) ([]*entity.Content, error) {
	column, ok := orderColumns[d.OrderBy]
	if !ok {
		column = "published_at"
	}
	desc := d.Order != query.OrderAsc

	tx := repo.scope(ctx, d).Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: desc})
	if column != "id" {
		tx = tx.Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: desc})
	}

	var rows []contentRow
	if err := tx.Offset(offset).Limit(limit).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("Find: %w", err)
	}

	items := make([]*entity.Content, 0, len(rows))
	for i := range rows {
		items = append(items, rows[i].toEntity())
	}
	return items, nil
}

// Count returns the number of published items matching d.
func (repo *ContentRepo) Count(ctx context.Context, d query.Descriptor) (int64, error) {
	var n int64
	if err := repo.scope(ctx, d).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return n, nil
}

// Create inserts c and its terms in one transaction and sets c.ID.
func (repo *ContentRepo) Create(ctx context.Context, c *entity.Content) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	row := fromEntity(c)
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		if len(c.Terms) == 0 {
			return nil
		}
		terms := make([]termRow, 0, len(c.Terms))
		for _, t := range c.Terms {
			terms = append(terms, termRow{ContentID: row.ID, Taxonomy: t.Taxonomy, Slug: t.Slug, Name: t.Name})
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&terms).Error
	})
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	c.ID = row.ID
	return nil
}

func (r *contentRow) toEntity() *entity.Content {
	return &entity.Content{
		ID:             r.ID,
		Type:           r.Type,
		Title:          r.Title,
		Slug:           r.Slug,
		Excerpt:        r.Excerpt,
		Status:         r.Status,
		AuthorName:     r.AuthorName,
		PublishedAt:    r.PublishedAt,
		ModifiedAt:     r.ModifiedAt,
		Company:        r.Company,
		Location:       r.Location,
		EmploymentType: r.EmploymentType,
		SalaryMin:      r.SalaryMin,
		SalaryMax:      r.SalaryMax,
		Featured:       r.Featured,
		Remote:         r.Remote,
	}
}

func fromEntity(c *entity.Content) contentRow {
	return contentRow{
		Type:           c.Type,
		Title:          c.Title,
		Slug:           c.Slug,
		Excerpt:        c.Excerpt,
		Status:         c.Status,
		AuthorName:     c.AuthorName,
		PublishedAt:    c.PublishedAt,
		ModifiedAt:     c.ModifiedAt,
		Company:        c.Company,
		Location:       c.Location,
		EmploymentType: c.EmploymentType,
		SalaryMin:      c.SalaryMin,
		SalaryMax:      c.SalaryMax,
		Featured:       c.Featured,
		Remote:         c.Remote,
	}
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
