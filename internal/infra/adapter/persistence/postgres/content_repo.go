package postgres

import (
	"context"
	"fmt"

	"recruitpro/internal/domain/entity"
	"recruitpro/internal/query"
	"recruitpro/internal/repository"
)

const contentColumns = `c.id, c.type, c.title, c.slug, c.excerpt, c.status, c.author_name,
c.published_at, c.modified_at, c.company, c.location, c.employment_type,
c.salary_min, c.salary_max, c.featured, c.remote`

type ContentRepo struct {
	db           DBTX
	queryBuilder *ContentQueryBuilder
}

func NewContentRepo(db DBTX) *ContentRepo {
	return &ContentRepo{
		db:           db,
		queryBuilder: NewContentQueryBuilder(),
	}
}

var (
	_ repository.ContentRepository = (*ContentRepo)(nil)
	_ repository.ContentWriter     = (*ContentRepo)(nil)
)

// Find returns one page of published content matching d.
func (repo *ContentRepo) Find(ctx context.Context, d query.Descriptor, offset, limit int) ([]*entity.Content, error) {
	where, args := repo.queryBuilder.BuildWhereClause(d, "c")
	order := repo.queryBuilder.BuildOrderClause(d, "c")
	args = append(args, limit, offset)

	q := fmt.Sprintf(`
SELECT %s
FROM contents c
%s
%s
LIMIT $%d OFFSET $%d`, contentColumns, where, order, len(args)-1, len(args))

	rows, err := repo.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("Find: %w", err)
	}
	defer func() { _ = rows.Close() }()

	items := make([]*entity.Content, 0, limit)
	for rows.Next() {
		var c entity.Content
		if err := rows.Scan(&c.ID, &c.Type, &c.Title, &c.Slug, &c.Excerpt, &c.Status, &c.AuthorName,
			&c.PublishedAt, &c.ModifiedAt, &c.Company, &c.Location, &c.EmploymentType,
			&c.SalaryMin, &c.SalaryMax, &c.Featured, &c.Remote); err != nil {
			return nil, fmt.Errorf("Find: Scan: %w", err)
		}
		items = append(items, &c)
	}
	return items, rows.Err()
}

// Count returns the number of published items matching d.
func (repo *ContentRepo) Count(ctx context.Context, d query.Descriptor) (int64, error) {
	where, args := repo.queryBuilder.BuildWhereClause(d, "c")
	q := "SELECT COUNT(*) FROM contents c " + where

	rows, err := repo.db.QueryContext(ctx, q, args...)
	if err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var count int64
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			return 0, fmt.Errorf("Count: Scan: %w", err)
		}
	}
	return count, rows.Err()
}

// Create inserts c and its terms and sets c.ID.
func (repo *ContentRepo) Create(ctx context.Context, c *entity.Content) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	const insert = `
INSERT INTO contents (type, title, slug, excerpt, status, author_name, published_at, modified_at,
    company, location, employment_type, salary_min, salary_max, featured, remote)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
RETURNING id`
	err := repo.db.QueryRowContext(ctx, insert,
		c.Type, c.Title, c.Slug, c.Excerpt, c.Status, c.AuthorName, c.PublishedAt, c.ModifiedAt,
		c.Company, c.Location, c.EmploymentType, c.SalaryMin, c.SalaryMax, c.Featured, c.Remote,
	).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}

	const insertTerm = `
INSERT INTO content_terms (content_id, taxonomy, slug, name)
VALUES ($1, $2, $3, $4)
ON CONFLICT DO NOTHING`
	for _, term := range c.Terms {
		if _, err := repo.db.ExecContext(ctx, insertTerm, c.ID, term.Taxonomy, term.Slug, term.Name); err != nil {
			return fmt.Errorf("Create: term: %w", err)
		}
	}
	return nil
}
