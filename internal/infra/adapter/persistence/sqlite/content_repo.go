package sqlite

import (
	"context"
	"fmt"

	"recruitpro/internal/domain/entity"
	"recruitpro/internal/query"
	"recruitpro/internal/repository"
)

const contentColumns = `id, type, title, slug, excerpt, status, author_name,
published_at, modified_at, company, location, employment_type,
salary_min, salary_max, featured, remote`

type ContentRepo struct {
	db           DBTX
	queryBuilder *ContentQueryBuilder
}

func NewContentRepo(db DBTX) *ContentRepo {
	return &ContentRepo{db: db, queryBuilder: NewContentQueryBuilder()}
}

var (
	_ repository.ContentRepository = (*ContentRepo)(nil)
	_ repository.ContentWriter     = (*ContentRepo)(nil)
)

func (repo *ContentRepo) Find(ctx context.Context, d query.Descriptor, offset, limit int) ([]*entity.Content, error) {
	where, args := repo.queryBuilder.BuildWhereClause(d)
	q := "SELECT " + contentColumns + "\nFROM contents\n" + where + "\n" +
		repo.queryBuilder.BuildOrderClause(d) + "\nLIMIT ? OFFSET ?"
	args = append(args, limit, offset)

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

func (repo *ContentRepo) Count(ctx context.Context, d query.Descriptor) (int64, error) {
	where, args := repo.queryBuilder.BuildWhereClause(d)

	rows, err := repo.db.QueryContext(ctx, "SELECT COUNT(*) FROM contents "+where, args...)
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

func (repo *ContentRepo) Create(ctx context.Context, c *entity.Content) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	res, err := repo.db.ExecContext(ctx, `
INSERT INTO contents (type, title, slug, excerpt, status, author_name, published_at, modified_at,
    company, location, employment_type, salary_min, salary_max, featured, remote)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.Type, c.Title, c.Slug, c.Excerpt, c.Status, c.AuthorName, c.PublishedAt, c.ModifiedAt,
		c.Company, c.Location, c.EmploymentType, c.SalaryMin, c.SalaryMax, c.Featured, c.Remote)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	if c.ID, err = res.LastInsertId(); err != nil {
		return fmt.Errorf("Create: LastInsertId: %w", err)
	}

	for _, term := range c.Terms {
		if _, err := repo.db.ExecContext(ctx,
			`INSERT OR IGNORE INTO content_terms (content_id, taxonomy, slug, name) VALUES (?, ?, ?, ?)`,
			c.ID, term.Taxonomy, term.Slug, term.Name); err != nil {
			return fmt.Errorf("Create: term: %w", err)
		}
	}
	return nil
}
