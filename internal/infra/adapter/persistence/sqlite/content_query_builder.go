package sqlite

import (
	"strings"

	"recruitpro/internal/query"
)

// ContentQueryBuilder builds the WHERE and ORDER BY clauses shared by the
// COUNT and SELECT content queries.
type ContentQueryBuilder struct{}

// NewContentQueryBuilder creates a new query builder instance.
func NewContentQueryBuilder() *ContentQueryBuilder {
	return &ContentQueryBuilder{}
}

var orderColumns = map[string]string{
	query.OrderByDate:     "published_at",
	query.OrderByTitle:    "title",
	query.OrderByModified: "modified_at",
	query.OrderByID:       "id",
}

// BuildWhereClause returns the WHERE clause and its arguments for d.
// SQLite's LIKE is already case-insensitive for ASCII.
func (qb *ContentQueryBuilder) BuildWhereClause(d query.Descriptor) (clause string, args []interface{}) {
	conditions := []string{"status = ?", "type = ?"}
	args = append(args, query.StatusPublish, d.PostType)

	if d.Search != "" {
		likePattern := "%" + escapeLike(d.Search) + "%"
		conditions = append(conditions, `(title LIKE ? ESCAPE '\' OR excerpt LIKE ? ESCAPE '\')`)
		args = append(args, likePattern, likePattern)
	}

	for _, pair := range d.TermPairs() {
		conditions = append(conditions,
			"EXISTS (SELECT 1 FROM content_terms ct WHERE ct.content_id = contents.id AND ct.taxonomy = ? AND ct.slug = ?)")
		args = append(args, pair[0], pair[1])
	}

	if d.Featured != nil {
		conditions = append(conditions, "featured = ?")
		args = append(args, *d.Featured)
	}
	if d.Remote != nil {
		conditions = append(conditions, "remote = ?")
		args = append(args, *d.Remote)
	}

	return "WHERE " + strings.Join(conditions, " AND "), args
}

// BuildOrderClause returns the ORDER BY clause for d with id as tie-breaker.
func (qb *ContentQueryBuilder) BuildOrderClause(d query.Descriptor) string {
	column, ok := orderColumns[d.OrderBy]
	if !ok {
		column = "published_at"
	}
	dir := "DESC"
	if d.Order == query.OrderAsc {
		dir = "ASC"
	}
	if column == "id" {
		return "ORDER BY id " + dir
	}
	return "ORDER BY " + column + " " + dir + ", id " + dir
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
