package postgres

import (
	"fmt"
	"strings"

	"recruitpro/internal/query"
)

// ContentQueryBuilder builds the WHERE and ORDER BY clauses shared by the
// COUNT and SELECT content queries. PostgreSQL flavour: ILIKE and $N
// placeholders.
type ContentQueryBuilder struct{}

// NewContentQueryBuilder creates a new query builder instance.
func NewContentQueryBuilder() *ContentQueryBuilder {
	return &ContentQueryBuilder{}
}

// orderColumns maps descriptor orderby values to columns. The descriptor is
// already sanitized; anything else falls back to published_at.
var orderColumns = map[string]string{
	query.OrderByDate:     "published_at",
	query.OrderByTitle:    "title",
	query.OrderByModified: "modified_at",
	query.OrderByID:       "id",
}

// BuildWhereClause returns the WHERE clause and its arguments for d.
// Placeholders start at $1. The status condition is always present.
func (qb *ContentQueryBuilder) BuildWhereClause(d query.Descriptor, tableAlias string) (clause string, args []interface{}) {
	col := func(name string) string {
		if tableAlias == "" {
			return name
		}
		return tableAlias + "." + name
	}
	next := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	conditions := []string{
		col("status") + " = " + next(query.StatusPublish),
		col("type") + " = " + next(d.PostType),
	}

	if d.Search != "" {
		p := next("%" + escapeLike(d.Search) + "%")
		conditions = append(conditions, fmt.Sprintf("(%s ILIKE %s OR %s ILIKE %s)", col("title"), p, col("excerpt"), p))
	}

	for _, pair := range d.TermPairs() {
		tax, slug := next(pair[0]), next(pair[1])
		conditions = append(conditions, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM content_terms ct WHERE ct.content_id = %s AND ct.taxonomy = %s AND ct.slug = %s)",
			col("id"), tax, slug))
	}

	if d.Featured != nil {
		conditions = append(conditions, col("featured")+" = "+next(*d.Featured))
	}
	if d.Remote != nil {
		conditions = append(conditions, col("remote")+" = "+next(*d.Remote))
	}

	return "WHERE " + strings.Join(conditions, " AND "), args
}

// BuildOrderClause returns the ORDER BY clause for d. The id breaks ties so
// that pages never overlap or skip rows.
func (qb *ContentQueryBuilder) BuildOrderClause(d query.Descriptor, tableAlias string) string {
	prefix := ""
	if tableAlias != "" {
		prefix = tableAlias + "."
	}
	column, ok := orderColumns[d.OrderBy]
	if !ok {
		column = "published_at"
	}
	dir := "DESC"
	if d.Order == query.OrderAsc {
		dir = "ASC"
	}
	if column == "id" {
		return fmt.Sprintf("ORDER BY %sid %s", prefix, dir)
	}
	return fmt.Sprintf("ORDER BY %s%s %s, %sid %s", prefix, column, dir, prefix, dir)
}

// escapeLike escapes the LIKE wildcards % and _ and the escape character.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
