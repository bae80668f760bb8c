package repository

import (
	"context"

	"recruitpro/internal/domain/entity"
	"recruitpro/internal/query"
)

// ContentRepository reads published content for listing pages.
type ContentRepository interface {
	// Find returns the items matching d, ordered by d.OrderBy/d.Order with the
	// id as a tie-breaker, skipping offset rows and returning at most limit.
	// d.Paged and d.PerPage are ignored; callers pass the computed window.
	Find(ctx context.Context, d query.Descriptor, offset, limit int) ([]*entity.Content, error)
	// Count returns the total number of items matching d.
	Count(ctx context.Context, d query.Descriptor) (int64, error)
}

// ContentWriter stores content. Only the demo seeder writes.
type ContentWriter interface {
	Create(ctx context.Context, c *entity.Content) error
}
