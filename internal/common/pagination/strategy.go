package pagination

// PaginationStrategy turns request params into query bounds and result totals
// into metadata. Listing use cases depend on this interface so a keyset
// strategy can replace offsets without touching handlers.
type PaginationStrategy interface {
	CalculateQuery(params Params) QueryParams
	BuildMetadata(params Params, total int64) Metadata
}

// QueryParams represents the calculated bounds for a repository query.
type QueryParams struct {
	Offset int
	Limit  int
}

// OffsetStrategy implements LIMIT/OFFSET pagination.
type OffsetStrategy struct{}

// CalculateQuery calculates offset and limit for offset-based pagination.
func (s OffsetStrategy) CalculateQuery(params Params) QueryParams {
	return QueryParams{
		Offset: CalculateOffset(params.Page, params.Limit),
		Limit:  params.Limit,
	}
}

// BuildMetadata constructs metadata for offset-based pagination.
func (s OffsetStrategy) BuildMetadata(params Params, total int64) Metadata {
	totalPages := CalculateTotalPages(total, params.Limit)
	return Metadata{
		Total:      total,
		Page:       params.Page,
		Limit:      params.Limit,
		TotalPages: totalPages,
		HasMore:    params.Page < totalPages,
	}
}
