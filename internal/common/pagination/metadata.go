package pagination

// Metadata is the pagination state derived for a single request. It is never
// cached; every request recomputes it from the query totals.
type Metadata struct {
	Total      int64 `json:"total"`       // Items matching the query across all pages
	Page       int   `json:"page"`        // Current page (1-based)
	Limit      int   `json:"limit"`       // Items per page
	TotalPages int   `json:"total_pages"` // ceil(Total / Limit), at least 1
	HasMore    bool  `json:"has_more"`    // Page < TotalPages
}
