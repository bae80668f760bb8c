package pagination

import "math"

// MaxPage is the largest page whose offset still fits in an int for the given
// page size.
func MaxPage(limit int) int {
	if limit < 1 {
		limit = 1
	}
	return math.MaxInt / limit
}

// CalculateOffset returns the database OFFSET for a 1-based page. Pages past
// MaxPage saturate at math.MaxInt instead of wrapping negative.
//
//   - Page 1, Limit 12 -> Offset 0
//   - Page 3, Limit 12 -> Offset 24
func CalculateOffset(page, limit int) int {
	if page < 1 || limit < 1 {
		return 0
	}
	if page > MaxPage(limit) {
		return math.MaxInt
	}
	return (page - 1) * limit
}

// CalculateTotalPages returns ceil(total / limit). An empty result set still
// has one (empty) page, matching how listing pages are addressed.
func CalculateTotalPages(total int64, limit int) int {
	if total <= 0 || limit <= 0 {
		return 1
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

// InfoRange returns the 1-based positions of the first and last item shown on
// a page, for the "Showing X–Y of Z" line. The end is clamped to total. A page
// holding no items returns 0, 0.
//
//   - page 2, perPage 10, total 25 -> 11, 20
//   - page 3, perPage 10, total 25 -> 21, 25
func InfoRange(page, perPage int, total int64) (start, end int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || total <= 0 || page > CalculateTotalPages(total, perPage) {
		return 0, 0
	}
	start = (page-1)*perPage + 1
	end = page * perPage
	if int64(end) > total {
		end = int(total)
	}
	return start, end
}
