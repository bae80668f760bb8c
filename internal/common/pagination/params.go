package pagination

import (
	"net/http"
	"strconv"
	"strings"
)

// Params represents the page being requested and its size.
type Params struct {
	Page  int // 1-based page number
	Limit int // Items per page
}

// ParsePage coerces a raw page value into a valid 1-based page number.
// Anything that is not a positive integer becomes 1; the fetch endpoints never
// reject a request because of a bad page value.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// PageFromRequest reads the page number of a listing request. The
// "/page/{page}" path segment wins over the "paged" query parameter.
// The second return value reports whether the request addressed a
// sub-page explicitly (page 2 or later).
func PageFromRequest(r *http.Request) (int, bool) {
	raw := r.PathValue("page")
	if raw == "" {
		raw = r.URL.Query().Get("paged")
	}
	if raw == "" {
		return 1, false
	}
	page := ParsePage(raw)
	return page, page > 1
}
