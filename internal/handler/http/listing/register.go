package listing

import (
	"net/http"

	"recruitpro/internal/query"
)

// Fetch endpoints. Both take the same form; the jobs variant always serves
// jobs and reports total_jobs.
const (
	FetchPath     = "/ajax/load-more"
	JobsFetchPath = "/ajax/load-more-jobs"
)

// Register mounts the listing pages on mux. The fetch endpoints are wrapped
// with guard (the rate limiter); a nil guard mounts them as they are.
func Register(mux *http.ServeMux, h *Handler, guard func(http.Handler) http.Handler) {
	if guard == nil {
		guard = func(next http.Handler) http.Handler { return next }
	}

	for _, a := range []archive{jobsArchive, blogArchive} {
		page := h.servePage(a)
		mux.Handle("GET "+a.BaseURL, page)
		mux.Handle("GET "+a.BaseURL+"/page/{page}", page)
	}

	mux.Handle("POST "+FetchPath, guard(h.serveFetch("")))
	mux.Handle("POST "+JobsFetchPath, guard(h.serveFetch(query.TypeJob)))
}
