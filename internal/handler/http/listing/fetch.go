package listing

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/samber/lo"

	"recruitpro/internal/common/pagination"
	"recruitpro/internal/handler/http/respond"
	"recruitpro/internal/handler/http/session"
	"recruitpro/internal/observability/logging"
	"recruitpro/internal/query"
	"recruitpro/internal/security/nonce"
	listingUC "recruitpro/internal/usecase/listing"
)

// Failure messages of the fetch endpoints.
const (
	MsgSecurityCheckFailed = "Security check failed. Please reload the page."
	MsgTokenExpired        = "Your session has expired. Please reload the page."
	MsgNoMoreContent       = "No more content to load."
	MsgLoadFailed          = "Could not load more content. Please try again."
)

// fetch results recorded in the fetch counter
const (
	resultSuccess   = "success"
	resultForbidden = "forbidden"
	resultEmpty     = "empty"
	resultError     = "error"
)

// FetchResponse is the data of a successful fetch.
type FetchResponse struct {
	Content   string `json:"content"`
	Page      int    `json:"page"`
	MaxPages  int    `json:"max_pages"`
	HasMore   bool   `json:"has_more"`
	TotalJobs *int64 `json:"total_jobs,omitempty"`
}

// serveFetch handles a load-more or infinite-scroll request. The form
// carries pagination_nonce, page, post_type and query (the descriptor JSON
// the trigger embedded). forceType, when set, replaces post_type.
//
// The token is checked before anything else; a request that fails it never
// reaches the database.
func (h *Handler) serveFetch(forceType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		start := time.Now()
		logger := logging.WithRequestID(ctx, h.logger())

		postType := forceType
		if postType == "" {
			postType = r.PostFormValue("post_type")
		}
		label := postType
		if !query.KnownType(label) {
			label = "unknown"
		}

		token := r.PostFormValue("pagination_nonce")
		if err := h.Nonces.Verify(token, nonce.ActionPagination, session.FromContext(ctx)); err != nil {
			logger.Warn("pagination fetch rejected",
				slog.String("post_type", label),
				slog.String("reason", err.Error()))
			pagination.RecordFetch(label, resultForbidden)
			msg := MsgSecurityCheckFailed
			if errors.Is(err, nonce.ErrExpired) {
				msg = MsgTokenExpired
			}
			respond.Failure(w, http.StatusForbidden, msg)
			return
		}

		page := pagination.ParsePage(r.PostFormValue("page"))
		d := query.Parse(r.PostFormValue("query"), postType).WithPage(page)

		prov, err := h.Settings.Provider(ctx)
		if err != nil {
			logger.Error("failed to load settings", slog.Any("error", err))
			pagination.RecordFetch(d.PostType, resultError)
			respond.Failure(w, http.StatusInternalServerError, MsgLoadFailed)
			return
		}

		perPage := prov.PerPage(d.PostType)
		pagination.LogFetch(logger, d.PostType, pagination.Params{Page: page, Limit: lo.Ternary(d.PerPage > 0, d.PerPage, perPage)})

		res, err := h.Listing.LoadMore(ctx, d, perPage)
		switch {
		case errors.Is(err, listingUC.ErrNoMoreContent):
			pagination.RecordFetch(d.PostType, resultEmpty)
			respond.Failure(w, http.StatusOK, MsgNoMoreContent)
			return
		case err != nil:
			pagination.RecordFetch(d.PostType, resultError)
			respond.Failure(w, http.StatusInternalServerError, MsgLoadFailed)
			return
		}

		content, err := h.Renderer.Cards().Render(res.Items)
		if err != nil {
			logger.Error("failed to render cards", slog.Any("error", err))
			pagination.RecordError("render")
			pagination.RecordFetch(d.PostType, resultError)
			respond.Failure(w, http.StatusInternalServerError, MsgLoadFailed)
			return
		}

		meta := res.Meta
		out := FetchResponse{
			Content:  content,
			Page:     meta.Page,
			MaxPages: meta.TotalPages,
			HasMore:  meta.Page < meta.TotalPages,
		}
		if d.PostType == query.TypeJob {
			out.TotalJobs = lo.ToPtr(meta.Total)
		}

		pagination.RecordFetch(d.PostType, resultSuccess)
		pagination.LogFetchResult(logger, d.PostType, meta, len(res.Items), time.Since(start))
		respond.Success(w, out)
	}
}
