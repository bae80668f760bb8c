package listing

import (
	"bytes"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"recruitpro/internal/common/pagination"
	"recruitpro/internal/handler/http/device"
	"recruitpro/internal/handler/http/respond"
	"recruitpro/internal/handler/http/session"
	"recruitpro/internal/observability/logging"
	"recruitpro/internal/query"
	"recruitpro/internal/render"
	"recruitpro/internal/security/nonce"
	"recruitpro/internal/settings"
	listingUC "recruitpro/internal/usecase/listing"
)

// servePage renders page n of an archive. The page comes from the
// "/page/{page}" segment; filters come from the query string and are
// sanitized like any other client-supplied descriptor.
func (h *Handler) servePage(a archive) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		start := time.Now()
		logger := logging.WithRequestID(ctx, h.logger())

		prov, err := h.Settings.Provider(ctx)
		if err != nil {
			logger.Error("failed to load settings", slog.Any("error", err))
			respond.SafeError(w, http.StatusInternalServerError, err)
			return
		}

		page, paged := pagination.PageFromRequest(r)
		d := query.FromValues(r.URL.Query(), a.PostType).WithPage(page)

		res, err := h.Listing.Page(ctx, d, prov.PerPage(a.PostType))
		if err != nil {
			logger.Error("failed to load listing",
				slog.String("post_type", a.PostType),
				slog.Int("page", page),
				slog.Any("error", err))
			pagination.RecordRequest(http.StatusInternalServerError, page, a.PostType)
			respond.SafeError(w, http.StatusInternalServerError, err)
			return
		}

		body, err := h.renderPage(r, a, prov, res, paged)
		if err != nil {
			logger.Error("failed to render listing", slog.Any("error", err))
			pagination.RecordError("render")
			respond.SafeError(w, http.StatusInternalServerError, err)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Content-Length", strconv.Itoa(body.Len()))
		w.WriteHeader(http.StatusOK)
		_, _ = body.WriteTo(w)

		pagination.RecordRequest(http.StatusOK, page, a.PostType)
		pagination.RecordDuration("page", time.Since(start).Seconds())
	}
}

func (h *Handler) renderPage(r *http.Request, a archive, prov settings.Provider, res *listingUC.Result, paged bool) (*bytes.Buffer, error) {
	meta := res.Meta

	style := pagination.SelectStyle(settings.StyleInput(prov, device.IsMobile(r), paged))
	pagination.RecordStyle(style)

	token, err := h.Nonces.Issue(nonce.ActionPagination, session.FromContext(r.Context()))
	if err != nil {
		return nil, fmt.Errorf("issue nonce: %w", err)
	}

	cards, err := h.Renderer.Cards().Render(res.Items)
	if err != nil {
		return nil, err
	}

	nav, err := h.Renderer.Pagination(render.PaginationView{
		Style:    style,
		AJAX:     prov.AJAXEnabled(),
		PostType: a.PostType,
		Numbers: render.NumbersView{
			Current:     meta.Page,
			TotalPages:  meta.TotalPages,
			TotalItems:  meta.Total,
			PerPage:     meta.Limit,
			ShowInfo:    prov.ShowInfo(),
			Window:      pagination.WindowOptions{MidSize: prov.MidSize(), EndSize: prov.EndSize()},
			PrevText:    prov.PrevText(),
			NextText:    prov.NextText(),
			BaseURL:     a.BaseURL,
			QueryString: res.Query.FilterValues().Encode(),
		},
		Trigger: render.TriggerView{
			Current:    meta.Page,
			TotalPages: meta.TotalPages,
			PostType:   a.PostType,
			Query:      res.Query,
			Nonce:      token,
			Text:       prov.LoadMoreText(),
		},
	})
	if err != nil {
		return nil, err
	}

	var head template.HTML
	if prov.SEOLinks() {
		head, err = h.Renderer.HeadLinks(meta.Page, meta.TotalPages, h.SiteURL, a.BaseURL)
		if err != nil {
			return nil, err
		}
	}

	title := a.Title
	if meta.Page > 1 {
		title = fmt.Sprintf("%s – Page %d", a.Title, meta.Page)
	}

	var buf bytes.Buffer
	err = h.Renderer.Page(&buf, render.PageView{
		Title:      title,
		PostType:   a.PostType,
		HeadLinks:  head,
		Items:      render.Fragment(cards),
		Pagination: nav,
		AJAXURL:    a.AJAXURL,
		Nonce:      token,
	})
	if err != nil {
		return nil, err
	}
	return &buf, nil
}
