// Package listing serves the job and blog archives: the server-rendered
// listing pages and the AJAX endpoints the load-more button and the
// infinite-scroll sentinel call for the next page.
package listing

import (
	"context"
	"log/slog"

	"recruitpro/internal/query"
	"recruitpro/internal/render"
	"recruitpro/internal/settings"
	listingUC "recruitpro/internal/usecase/listing"
)

// Service is the listing use case.
type Service interface {
	Page(ctx context.Context, d query.Descriptor, defaultPerPage int) (*listingUC.Result, error)
	LoadMore(ctx context.Context, d query.Descriptor, defaultPerPage int) (*listingUC.Result, error)
}

// SettingsSource returns the settings in effect for the current request.
type SettingsSource interface {
	Provider(ctx context.Context) (settings.Provider, error)
}

// Nonces issues and verifies anti-forgery tokens.
type Nonces interface {
	Issue(action, session string) (string, error)
	Verify(token, action, session string) error
}

// Handler holds the dependencies shared by every listing route.
type Handler struct {
	Listing  Service
	Settings SettingsSource
	Renderer *render.Renderer
	Nonces   Nonces
	SiteURL  string
	Logger   *slog.Logger
}

func (h *Handler) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// archive describes one listing page family.
type archive struct {
	PostType string
	BaseURL  string
	Title    string
	AJAXURL  string
}

var (
	jobsArchive = archive{PostType: query.TypeJob, BaseURL: "/jobs", Title: "Jobs", AJAXURL: JobsFetchPath}
	blogArchive = archive{PostType: query.TypePost, BaseURL: "/blog", Title: "Blog", AJAXURL: FetchPath}
)
