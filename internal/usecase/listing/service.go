// Package listing fetches one page of published content together with the
// pagination state derived for it.
package listing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"recruitpro/internal/common/pagination"
	"recruitpro/internal/domain/entity"
	"recruitpro/internal/observability/tracing"
	"recruitpro/internal/query"
	"recruitpro/internal/repository"
)

// ErrNoMoreContent is returned by LoadMore when the requested page is empty.
var ErrNoMoreContent = errors.New("no more content")

// Service runs listing queries. Strategy and Config may be left zero.
type Service struct {
	Repo     repository.ContentRepository
	Strategy pagination.PaginationStrategy
	Config   pagination.Config
	Logger   *slog.Logger
}

// Result is one page of content. Query is the descriptor that produced it,
// with Paged set to the page actually served.
type Result struct {
	Items []*entity.Content
	Meta  pagination.Metadata
	Query query.Descriptor
}

// Page returns page d.Paged of the content described by d. The page size is
// d.PerPage when set, otherwise defaultPerPage, clamped to Config.MaxLimit.
// A page past the end returns no items and HasMore false; a page whose offset
// would overflow is not queried at all.
func (s *Service) Page(ctx context.Context, d query.Descriptor, defaultPerPage int) (*Result, error) {
	start := time.Now()

	limit := d.PerPage
	if limit <= 0 {
		limit = defaultPerPage
	}
	params := pagination.Params{Page: d.Paged, Limit: limit}.WithDefaults(s.config())
	pastEnd := false
	if err := params.Validate(s.config()); err != nil {
		if !errors.Is(err, pagination.ErrPageOutOfRange) {
			return nil, fmt.Errorf("listing params: %w", err)
		}
		pastEnd = true
	}
	d = d.WithPage(params.Page)
	d.PostStatus = query.StatusPublish

	ctx, span := tracing.Tracer().Start(ctx, "listing.Page", trace.WithAttributes(
		attribute.String("post_type", d.PostType),
		attribute.Int("page", params.Page),
		attribute.Int("limit", params.Limit),
	))
	defer span.End()

	qp := s.strategy().CalculateQuery(params)

	var (
		total int64
		items []*entity.Content
	)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		n, err := s.Repo.Count(egCtx, d)
		if err != nil {
			return fmt.Errorf("count content: %w", err)
		}
		total = n
		return nil
	})
	if pastEnd {
		items = []*entity.Content{}
	} else {
		eg.Go(func() error {
			found, err := s.Repo.Find(egCtx, d, qp.Offset, qp.Limit)
			if err != nil {
				return fmt.Errorf("find content: %w", err)
			}
			items = found
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "listing query failed")
		pagination.RecordError("database")
		pagination.LogError(s.logger(), d.PostType, params, err, "database")
		return nil, err
	}

	meta := s.strategy().BuildMetadata(params, total)
	span.SetAttributes(
		attribute.Int64("total", total),
		attribute.Int("returned_count", len(items)),
	)
	pagination.RecordDuration("service", time.Since(start).Seconds())

	return &Result{Items: items, Meta: meta, Query: d}, nil
}

// LoadMore is Page for asynchronous fetches: an empty page is reported as
// ErrNoMoreContent instead of an empty result.
func (s *Service) LoadMore(ctx context.Context, d query.Descriptor, defaultPerPage int) (*Result, error) {
	res, err := s.Page(ctx, d, defaultPerPage)
	if err != nil {
		return nil, err
	}
	if len(res.Items) == 0 {
		return nil, ErrNoMoreContent
	}
	return res, nil
}

func (s *Service) strategy() pagination.PaginationStrategy {
	if s.Strategy != nil {
		return s.Strategy
	}
	return pagination.OffsetStrategy{}
}

func (s *Service) config() pagination.Config {
	if s.Config.MaxLimit == 0 {
		return pagination.DefaultConfig()
	}
	return s.Config
}

func (s *Service) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}
