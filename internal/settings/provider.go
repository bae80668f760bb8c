package settings

import (
	"strconv"

	"recruitpro/internal/common/pagination"
	"recruitpro/internal/query"
)

// Provider exposes settings as typed values. Listing code depends on this
// interface rather than on where settings are stored.
type Provider interface {
	PaginationStyle() pagination.Style
	MobileStyle() pagination.MobileStyle
	InfiniteScroll() bool
	LoadMore() bool
	AJAXEnabled() bool
	ShowInfo() bool
	SEOLinks() bool
	MidSize() int
	EndSize() int
	PerPage(postType string) int
	PrevText() string
	NextText() string
	LoadMoreText() string
}

// Snapshot is an immutable set of sanitized values. The zero value is not
// usable; build one with NewSnapshot.
type Snapshot struct {
	values map[string]string
}

var _ Provider = (*Snapshot)(nil)

// NewSnapshot layers stored values over the schema defaults. Every value is
// sanitized again, so a tampered store cannot push a setting out of range.
// Unknown keys are dropped.
func NewSnapshot(layers ...map[string]string) *Snapshot {
	values := Defaults()
	for _, layer := range layers {
		for key, raw := range layer {
			if d, ok := Lookup(key); ok {
				values[key] = d.Sanitize(raw)
			}
		}
	}
	return &Snapshot{values: values}
}

// Values returns a copy of every effective value.
func (s *Snapshot) Values() map[string]string {
	out := make(map[string]string, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// Raw returns the stored value of key, or "" for unknown keys.
func (s *Snapshot) Raw(key string) string {
	return s.values[key]
}

func (s *Snapshot) bool(key string) bool {
	b, _ := strconv.ParseBool(s.values[key])
	return b
}

func (s *Snapshot) int(key string) int {
	n, _ := strconv.Atoi(s.values[key])
	return n
}

func (s *Snapshot) PaginationStyle() pagination.Style {
	return pagination.Style(s.values[KeyStyle])
}

func (s *Snapshot) MobileStyle() pagination.MobileStyle {
	return pagination.MobileStyle(s.values[KeyMobileStyle])
}

func (s *Snapshot) InfiniteScroll() bool { return s.bool(KeyInfiniteScroll) }
func (s *Snapshot) LoadMore() bool       { return s.bool(KeyLoadMore) }
func (s *Snapshot) AJAXEnabled() bool    { return s.bool(KeyAJAX) }
func (s *Snapshot) ShowInfo() bool       { return s.bool(KeyShowInfo) }
func (s *Snapshot) SEOLinks() bool       { return s.bool(KeySEOLinks) }
func (s *Snapshot) MidSize() int         { return s.int(KeyMidSize) }
func (s *Snapshot) EndSize() int         { return s.int(KeyEndSize) }
func (s *Snapshot) PrevText() string     { return s.values[KeyPrevText] }
func (s *Snapshot) NextText() string     { return s.values[KeyNextText] }
func (s *Snapshot) LoadMoreText() string { return s.values[KeyLoadMoreText] }

// PerPage returns the configured page size for a content type. Jobs have
// their own setting; everything else uses posts_per_page.
func (s *Snapshot) PerPage(postType string) int {
	if postType == query.TypeJob {
		return s.int(KeyJobsPerPage)
	}
	return s.int(KeyPostsPerPage)
}

// StyleInput assembles the selector input for one request from p.
func StyleInput(p Provider, mobile, paged bool) pagination.StyleInput {
	return pagination.StyleInput{
		Mobile:         mobile,
		MobileStyle:    p.MobileStyle(),
		InfiniteScroll: p.InfiniteScroll(),
		LoadMore:       p.LoadMore(),
		Paged:          paged,
		Fallback:       p.PaginationStyle(),
	}
}
