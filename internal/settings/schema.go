// Package settings holds the site-editable pagination knobs: their schema,
// sanitize-on-save coercion and the typed Provider the rest of the service
// reads them through.
package settings

import (
	"errors"

	"github.com/samber/lo"
)

// ErrUnknownSetting is returned for keys that are not part of the schema.
var ErrUnknownSetting = errors.New("unknown setting")

// Kind is the value type of a setting.
type Kind int

const (
	KindChoice Kind = iota
	KindInt
	KindBool
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindChoice:
		return "choice"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Setting keys.
const (
	KeyStyle          = "pagination_style"
	KeyMobileStyle    = "pagination_mobile_style"
	KeyInfiniteScroll = "pagination_infinite_scroll"
	KeyLoadMore       = "pagination_load_more"
	KeyAJAX           = "pagination_ajax"
	KeyShowInfo       = "pagination_show_info"
	KeySEOLinks       = "pagination_seo_links"
	KeyMidSize        = "pagination_mid_size"
	KeyEndSize        = "pagination_end_size"
	KeyJobsPerPage    = "jobs_per_page"
	KeyPostsPerPage   = "posts_per_page"
	KeyPrevText       = "pagination_prev_text"
	KeyNextText       = "pagination_next_text"
	KeyLoadMoreText   = "pagination_load_more_text"
)

// maxTextRunes caps every text setting.
const maxTextRunes = 40

// Definition describes one setting. Default is stored in canonical string
// form, the same form Sanitize produces.
type Definition struct {
	Key     string
	Kind    Kind
	Default string
	Choices []string // KindChoice
	Min     int      // KindInt
	Max     int      // KindInt
	Label   string
}

// Schema lists every setting in display order.
var Schema = []Definition{
	{Key: KeyStyle, Kind: KindChoice, Default: "numbers", Choices: []string{"numbers", "load_more", "infinite_scroll"}, Label: "Pagination style"},
	{Key: KeyMobileStyle, Kind: KindChoice, Default: "default", Choices: []string{"default", "numbers", "load_more"}, Label: "Mobile pagination style"},
	{Key: KeyInfiniteScroll, Kind: KindBool, Default: "false", Label: "Enable infinite scroll"},
	{Key: KeyLoadMore, Kind: KindBool, Default: "false", Label: "Enable load more button"},
	{Key: KeyAJAX, Kind: KindBool, Default: "true", Label: "Load pages over AJAX"},
	{Key: KeyShowInfo, Kind: KindBool, Default: "true", Label: "Show results info"},
	{Key: KeySEOLinks, Kind: KindBool, Default: "true", Label: "Emit rel prev/next links"},
	{Key: KeyMidSize, Kind: KindInt, Default: "2", Min: 1, Max: 5, Label: "Pages around the current page"},
	{Key: KeyEndSize, Kind: KindInt, Default: "1", Min: 1, Max: 3, Label: "Pages at each end"},
	{Key: KeyJobsPerPage, Kind: KindInt, Default: "12", Min: 1, Max: 50, Label: "Jobs per page"},
	{Key: KeyPostsPerPage, Kind: KindInt, Default: "10", Min: 1, Max: 50, Label: "Posts per page"},
	{Key: KeyPrevText, Kind: KindText, Default: "« Previous", Label: "Previous link text"},
	{Key: KeyNextText, Kind: KindText, Default: "Next »", Label: "Next link text"},
	{Key: KeyLoadMoreText, Kind: KindText, Default: "Load More", Label: "Load more button text"},
}

var byKey = lo.KeyBy(Schema, func(d Definition) string { return d.Key })

// Lookup returns the definition for key.
func Lookup(key string) (Definition, bool) {
	d, ok := byKey[key]
	return d, ok
}

// Keys returns every setting key in schema order.
func Keys() []string {
	return lo.Map(Schema, func(d Definition, _ int) string { return d.Key })
}

// Defaults returns the default value of every setting.
func Defaults() map[string]string {
	return lo.SliceToMap(Schema, func(d Definition) (string, string) { return d.Key, d.Default })
}
