package pagination

// Style is the presentation used to move between pages of a listing.
type Style string

const (
	StyleNumbers        Style = "numbers"
	StyleLoadMore       Style = "load_more"
	StyleInfiniteScroll Style = "infinite_scroll"
)

// Valid reports whether s is one of the known styles.
func (s Style) Valid() bool {
	return s == StyleNumbers || s == StyleLoadMore || s == StyleInfiniteScroll
}

// IsAsync reports whether the style fetches further pages over AJAX.
func (s Style) IsAsync() bool {
	return s == StyleLoadMore || s == StyleInfiniteScroll
}

// MobileStyle overrides the presentation on mobile devices. MobileStyleDefault
// means "no override".
type MobileStyle string

const (
	MobileStyleDefault  MobileStyle = "default"
	MobileStyleNumbers  MobileStyle = "numbers"
	MobileStyleLoadMore MobileStyle = "load_more"
)

// StyleInput is everything SelectStyle looks at. All of it comes from the
// request (Mobile, Paged) or from settings; nothing is read implicitly.
type StyleInput struct {
	Mobile         bool
	MobileStyle    MobileStyle
	InfiniteScroll bool
	LoadMore       bool
	Paged          bool  // the request addresses page 2 or later
	Fallback       Style // the general pagination_style setting
}

// SelectStyle picks the presentation for a request. First match wins:
//  1. mobile device with the load_more mobile style
//  2. infinite scroll enabled
//  3. load more enabled and the request is the first page
//  4. the general style, numbers when unset or unknown
func SelectStyle(in StyleInput) Style {
	switch {
	case in.Mobile && in.MobileStyle == MobileStyleLoadMore:
		return StyleLoadMore
	case in.InfiniteScroll:
		return StyleInfiniteScroll
	case in.LoadMore && !in.Paged:
		return StyleLoadMore
	case in.Fallback.Valid():
		return in.Fallback
	default:
		return StyleNumbers
	}
}
