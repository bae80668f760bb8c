package pagination

// LinkKind identifies an entry in a numbered page list.
type LinkKind string

const (
	LinkPrev    LinkKind = "prev"
	LinkNext    LinkKind = "next"
	LinkPage    LinkKind = "page"
	LinkCurrent LinkKind = "current"
	LinkDots    LinkKind = "dots"
)

// PageLink is one entry of a numbered page list. Page is 0 for LinkDots.
type PageLink struct {
	Kind LinkKind
	Page int
}

// WindowOptions shapes the numbered list.
type WindowOptions struct {
	MidSize int // pages shown on each side of the current page
	EndSize int // pages always shown at the start and the end
}

// PageWindow lays out the numbered page list for current out of total pages.
// A page is listed when it is within EndSize of either edge or within MidSize
// of the current page; each run of skipped pages collapses into one LinkDots.
// The previous entry is omitted on the first page and the next entry on the
// last page. total <= 1 yields nil: a single page has no pagination.
func PageWindow(current, total int, opts WindowOptions) []PageLink {
	if total <= 1 {
		return nil
	}
	if current < 1 {
		current = 1
	}
	if current > total {
		current = total
	}
	endSize := max(opts.EndSize, 1)
	midSize := max(opts.MidSize, 0)

	links := make([]PageLink, 0, 2*midSize+2*endSize+4)
	if current > 1 {
		links = append(links, PageLink{Kind: LinkPrev, Page: current - 1})
	}

	dots := false
	for n := 1; n <= total; n++ {
		switch {
		case n == current:
			links = append(links, PageLink{Kind: LinkCurrent, Page: n})
			dots = true
		case n <= endSize || n > total-endSize || (n >= current-midSize && n <= current+midSize):
			links = append(links, PageLink{Kind: LinkPage, Page: n})
			dots = true
		case dots:
			links = append(links, PageLink{Kind: LinkDots})
			dots = false
		}
	}

	if current < total {
		links = append(links, PageLink{Kind: LinkNext, Page: current + 1})
	}
	return links
}
