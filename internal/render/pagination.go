package render

import (
	"html/template"
	"strconv"
	"strings"

	"recruitpro/internal/common/pagination"
	"recruitpro/internal/query"
)

// NumbersView is the input of the numbered pagination.
type NumbersView struct {
	Current    int
	TotalPages int
	TotalItems int64
	PerPage    int
	ShowInfo   bool
	Window     pagination.WindowOptions
	PrevText   string
	NextText   string
	BaseURL    string
	// QueryString is appended to every link, e.g. "job_location=berlin".
	QueryString string
}

type linkView struct {
	Kind string
	Href string
	Text string
}

type numbersData struct {
	ShowInfo   bool
	Start, End int
	TotalItems int64
	Links      []linkView
}

// Numbers renders the numbered page list with the optional "Showing X–Y of Z"
// line. It renders nothing when there is at most one page or the current page
// is past the last one.
func (r *Renderer) Numbers(v NumbersView) (template.HTML, error) {
	if v.Current > v.TotalPages {
		return "", nil
	}
	links := pagination.PageWindow(v.Current, v.TotalPages, v.Window)
	if len(links) == 0 {
		return "", nil
	}
	data := numbersData{ShowInfo: v.ShowInfo, TotalItems: v.TotalItems}
	data.Start, data.End = pagination.InfoRange(v.Current, v.PerPage, v.TotalItems)
	for _, l := range links {
		lv := linkView{Kind: string(l.Kind), Href: withQuery(PageURL(v.BaseURL, l.Page), v.QueryString), Text: strconv.Itoa(l.Page)}
		switch l.Kind {
		case pagination.LinkPrev:
			lv.Text = v.PrevText
		case pagination.LinkNext:
			lv.Text = v.NextText
		case pagination.LinkDots:
			lv.Href, lv.Text = "", ""
		}
		data.Links = append(data.Links, lv)
	}
	return r.execute("numbers", data)
}

func withQuery(u, rawQuery string) string {
	if rawQuery == "" {
		return u
	}
	return u + "?" + rawQuery
}

// TriggerView is the input of the load-more button and the infinite-scroll
// sentinel.
type TriggerView struct {
	Style      pagination.Style
	Current    int
	TotalPages int
	PostType   string
	Query      query.Descriptor
	Nonce      string
	Text       string
}

type triggerData struct {
	NextPage int
	MaxPages int
	PostType string
	Query    string
	Nonce    string
	Text     string
}

// Trigger renders the element the client script uses to fetch the next page.
// It renders nothing on the last page, past it, or for the numbers style.
func (r *Renderer) Trigger(v TriggerView) (template.HTML, error) {
	if !v.Style.IsAsync() || v.TotalPages <= 1 || v.Current >= v.TotalPages {
		return "", nil
	}
	return r.execute(string(v.Style), triggerData{
		NextPage: v.Current + 1,
		MaxPages: v.TotalPages,
		PostType: v.PostType,
		Query:    v.Query.Encode(),
		Nonce:    v.Nonce,
		Text:     v.Text,
	})
}

// PaginationView is everything needed to render the pagination block of a
// listing.
type PaginationView struct {
	Style    pagination.Style
	AJAX     bool
	PostType string
	Numbers  NumbersView
	Trigger  TriggerView
}

// Pagination renders the block for the chosen style inside a wrapper whose
// classes name the content type, the style and whether AJAX is on. The
// trigger styles need AJAX; without it they fall back to numbers. An empty
// block renders nothing at all, wrapper included.
func (r *Renderer) Pagination(v PaginationView) (template.HTML, error) {
	style := v.Style
	if !style.Valid() || (style.IsAsync() && !v.AJAX) {
		style = pagination.StyleNumbers
	}

	var (
		inner template.HTML
		err   error
	)
	if style.IsAsync() {
		t := v.Trigger
		t.Style = style
		inner, err = r.Trigger(t)
	} else {
		inner, err = r.Numbers(v.Numbers)
	}
	if err != nil || inner == "" {
		return "", err
	}

	return r.execute("wrapper", struct {
		Classes string
		Inner   template.HTML
	}{
		Classes: WrapperClasses(v.PostType, style, v.AJAX),
		Inner:   inner,
	})
}

// WrapperClasses returns the class list of the pagination wrapper.
func WrapperClasses(postType string, style pagination.Style, ajax bool) string {
	classes := []string{
		"recruitpro-pagination",
		"pagination-type-" + postType,
		"pagination-style-" + strings.ReplaceAll(string(style), "_", "-"),
	}
	if ajax {
		classes = append(classes, "pagination-ajax")
	} else {
		classes = append(classes, "pagination-no-ajax")
	}
	return strings.Join(classes, " ")
}

// HeadLinks renders rel="prev" and rel="next" link tags for page current of
// total. URLs are made absolute against siteURL. Only sub-pages that exist get
// the tags: page 1 and pages past the end render nothing.
func (r *Renderer) HeadLinks(current, total int, siteURL, baseURL string) (template.HTML, error) {
	if total <= 1 || current <= 1 || current > total {
		return "", nil
	}
	site := strings.TrimRight(siteURL, "/")
	var data struct{ Prev, Next string }
	data.Prev = site + PageURL(baseURL, current-1)
	if current < total {
		data.Next = site + PageURL(baseURL, current+1)
	}
	return r.execute("head_links", data)
}
