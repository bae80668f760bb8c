package render_test

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruitpro/internal/common/pagination"
	"recruitpro/internal/domain/entity"
	"recruitpro/internal/query"
	"recruitpro/internal/render"
)

/* ───────── helpers ───────── */

func newRenderer(t *testing.T) *render.Renderer {
	t.Helper()
	r, err := render.New()
	require.NoError(t, err)
	return r
}

func doc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	d, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return d
}

func job(id int64) *entity.Content {
	return &entity.Content{
		ID:             id,
		Type:           entity.TypeJob,
		Title:          fmt.Sprintf("Job %d", id),
		Slug:           fmt.Sprintf("job-%d", id),
		Status:         entity.StatusPublish,
		PublishedAt:    time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC),
		Company:        "Acme",
		Location:       "Berlin",
		EmploymentType: "Full-time",
		SalaryMin:      60000,
		SalaryMax:      80000,
		Remote:         id%2 == 0,
		Featured:       id == 1,
	}
}

func post(id int64) *entity.Content {
	return &entity.Content{
		ID:          id,
		Type:        entity.TypePost,
		Title:       fmt.Sprintf("Post <%d>", id),
		Slug:        fmt.Sprintf("post-%d", id),
		Status:      entity.StatusPublish,
		AuthorName:  "Dana",
		PublishedAt: time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC),
		Excerpt:     "An excerpt",
	}
}

/* ───────── cards ───────── */

func TestRegistry_Render(t *testing.T) {
	r := newRenderer(t)

	html, err := r.Cards().Render([]*entity.Content{job(1), post(2), job(4)})
	require.NoError(t, err)

	d := doc(t, html)
	assert.Equal(t, 2, d.Find("article.job-card").Length())
	assert.Equal(t, 1, d.Find("article.post-card").Length())
	assert.Equal(t, 1, d.Find("article.job-card--featured").Length())
	assert.Equal(t, "/jobs/job-1", d.Find("article.job-card a").First().AttrOr("href", ""))
	assert.Equal(t, "60,000 – 80,000", d.Find(".job-card__salary").First().Text())
	assert.Equal(t, "Post <2>", d.Find(".post-card__title a").Text())
	assert.Contains(t, html, "Post &lt;2&gt;")
}

func TestRegistry_RenderSalary(t *testing.T) {
	r := newRenderer(t)

	tests := []struct {
		name     string
		min, max int
		want     string
	}{
		{"range", 45000, 1250000, "45,000 – 1,250,000"},
		{"single figure", 0, 950, "950"},
		{"equal ends", 70000, 70000, "70,000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := job(2)
			c.SalaryMin, c.SalaryMax = tt.min, tt.max
			html, err := r.Cards().Render([]*entity.Content{c})
			require.NoError(t, err)
			assert.Equal(t, tt.want, doc(t, html).Find(".job-card__salary").Text())
		})
	}
}

func TestRegistry_FallbackAndRegister(t *testing.T) {
	r := newRenderer(t)

	event := &entity.Content{ID: 9, Type: "event", Title: "Meetup", Slug: "meetup"}
	html, err := r.Cards().Render([]*entity.Content{event})
	require.NoError(t, err)
	assert.Equal(t, 1, doc(t, html).Find("article.post-card").Length())

	r.Cards().Register("event", render.CardFunc(func(w io.Writer, c *render.CardView) error {
		_, err := fmt.Fprintf(w, "<div class=\"event\">%d</div>", c.ID)
		return err
	}))
	html, err = r.Cards().Render([]*entity.Content{event})
	require.NoError(t, err)
	assert.Equal(t, `<div class="event">9</div>`, html)
}

func TestRegistry_RenderEmpty(t *testing.T) {
	html, err := newRenderer(t).Cards().Render(nil)
	require.NoError(t, err)
	assert.Empty(t, html)
}

/* ───────── numbers ───────── */

func numbersView(current, totalPages int, totalItems int64, perPage int) render.NumbersView {
	return render.NumbersView{
		Current:    current,
		TotalPages: totalPages,
		TotalItems: totalItems,
		PerPage:    perPage,
		ShowInfo:   true,
		Window:     pagination.WindowOptions{MidSize: 2, EndSize: 1},
		PrevText:   "« Previous",
		NextText:   "Next »",
		BaseURL:    "/jobs",
	}
}

func TestNumbers_NothingForSinglePage(t *testing.T) {
	r := newRenderer(t)

	for _, total := range []int{0, 1} {
		html, err := r.Numbers(numbersView(1, total, int64(total*5), 10))
		require.NoError(t, err)
		assert.Empty(t, html, "total pages %d", total)
	}
}

func TestNumbers_NothingPastTheEnd(t *testing.T) {
	r := newRenderer(t)

	for _, page := range []int{4, math.MaxInt} {
		html, err := r.Numbers(numbersView(page, 3, 25, 10))
		require.NoError(t, err)
		assert.Empty(t, html, "page %d", page)
	}
}

func TestNumbers_InfoLine(t *testing.T) {
	r := newRenderer(t)

	tests := []struct {
		page int
		want string
	}{
		{page: 2, want: "Showing 11–20 of 25"},
		{page: 3, want: "Showing 21–25 of 25"},
	}
	for _, tt := range tests {
		html, err := r.Numbers(numbersView(tt.page, 3, 25, 10))
		require.NoError(t, err)
		assert.Equal(t, tt.want, doc(t, string(html)).Find(".pagination-info").Text())
	}
}

func TestNumbers_InfoLineHidden(t *testing.T) {
	v := numbersView(2, 3, 25, 10)
	v.ShowInfo = false

	html, err := newRenderer(t).Numbers(v)
	require.NoError(t, err)
	assert.Zero(t, doc(t, string(html)).Find(".pagination-info").Length())
}

func TestNumbers_Links(t *testing.T) {
	r := newRenderer(t)

	html, err := r.Numbers(numbersView(1, 3, 25, 12))
	require.NoError(t, err)
	d := doc(t, string(html))
	assert.Zero(t, d.Find("a.prev").Length(), "no previous link on the first page")
	assert.Equal(t, "/jobs/page/2", d.Find("a.next").AttrOr("href", ""))
	assert.Equal(t, "Next »", d.Find("a.next").Text())
	assert.Equal(t, "1", d.Find(".current").Text())

	html, err = r.Numbers(numbersView(3, 3, 25, 12))
	require.NoError(t, err)
	d = doc(t, string(html))
	assert.Zero(t, d.Find("a.next").Length(), "no next link on the last page")
	assert.Equal(t, "/jobs/page/2", d.Find("a.prev").AttrOr("href", ""))

	html, err = r.Numbers(numbersView(10, 20, 200, 10))
	require.NoError(t, err)
	d = doc(t, string(html))
	assert.Equal(t, 2, d.Find(".dots").Length())
	assert.Equal(t, "/jobs", d.Find("a.page-numbers").Not(".prev").First().AttrOr("href", ""))
}

func TestNumbers_KeepsQueryString(t *testing.T) {
	v := numbersView(1, 3, 25, 12)
	v.QueryString = "job_location=berlin"

	html, err := newRenderer(t).Numbers(v)
	require.NoError(t, err)
	d := doc(t, string(html))
	assert.Equal(t, "/jobs/page/2?job_location=berlin", d.Find("a.next").AttrOr("href", ""))
}

/* ───────── trigger ───────── */

func triggerView(style pagination.Style, current, total int) render.TriggerView {
	return render.TriggerView{
		Style:      style,
		Current:    current,
		TotalPages: total,
		PostType:   "job",
		Query:      query.Parse(`{"post_type":"job","job_location":"berlin"}`, ""),
		Nonce:      "tok",
		Text:       "Load More",
	}
}

func TestTrigger_LoadMore(t *testing.T) {
	html, err := newRenderer(t).Trigger(triggerView(pagination.StyleLoadMore, 1, 3))
	require.NoError(t, err)

	btn := doc(t, string(html)).Find("button.load-more-btn")
	require.Equal(t, 1, btn.Length())
	assert.Equal(t, "2", btn.AttrOr("data-page", ""))
	assert.Equal(t, "3", btn.AttrOr("data-max-pages", ""))
	assert.Equal(t, "job", btn.AttrOr("data-post-type", ""))
	assert.Equal(t, "tok", btn.AttrOr("data-nonce", ""))
	assert.Equal(t, "Load More", btn.Text())

	got := query.Parse(btn.AttrOr("data-query", ""), "")
	assert.Equal(t, "berlin", got.Terms["job_location"])
}

func TestTrigger_InfiniteScroll(t *testing.T) {
	html, err := newRenderer(t).Trigger(triggerView(pagination.StyleInfiniteScroll, 2, 3))
	require.NoError(t, err)

	el := doc(t, string(html)).Find(".infinite-scroll-trigger")
	require.Equal(t, 1, el.Length())
	assert.Equal(t, "3", el.AttrOr("data-page", ""))
}

func TestTrigger_SuppressedAtBoundary(t *testing.T) {
	r := newRenderer(t)

	tests := []struct {
		name    string
		style   pagination.Style
		current int
		total   int
	}{
		{"load more last page", pagination.StyleLoadMore, 3, 3},
		{"infinite last page", pagination.StyleInfiniteScroll, 3, 3},
		{"load more past last page", pagination.StyleLoadMore, 7, 3},
		{"single page", pagination.StyleLoadMore, 1, 1},
		{"no pages", pagination.StyleInfiniteScroll, 1, 0},
		{"numbers style", pagination.StyleNumbers, 1, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html, err := r.Trigger(triggerView(tt.style, tt.current, tt.total))
			require.NoError(t, err)
			assert.Empty(t, html)
		})
	}
}

/* ───────── wrapper ───────── */

func TestPagination_Wrapper(t *testing.T) {
	r := newRenderer(t)

	v := render.PaginationView{
		Style:    pagination.StyleLoadMore,
		AJAX:     true,
		PostType: "job",
		Numbers:  numbersView(1, 3, 25, 12),
		Trigger:  triggerView(pagination.StyleLoadMore, 1, 3),
	}
	html, err := r.Pagination(v)
	require.NoError(t, err)
	wrap := doc(t, string(html)).Find("div.recruitpro-pagination")
	require.Equal(t, 1, wrap.Length())
	assert.True(t, wrap.HasClass("pagination-type-job"))
	assert.True(t, wrap.HasClass("pagination-style-load-more"))
	assert.True(t, wrap.HasClass("pagination-ajax"))
	assert.Equal(t, 1, wrap.Find("button.load-more-btn").Length())

	// async styles need AJAX
	v.AJAX = false
	html, err = r.Pagination(v)
	require.NoError(t, err)
	wrap = doc(t, string(html)).Find("div.recruitpro-pagination")
	assert.True(t, wrap.HasClass("pagination-style-numbers"))
	assert.True(t, wrap.HasClass("pagination-no-ajax"))
	assert.Equal(t, 1, wrap.Find("nav.pagination-numbers").Length())
}

func TestPagination_EmptyHasNoWrapper(t *testing.T) {
	r := newRenderer(t)

	for _, style := range []pagination.Style{pagination.StyleNumbers, pagination.StyleLoadMore, pagination.StyleInfiniteScroll} {
		html, err := r.Pagination(render.PaginationView{
			Style:    style,
			AJAX:     true,
			PostType: "post",
			Numbers:  numbersView(1, 1, 4, 10),
			Trigger:  triggerView(style, 1, 1),
		})
		require.NoError(t, err)
		assert.Empty(t, html, "style %s", style)
	}
}

func TestWrapperClasses(t *testing.T) {
	assert.Equal(t,
		"recruitpro-pagination pagination-type-post pagination-style-infinite-scroll pagination-no-ajax",
		render.WrapperClasses("post", pagination.StyleInfiniteScroll, false))
}

/* ───────── head links ───────── */

func TestHeadLinks(t *testing.T) {
	r := newRenderer(t)

	tests := []struct {
		name     string
		current  int
		total    int
		wantPrev string
		wantNext string
	}{
		{"single page", 1, 1, "", ""},
		{"first page", 1, 3, "", ""},
		{"second page", 2, 3, "https://example.com/jobs", "https://example.com/jobs/page/3"},
		{"last page", 3, 3, "https://example.com/jobs/page/2", ""},
		{"past the end", 9, 3, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html, err := r.HeadLinks(tt.current, tt.total, "https://example.com/", "/jobs")
			require.NoError(t, err)
			d := doc(t, string(html))
			assert.Equal(t, tt.wantPrev, d.Find(`link[rel="prev"]`).AttrOr("href", ""))
			assert.Equal(t, tt.wantNext, d.Find(`link[rel="next"]`).AttrOr("href", ""))
		})
	}
}

/* ───────── page ───────── */

func TestPage(t *testing.T) {
	r := newRenderer(t)

	items, err := r.Cards().Render([]*entity.Content{job(1), job(2)})
	require.NoError(t, err)
	head, err := r.HeadLinks(2, 3, "https://example.com", "/jobs")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Page(&buf, render.PageView{
		Title:     "Jobs",
		PostType:  "job",
		HeadLinks: head,
		Items:     render.Fragment(items),
		AJAXURL:   "/ajax/load-more-jobs",
		Nonce:     "tok",
	}))

	d := doc(t, buf.String())
	assert.Equal(t, "Jobs", d.Find("title").Text())
	assert.Equal(t, 1, d.Find(`head link[rel="next"]`).Length())
	assert.Equal(t, 2, d.Find("main .content-list article").Length())
	assert.Equal(t, "tok", d.Find("main").AttrOr("data-nonce", ""))
}

func TestPage_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newRenderer(t).Page(&buf, render.PageView{Title: "Blog", PostType: "post"}))

	assert.Equal(t, 1, doc(t, buf.String()).Find(".no-results").Length())
}

func TestPageURL(t *testing.T) {
	assert.Equal(t, "/jobs", render.PageURL("/jobs", 1))
	assert.Equal(t, "/jobs", render.PageURL("/jobs/", 0))
	assert.Equal(t, "/jobs/page/4", render.PageURL("/jobs", 4))
	assert.Equal(t, "/", render.PageURL("", 1))
}
