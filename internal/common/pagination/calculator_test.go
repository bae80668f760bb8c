package pagination_test

import (
	"math"
	"testing"

	"recruitpro/internal/common/pagination"
)

func TestCalculateOffset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		page  int
		limit int
		want  int
	}{
		{name: "first page", page: 1, limit: 12, want: 0},
		{name: "second page", page: 2, limit: 12, want: 12},
		{name: "third page", page: 3, limit: 12, want: 24},
		{name: "page 10 with limit 50", page: 10, limit: 50, want: 450},
		{name: "zero page treated as first", page: 0, limit: 10, want: 0},
		{name: "last representable page", page: math.MaxInt / 12, limit: 12, want: (math.MaxInt/12 - 1) * 12},
		{name: "huge page saturates", page: math.MaxInt, limit: 12, want: math.MaxInt},
		{name: "huge page with limit one", page: math.MaxInt, limit: 1, want: math.MaxInt - 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pagination.CalculateOffset(tt.page, tt.limit)
			if got != tt.want {
				t.Errorf("CalculateOffset(%d, %d) = %d, want %d", tt.page, tt.limit, got, tt.want)
			}
		})
	}
}

func TestCalculateTotalPages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		total int64
		limit int
		want  int
	}{
		{name: "no items still one page", total: 0, limit: 12, want: 1},
		{name: "fewer than a page", total: 5, limit: 12, want: 1},
		{name: "exactly one page", total: 12, limit: 12, want: 1},
		{name: "one over", total: 13, limit: 12, want: 2},
		{name: "25 jobs at 12 per page", total: 25, limit: 12, want: 3},
		{name: "100 at 10", total: 100, limit: 10, want: 10},
		{name: "zero limit guarded", total: 10, limit: 0, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pagination.CalculateTotalPages(tt.total, tt.limit)
			if got != tt.want {
				t.Errorf("CalculateTotalPages(%d, %d) = %d, want %d", tt.total, tt.limit, got, tt.want)
			}
		})
	}
}

func TestInfoRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		page      int
		perPage   int
		total     int64
		wantStart int
		wantEnd   int
	}{
		{name: "middle page", page: 2, perPage: 10, total: 25, wantStart: 11, wantEnd: 20},
		{name: "last page clamps to total", page: 3, perPage: 10, total: 25, wantStart: 21, wantEnd: 25},
		{name: "first page", page: 1, perPage: 12, total: 25, wantStart: 1, wantEnd: 12},
		{name: "exact multiple", page: 2, perPage: 10, total: 20, wantStart: 11, wantEnd: 20},
		{name: "page below one", page: 0, perPage: 10, total: 25, wantStart: 1, wantEnd: 10},
		{name: "past the end", page: 9, perPage: 10, total: 25, wantStart: 0, wantEnd: 0},
		{name: "huge page", page: math.MaxInt, perPage: 12, total: 25, wantStart: 0, wantEnd: 0},
		{name: "no items", page: 1, perPage: 10, total: 0, wantStart: 0, wantEnd: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := pagination.InfoRange(tt.page, tt.perPage, tt.total)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("InfoRange(%d, %d, %d) = (%d, %d), want (%d, %d)",
					tt.page, tt.perPage, tt.total, start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestMaxPage(t *testing.T) {
	t.Parallel()

	for _, limit := range []int{0, 1, 12, 50} {
		page := pagination.MaxPage(limit)
		if page < 1 {
			t.Fatalf("MaxPage(%d) = %d, want positive", limit, page)
		}
		if off := pagination.CalculateOffset(page, limit); off < 0 {
			t.Errorf("CalculateOffset(MaxPage(%d), %d) = %d, want non-negative", limit, limit, off)
		}
	}
}
