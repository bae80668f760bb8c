package settings_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruitpro/internal/common/pagination"
	"recruitpro/internal/settings"
)

func TestSnapshot_Defaults(t *testing.T) {
	t.Parallel()

	s := settings.NewSnapshot()

	assert.Equal(t, pagination.StyleNumbers, s.PaginationStyle())
	assert.Equal(t, pagination.MobileStyleDefault, s.MobileStyle())
	assert.False(t, s.InfiniteScroll())
	assert.False(t, s.LoadMore())
	assert.True(t, s.AJAXEnabled())
	assert.True(t, s.ShowInfo())
	assert.True(t, s.SEOLinks())
	assert.Equal(t, 2, s.MidSize())
	assert.Equal(t, 1, s.EndSize())
	assert.Equal(t, 12, s.PerPage("job"))
	assert.Equal(t, 10, s.PerPage("post"))
	assert.Equal(t, "« Previous", s.PrevText())
	assert.Equal(t, "Next »", s.NextText())
	assert.Equal(t, "Load More", s.LoadMoreText())
}

func TestSnapshot_Layers(t *testing.T) {
	t.Parallel()

	file := map[string]string{
		settings.KeyStyle:       "load_more",
		settings.KeyJobsPerPage: "24",
	}
	stored := map[string]string{
		settings.KeyJobsPerPage: "999", // tampered row
		"unknown":               "x",
	}

	s := settings.NewSnapshot(file, stored)

	assert.Equal(t, pagination.StyleLoadMore, s.PaginationStyle())
	assert.Equal(t, 50, s.PerPage("job"))
	assert.NotContains(t, s.Values(), "unknown")
}

func TestStyleInput(t *testing.T) {
	t.Parallel()

	s := settings.NewSnapshot(map[string]string{
		settings.KeyMobileStyle: "load_more",
		settings.KeyLoadMore:    "true",
	})

	in := settings.StyleInput(s, true, true)
	assert.Equal(t, pagination.StyleInput{
		Mobile:      true,
		MobileStyle: pagination.MobileStyleLoadMore,
		LoadMore:    true,
		Paged:       true,
		Fallback:    pagination.StyleNumbers,
	}, in)
	assert.Equal(t, pagination.StyleLoadMore, pagination.SelectStyle(in))
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	content := `pagination_style: infinite_scroll
jobs_per_page: 100
pagination_ajax: false
pagination_next_text: "<em>Onward</em>"
header_layout: centered
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	got, err := settings.LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		settings.KeyStyle:       "infinite_scroll",
		settings.KeyJobsPerPage: "50",
		settings.KeyAJAX:        "false",
		settings.KeyNextText:    "Onward",
	}, got)
}

func TestLoadFile_Errors(t *testing.T) {
	t.Parallel()

	_, err := settings.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pagination_style: [unclosed"), 0o600))
	_, err = settings.LoadFile(path)
	assert.Error(t, err)
}
