package pathutil

import (
	"testing"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{name: "jobs archive", path: "/jobs", expected: "/jobs"},
		{name: "jobs archive trailing slash", path: "/jobs/", expected: "/jobs"},
		{name: "jobs page", path: "/jobs/page/2", expected: "/jobs/page/:page"},
		{name: "jobs page large", path: "/jobs/page/99999", expected: "/jobs/page/:page"},
		{name: "jobs page not numeric", path: "/jobs/page/abc", expected: "/jobs/page/:page"},
		{name: "blog page", path: "/blog/page/3/", expected: "/blog/page/:page"},
		{name: "load more", path: "/ajax/load-more", expected: "/ajax/load-more"},
		{name: "load more jobs", path: "/ajax/load-more-jobs", expected: "/ajax/load-more-jobs"},
		{name: "query stripped", path: "/health?verbose=1", expected: "/health"},
		{name: "root", path: "/", expected: "/"},
		{name: "nested page path", path: "/jobs/page/2/extra", expected: Unmatched},
		{name: "scanner", path: "/wp-login.php", expected: Unmatched},
		{name: "empty", path: "", expected: Unmatched},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePath(tt.path); got != tt.expected {
				t.Errorf("NormalizePath(%q) = %q, want %q", tt.path, got, tt.expected)
			}
		})
	}
}

func TestNormalizePath_BoundedLabels(t *testing.T) {
	seen := map[string]struct{}{}
	for _, p := range []string{
		"/jobs", "/jobs/page/2", "/jobs/page/3", "/blog", "/blog/page/2",
		"/a", "/b", "/c/d", "/admin/settings", "/metrics",
	} {
		seen[NormalizePath(p)] = struct{}{}
	}
	if len(seen) > ExpectedCardinality() {
		t.Errorf("got %d labels, cardinality bound is %d", len(seen), ExpectedCardinality())
	}
	if len(seen) != 7 {
		t.Errorf("got %d distinct labels, want 7: %v", len(seen), seen)
	}
}

func BenchmarkNormalizePath(b *testing.B) {
	paths := []string{"/jobs", "/jobs/page/12", "/ajax/load-more", "/unknown/path"}
	for i := 0; i < b.N; i++ {
		NormalizePath(paths[i%len(paths)])
	}
}
