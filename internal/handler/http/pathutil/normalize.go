// Package pathutil maps request paths to low-cardinality metric labels.
package pathutil

import (
	"regexp"
	"strings"
)

// Unmatched is the label of every path no route serves.
const Unmatched = "/unmatched"

// PathPattern maps paths matching Pattern to Template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

var pathPatterns = []*PathPattern{
	{Pattern: regexp.MustCompile(`^/jobs/page/[^/]+$`), Template: "/jobs/page/:page"},
	{Pattern: regexp.MustCompile(`^/blog/page/[^/]+$`), Template: "/blog/page/:page"},
}

var staticPaths = map[string]struct{}{
	"/":                    {},
	"/jobs":                {},
	"/blog":                {},
	"/ajax/load-more":      {},
	"/ajax/load-more-jobs": {},
	"/admin/settings":      {},
	"/auth/token":          {},
	"/health":              {},
	"/ready":               {},
	"/live":                {},
	"/metrics":             {},
}

// NormalizePath returns the route template of path:
//
//	NormalizePath("/jobs/page/7")    // "/jobs/page/:page"
//	NormalizePath("/jobs/")          // "/jobs"
//	NormalizePath("/health?x=1")     // "/health"
//	NormalizePath("/wp-login.php")   // "/unmatched"
//
// Paths no route serves collapse into Unmatched so scanners cannot grow the
// label set.
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	if _, ok := staticPaths[path]; ok {
		return path
	}
	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}
	return Unmatched
}

// ExpectedCardinality is the number of distinct labels NormalizePath can
// return.
func ExpectedCardinality() int {
	return len(staticPaths) + len(pathPatterns) + 1
}
