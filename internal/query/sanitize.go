package query

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
)

const (
	// MaxPerPage caps posts_per_page from any client-supplied descriptor.
	MaxPerPage = 50
	// MaxSearchRunes caps the search term length.
	MaxSearchRunes = 100
)

var (
	slugPattern    = regexp.MustCompile(`^[a-z0-9-]{1,64}$`)
	orderByColumns = []string{OrderByDate, OrderByTitle, OrderByModified, OrderByID}
)

// Decode parses a JSON-serialized descriptor into its raw key/value form.
// Malformed or non-object input yields an empty map; callers then sanitize
// that into the default descriptor.
func Decode(raw string) map[string]any {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return map[string]any{}
	}
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil || m == nil {
		return map[string]any{}
	}
	return m
}

// Sanitize builds a Descriptor from untrusted key/value input. Only known
// keys survive; each one is coerced to its type and clamped. Unknown keys,
// values of the wrong shape and taxonomies that do not belong to the content
// type are dropped without error. The status is always publish.
//
// postType, when it names a known content type, overrides the descriptor's
// own post_type.
func Sanitize(raw map[string]any, postType string) Descriptor {
	if !KnownType(postType) {
		postType, _ = raw["post_type"].(string)
	}
	d := New(postType)

	if page, ok := toInt(raw["paged"]); ok {
		d.Paged = max(page, 1)
	}
	if perPage, ok := toInt(raw["posts_per_page"]); ok && perPage > 0 {
		d.PerPage = min(perPage, MaxPerPage)
	}
	if s, ok := raw["s"].(string); ok {
		d.Search = truncateRunes(strings.TrimSpace(s), MaxSearchRunes)
	}
	if ob, ok := raw["orderby"].(string); ok {
		ob = strings.ToLower(strings.TrimSpace(ob))
		if lo.Contains(orderByColumns, ob) {
			d.OrderBy = ob
		}
	}
	if o, ok := raw["order"].(string); ok {
		switch strings.ToUpper(strings.TrimSpace(o)) {
		case OrderAsc:
			d.Order = OrderAsc
		case OrderDesc:
			d.Order = OrderDesc
		}
	}
	for _, tax := range Taxonomies(d.PostType) {
		slug, ok := raw[tax].(string)
		if !ok {
			continue
		}
		slug = strings.ToLower(strings.TrimSpace(slug))
		if !slugPattern.MatchString(slug) {
			continue
		}
		if d.Terms == nil {
			d.Terms = make(map[string]string)
		}
		d.Terms[tax] = slug
	}
	if d.PostType == TypeJob {
		if b, ok := toBool(raw["featured"]); ok {
			d.Featured = lo.ToPtr(b)
		}
		if b, ok := toBool(raw["remote"]); ok {
			d.Remote = lo.ToPtr(b)
		}
	}
	return d
}

// Parse is Decode followed by Sanitize.
func Parse(raw, postType string) Descriptor {
	return Sanitize(Decode(raw), postType)
}

func toInt(v any) (int, bool) {
	switch x := v.(type) {
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return int(n), true
		}
		if f, err := x.Float64(); err == nil {
			return int(f), true
		}
	case float64:
		return int(x), true
	case int:
		return x, true
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(x)); err == nil {
			return n, true
		}
	}
	return 0, false
}

func toBool(v any) (bool, bool) {
	switch x := v.(type) {
	case bool:
		return x, true
	case json.Number:
		return x.String() != "0", true
	case float64:
		return x != 0, true
	case int:
		return x != 0, true
	case string:
		switch strings.ToLower(strings.TrimSpace(x)) {
		case "1", "true", "yes", "on":
			return true, true
		case "0", "false", "no", "off", "":
			return false, true
		}
	}
	return false, false
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
