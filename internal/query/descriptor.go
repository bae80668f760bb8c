// Package query describes which content a listing fetch returns and turns
// client-supplied copies of that description back into something safe to run.
package query

import (
	"encoding/json"
	"sort"

	"recruitpro/internal/domain/entity"
)

// Content types served by the listing pages.
const (
	TypePost = entity.TypePost
	TypeJob  = entity.TypeJob
)

// StatusPublish is the only status a descriptor can ever query.
const StatusPublish = entity.StatusPublish

// Sort columns accepted in the orderby field.
const (
	OrderByDate     = "date"
	OrderByTitle    = "title"
	OrderByModified = "modified"
	OrderByID       = "id"
)

// Sort directions accepted in the order field.
const (
	OrderAsc  = "ASC"
	OrderDesc = "DESC"
)

// Taxonomies each content type can be filtered by.
var taxonomies = map[string][]string{
	TypePost: {"category", "tag"},
	TypeJob:  {"job_category", "job_location", "job_type"},
}

// Descriptor is a sanitized query description. Every field is already within
// its allowed range; the zero value of PerPage means "use the configured
// per-page setting for the content type".
type Descriptor struct {
	PostType   string
	Paged      int
	PerPage    int
	Search     string
	OrderBy    string
	Order      string
	Terms      map[string]string // taxonomy -> term slug
	Featured   *bool
	Remote     *bool
	PostStatus string
}

// New returns the descriptor for the first page of postType with the default
// ordering.
func New(postType string) Descriptor {
	if !KnownType(postType) {
		postType = TypePost
	}
	return Descriptor{
		PostType:   postType,
		Paged:      1,
		OrderBy:    OrderByDate,
		Order:      OrderDesc,
		PostStatus: StatusPublish,
	}
}

// KnownType reports whether t is a servable content type.
func KnownType(t string) bool {
	_, ok := taxonomies[t]
	return ok
}

// Taxonomies returns the taxonomy names postType can be filtered by.
func Taxonomies(postType string) []string {
	return taxonomies[postType]
}

// WithPage returns a copy of d addressing page. Pages below 1 become 1.
func (d Descriptor) WithPage(page int) Descriptor {
	d.Paged = max(page, 1)
	d.Terms = cloneTerms(d.Terms)
	return d
}

// Map returns the descriptor as the flat key/value object the trigger
// embeds. Unset optional fields are omitted.
func (d Descriptor) Map() map[string]any {
	m := map[string]any{
		"post_type":   d.PostType,
		"paged":       d.Paged,
		"orderby":     d.OrderBy,
		"order":       d.Order,
		"post_status": d.PostStatus,
	}
	if d.PerPage > 0 {
		m["posts_per_page"] = d.PerPage
	}
	if d.Search != "" {
		m["s"] = d.Search
	}
	for tax, slug := range d.Terms {
		m[tax] = slug
	}
	if d.Featured != nil {
		m["featured"] = *d.Featured
	}
	if d.Remote != nil {
		m["remote"] = *d.Remote
	}
	return m
}

// Encode serializes the descriptor to JSON. Keys are emitted in sorted order,
// so equal descriptors always encode to identical bytes.
func (d Descriptor) Encode() string {
	b, err := json.Marshal(d.Map())
	if err != nil {
		// map[string]any of strings, ints and bools always marshals
		return "{}"
	}
	return string(b)
}

// TermPairs returns the taxonomy filters sorted by taxonomy name.
func (d Descriptor) TermPairs() [][2]string {
	keys := make([]string, 0, len(d.Terms))
	for k := range d.Terms {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([][2]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, [2]string{k, d.Terms[k]})
	}
	return pairs
}

func cloneTerms(in map[string]string) map[string]string {
	if in == nil {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
