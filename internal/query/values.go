package query

import (
	"net/url"
	"strconv"
)

// FromValues sanitizes the filters of a listing URL ("?job_location=berlin&s=go")
// into a descriptor for postType. Only the first value of each key is used.
func FromValues(v url.Values, postType string) Descriptor {
	raw := make(map[string]any, len(v))
	for key, vals := range v {
		if len(vals) > 0 {
			raw[key] = vals[0]
		}
	}
	return Sanitize(raw, postType)
}

// FilterValues returns the filters of d that differ from the defaults, in the
// form FromValues accepts. Paging, content type and status are left out so
// the result can be appended to any page link of the same listing.
func (d Descriptor) FilterValues() url.Values {
	v := url.Values{}
	if d.PerPage > 0 {
		v.Set("posts_per_page", strconv.Itoa(d.PerPage))
	}
	if d.Search != "" {
		v.Set("s", d.Search)
	}
	if d.OrderBy != "" && d.OrderBy != OrderByDate {
		v.Set("orderby", d.OrderBy)
	}
	if d.Order != "" && d.Order != OrderDesc {
		v.Set("order", d.Order)
	}
	for _, pair := range d.TermPairs() {
		v.Set(pair[0], pair[1])
	}
	if d.Featured != nil {
		v.Set("featured", strconv.FormatBool(*d.Featured))
	}
	if d.Remote != nil {
		v.Set("remote", strconv.FormatBool(*d.Remote))
	}
	return v
}
