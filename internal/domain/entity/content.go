// Package entity defines the content items served by the listing pages and
// the domain errors shared across layers.
package entity

import (
	"strings"
	"time"
)

// Content types.
const (
	TypePost = "post"
	TypeJob  = "job"
)

// Content statuses. Only published content is ever listed.
const (
	StatusPublish = "publish"
	StatusDraft   = "draft"
	StatusPrivate = "private"
)

// Content is a blog post or a job listing. Job-only fields are zero for posts.
type Content struct {
	ID          int64
	Type        string
	Title       string
	Slug        string
	Excerpt     string
	Status      string
	AuthorName  string
	PublishedAt time.Time
	ModifiedAt  time.Time

	// job listings
	Company        string
	Location       string
	EmploymentType string
	SalaryMin      int
	SalaryMax      int
	Featured       bool
	Remote         bool

	Terms []Term
}

// Term is a taxonomy term attached to content, e.g. job_location/berlin.
type Term struct {
	Taxonomy string
	Slug     string
	Name     string
}

// IsJob reports whether c is a job listing.
func (c *Content) IsJob() bool {
	return c.Type == TypeJob
}

// Permalink returns the site-relative URL of the item.
func (c *Content) Permalink() string {
	if c.IsJob() {
		return "/jobs/" + c.Slug
	}
	return "/blog/" + c.Slug
}

// Validate checks the fields required to store c.
func (c *Content) Validate() error {
	if c.Type != TypePost && c.Type != TypeJob {
		return &ValidationError{Field: "type", Message: "type must be post or job"}
	}
	if strings.TrimSpace(c.Title) == "" {
		return &ValidationError{Field: "title", Message: "title is required"}
	}
	if err := ValidateSlug(c.Slug); err != nil {
		return err
	}
	switch c.Status {
	case StatusPublish, StatusDraft, StatusPrivate:
	default:
		return &ValidationError{Field: "status", Message: "unknown status"}
	}
	if c.SalaryMin < 0 || c.SalaryMax < 0 || (c.SalaryMax > 0 && c.SalaryMax < c.SalaryMin) {
		return &ValidationError{Field: "salary", Message: "salary range is invalid"}
	}
	for _, term := range c.Terms {
		if err := ValidateSlug(term.Slug); err != nil {
			return err
		}
	}
	return nil
}
