package entity

import (
	"fmt"
	"regexp"
)

const maxSlugLength = 200

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// ValidateSlug checks that s is a lowercase, hyphen-separated URL slug.
func ValidateSlug(s string) error {
	if s == "" {
		return &ValidationError{Field: "slug", Message: "slug is required"}
	}
	if len(s) > maxSlugLength {
		return &ValidationError{
			Field:   "slug",
			Message: fmt.Sprintf("slug must not exceed %d characters", maxSlugLength),
		}
	}
	if !slugPattern.MatchString(s) {
		return &ValidationError{Field: "slug", Message: "slug must be lowercase letters, digits and hyphens"}
	}
	return nil
}
