package pagination

import (
	"errors"
	"fmt"
)

// ErrPageOutOfRange reports a page number so large that its offset cannot be
// represented. Such a page is always past the end of any listing.
var ErrPageOutOfRange = errors.New("page out of range")

// Validate validates pagination parameters against the configuration.
func (p Params) Validate(config Config) error {
	if p.Page < 1 {
		return fmt.Errorf("page must be a positive integer")
	}
	if p.Limit < 1 || p.Limit > config.MaxLimit {
		return fmt.Errorf("limit must be between 1 and %d", config.MaxLimit)
	}
	if p.Page > MaxPage(p.Limit) {
		return fmt.Errorf("page %d: %w", p.Page, ErrPageOutOfRange)
	}
	return nil
}

// WithDefaults coerces params into range instead of rejecting them:
//   - page <= 0 becomes config.DefaultPage
//   - limit <= 0 becomes config.DefaultLimit
//   - limit > config.MaxLimit is capped
func (p Params) WithDefaults(config Config) Params {
	if p.Page <= 0 {
		p.Page = config.DefaultPage
	}
	if p.Limit <= 0 {
		p.Limit = config.DefaultLimit
	}
	if p.Limit > config.MaxLimit {
		p.Limit = config.MaxLimit
	}
	return p
}
