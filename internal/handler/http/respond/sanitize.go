package respond

import (
	"regexp"
)

var (
	// user:password@ in DSNs
	dsnPasswordPattern = regexp.MustCompile(`://([^:/@\s]+):([^@\s]+)@`)
	// password=... in key/value DSNs
	kvPasswordPattern = regexp.MustCompile(`(?i)(password|secret)=\S+`)
	// compact JWTs (admin bearer tokens, pagination nonces)
	jwtPattern = regexp.MustCompile(`eyJ[A-Za-z0-9_-]*\.[A-Za-z0-9_-]+\.[A-Za-z0-9_-]*`)
)

// SanitizeError returns err's message with credentials and tokens masked.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	msg = dsnPasswordPattern.ReplaceAllString(msg, "://$1:****@")
	msg = kvPasswordPattern.ReplaceAllString(msg, "$1=****")
	msg = jwtPattern.ReplaceAllString(msg, "****")
	return msg
}
