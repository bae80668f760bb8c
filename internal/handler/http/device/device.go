// Package device classifies visitors by the device they browse from.
package device

import (
	"net/http"

	"github.com/mssola/useragent"
)

// IsMobile reports whether r comes from a phone. The Sec-CH-UA-Mobile client
// hint wins when present; otherwise the User-Agent string is parsed.
func IsMobile(r *http.Request) bool {
	switch r.Header.Get("Sec-CH-UA-Mobile") {
	case "?1":
		return true
	case "?0":
		return false
	}

	ua := r.UserAgent()
	if ua == "" {
		return false
	}
	return useragent.New(ua).Mobile()
}
