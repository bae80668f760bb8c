package middleware

import (
	"net/http"

	"recruitpro/pkg/security/csp"
)

// SecurityHeaders sets the Content-Security-Policy from policy together with
// nosniff and referrer headers on every response.
func SecurityHeaders(policy *csp.CSPBuilder) func(http.Handler) http.Handler {
	header, value := policy.HeaderName(), policy.Build()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			if value != "" {
				h.Set(header, value)
			}
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			next.ServeHTTP(w, r)
		})
	}
}
