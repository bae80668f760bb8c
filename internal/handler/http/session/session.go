// Package session gives every visitor an opaque ID kept in a cookie.
// Anti-forgery tokens are bound to it so a token lifted from one browser
// does not verify in another.
package session

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const (
	// CookieName is the visitor session cookie.
	CookieName = "recruitpro_session"
	// DefaultMaxAge is how long the cookie lives.
	DefaultMaxAge = 30 * 24 * time.Hour
)

type contextKey struct{}

// Options control the cookie attributes.
type Options struct {
	Secure bool
	MaxAge time.Duration
}

// FromContext returns the session ID stored by Middleware, or "".
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(contextKey{}).(string)
	return id
}

// WithID stores a session ID in ctx.
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// Middleware reads the session cookie, issuing a new one when it is missing
// or not a UUID, and exposes the ID through FromContext.
func Middleware(opts Options) func(http.Handler) http.Handler {
	if opts.MaxAge <= 0 {
		opts.MaxAge = DefaultMaxAge
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := ""
			if c, err := r.Cookie(CookieName); err == nil {
				if parsed, err := uuid.Parse(c.Value); err == nil {
					id = parsed.String()
				}
			}

			if id == "" {
				id = uuid.NewString()
				http.SetCookie(w, &http.Cookie{
					Name:     CookieName,
					Value:    id,
					Path:     "/",
					MaxAge:   int(opts.MaxAge / time.Second),
					HttpOnly: true,
					Secure:   opts.Secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			next.ServeHTTP(w, r.WithContext(WithID(r.Context(), id)))
		})
	}
}
