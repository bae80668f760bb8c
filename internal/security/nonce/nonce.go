// Package nonce issues and verifies the anti-forgery tokens embedded in
// listing pages and posted back by the AJAX fetch endpoints.
//
// A token is an HS256 JWT bound to an action name and to the visitor's
// session id, with an expiry. It proves the request came from a page this
// service rendered for the same visitor.
package nonce

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ActionPagination is the action name used by the pagination endpoints.
const ActionPagination = "recruitpro_pagination"

// MinSecretLength is the shortest accepted signing secret.
const MinSecretLength = 32

var (
	// ErrInvalidToken covers missing, malformed, forged and mis-bound tokens.
	ErrInvalidToken = errors.New("invalid anti-forgery token")
	// ErrExpired is returned for a well-formed token past its expiry.
	ErrExpired = errors.New("anti-forgery token expired")
)

type claims struct {
	Action string `json:"act"`
	jwt.RegisteredClaims
}

// Manager issues and verifies tokens.
type Manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock overrides the time source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// NewManager returns a Manager signing with secret. ttl <= 0 means 12 hours.
func NewManager(secret []byte, ttl time.Duration, opts ...Option) (*Manager, error) {
	if len(secret) < MinSecretLength {
		return nil, fmt.Errorf("nonce secret must be at least %d bytes", MinSecretLength)
	}
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	m := &Manager{secret: secret, ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Issue returns a token for action bound to session.
func (m *Manager) Issue(action, session string) (string, error) {
	now := m.now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Action: action,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   session,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	})
	signed, err := tok.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign nonce: %w", err)
	}
	return signed, nil
}

// Verify checks that token was issued by m for action and session and has
// not expired. It returns ErrExpired or ErrInvalidToken on failure.
func (m *Manager) Verify(token, action, session string) error {
	if token == "" || session == "" {
		return ErrInvalidToken
	}
	var c claims
	_, err := jwt.ParseWithClaims(token, &c, func(*jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
		jwt.WithExpirationRequired(),
		jwt.WithSubject(session),
	)
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	case err != nil:
		return ErrInvalidToken
	case c.Action != action:
		return ErrInvalidToken
	}
	return nil
}
