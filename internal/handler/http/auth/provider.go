// Package auth protects the admin endpoints with HS256 bearer tokens issued
// to the single administrator configured through the environment.
package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"recruitpro/pkg/config"
)

// RoleAdmin is the only role that may change settings.
const RoleAdmin = "admin"

// MinSecretLength is the shortest accepted JWT_SECRET.
const MinSecretLength = 32

// DefaultTokenTTL is the lifetime of an admin token.
const DefaultTokenTTL = time.Hour

// ErrInvalidCredentials is returned for any failed login.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Admin holds the administrator credentials and the signing secret.
type Admin struct {
	Email    string
	Password string
	Secret   []byte
	TTL      time.Duration

	now func() time.Time
}

// LoadAdmin reads ADMIN_EMAIL, ADMIN_PASSWORD and JWT_SECRET.
func LoadAdmin() (*Admin, error) {
	a := &Admin{
		Email:    config.GetEnvString("ADMIN_EMAIL", ""),
		Password: config.GetEnvString("ADMIN_PASSWORD", ""),
		Secret:   []byte(config.GetEnvString("JWT_SECRET", "")),
		TTL:      config.GetEnvDuration("JWT_TTL", DefaultTokenTTL),
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// Validate checks that the configuration is usable.
func (a *Admin) Validate() error {
	if len(a.Secret) < MinSecretLength {
		return fmt.Errorf("JWT_SECRET must be at least %d characters", MinSecretLength)
	}
	if a.Email == "" || a.Password == "" {
		return errors.New("ADMIN_EMAIL and ADMIN_PASSWORD are required")
	}
	if a.TTL <= 0 {
		return errors.New("JWT_TTL must be positive")
	}
	return nil
}

func (a *Admin) clock() time.Time {
	if a.now != nil {
		return a.now()
	}
	return time.Now()
}

// Check compares email and password with the configured ones in constant
// time.
func (a *Admin) Check(email, password string) error {
	userMatch := subtle.ConstantTimeCompare([]byte(email), []byte(a.Email)) == 1
	passMatch := subtle.ConstantTimeCompare([]byte(password), []byte(a.Password)) == 1
	if email == "" || password == "" || !userMatch || !passMatch {
		return ErrInvalidCredentials
	}
	return nil
}

// Issue signs an admin token for email.
func (a *Admin) Issue(email string) (string, error) {
	now := a.clock()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  email,
		"role": RoleAdmin,
		"iat":  now.Unix(),
		"exp":  now.Add(a.TTL).Unix(),
	})
	signed, err := tok.SignedString(a.Secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
