// Package session mints and verifies the signed tokens that back the
// admin session after a successful OTP verification.
package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultDuration is how long an admin session stays valid.
const DefaultDuration = 24 * time.Hour

// ErrInvalidToken reports a token that failed signature or expiry
// checks.
var ErrInvalidToken = errors.New("invalid session token")

// Claims is the session token payload.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Manager signs and verifies HS256 session tokens.
type Manager struct {
	secret   []byte
	duration time.Duration
	now      func() time.Time
}

// NewManager creates a Manager with the default session duration.
func NewManager(secret string) *Manager {
	return NewManagerWithDuration(secret, DefaultDuration)
}

// NewManagerWithDuration creates a Manager with a custom duration.
func NewManagerWithDuration(secret string, duration time.Duration) *Manager {
	return &Manager{
		secret:   []byte(secret),
		duration: duration,
		now:      time.Now,
	}
}

// Issue mints a signed token for the verified email.
func (m *Manager) Issue(email string) (string, error) {
	issuedAt := m.now()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(m.duration)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify parses a token and returns its claims. Any signature, format
// or expiry failure surfaces as ErrInvalidToken.
func (m *Manager) Verify(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
