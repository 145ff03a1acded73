// Package auth provides password hashing, bearer token issuance, and request
// authentication for the orgdesk API.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Errors returned by token operations.
var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrInvalidSecret = errors.New("jwt secret must not be empty")
)

// JWTManager signs and verifies bearer tokens carrying a subject identity
// and expiry. The signing key is process-wide configuration; rotating it
// invalidates all outstanding tokens.
type JWTManager struct {
	secret     []byte
	defaultTTL time.Duration
}

// NewJWTManager creates a JWTManager with the given secret and the token
// lifetime used when Issue is called with a zero ttl.
func NewJWTManager(secret string, defaultTTL time.Duration) (*JWTManager, error) {
	if secret == "" {
		return nil, ErrInvalidSecret
	}
	return &JWTManager{
		secret:     []byte(secret),
		defaultTTL: defaultTTL,
	}, nil
}

// Issue creates a signed HS256 token for the subject, expiring after ttl.
// A ttl of zero uses the manager's default.
func (m *JWTManager) Issue(subject uuid.UUID, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = m.defaultTTL
	}
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Verify parses and validates a token string, returning its subject. A bad
// signature, malformed token, or passed expiry yields ErrInvalidToken.
func (m *JWTManager) Verify(tokenStr string) (uuid.UUID, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	subject, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}
	return subject, nil
}
