// ABOUTME: JWT token issuing and verification for authenticating API requests
// ABOUTME: Uses HS256 signing with a process-wide secret and fixed validity duration

package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/skoehler/tasktrack/internal/config"
)

// ErrInvalidToken is returned for every verification failure: malformed
// input, wrong signature, expired token, missing subject. Callers get one
// uniform rejection so a presented token reveals nothing about why it failed.
var ErrInvalidToken = errors.New("invalid token")

// TokenIssuer creates and verifies signed identity tokens. The secret and
// validity duration are fixed at construction and safe for concurrent use.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer creates a token issuer with the given signing secret and
// token validity duration. The secret length floor is shared with config
// validation; short HS256 secrets are brute-forceable.
func NewTokenIssuer(secret []byte, ttl time.Duration) (*TokenIssuer, error) {
	if len(secret) < config.MinSecretLength {
		return nil, fmt.Errorf("jwt secret must be at least %d bytes, got %d", config.MinSecretLength, len(secret))
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("token ttl must be positive, got %v", ttl)
	}
	return &TokenIssuer{secret: secret, ttl: ttl}, nil
}

// Issue creates a signed token for the given subject, valid from now until
// now plus the configured validity duration. Timestamps have second granularity.
func (t *TokenIssuer) Issue(subject string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": subject,
		"iat": now.Unix(),
		"exp": now.Add(t.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Verify validates the token's signature and expiry and extracts the subject.
// Every failure mode collapses into ErrInvalidToken.
func (t *TokenIssuer) Verify(tokenString string) (subject string, err error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	})

	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", ErrInvalidToken
	}

	return sub, nil
}
