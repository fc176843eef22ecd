package token

import (
	"errors"

	"lastbite-client/internal/pkg/clock"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissing = errors.New("auth token missing")
	ErrExpired = errors.New("auth token expired")
)

// Source resolves the bearer credential for outgoing gateway calls.
// An error means the call must not reach the network.
type Source interface {
	Token() (string, error)
}

// StaticSource holds a single session credential. When the credential is a
// JWT its exp claim is checked locally so an expired session fails fast
// instead of bouncing off the server; opaque tokens pass through untouched.
type StaticSource struct {
	token string
	clock clock.Clock
}

func NewStaticSource(token string, clk clock.Clock) *StaticSource {
	return &StaticSource{token: token, clock: clk}
}

func (s *StaticSource) Token() (string, error) {
	if s.token == "" {
		return "", ErrMissing
	}

	claims := jwt.MapClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(s.token, claims)
	if err != nil {
		// Not a JWT; the server decides whether it is valid.
		return s.token, nil
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return s.token, nil
	}
	if exp.Before(s.clock.Now()) {
		return "", ErrExpired
	}

	return s.token, nil
}
