// Package session issues and validates time-bounded session tokens.
// The issuer is stateless aside from a clock: a token is a signed claim of
// identity and expiry, and revocation is a directive to the token holder
// to discard it.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Duration is the default session lifetime.
const Duration = 7 * 24 * time.Hour

// ErrNoSession indicates an absent, unparseable or expired session. An
// expired token is equivalent to no token; callers must also clear the
// persisted copy so a stale token cannot be replayed.
var ErrNoSession = errors.New("no active session")

// Session is the validated identity carried by a token.
type Session struct {
	Username  string
	ExpiresAt time.Time
}

// Issuer creates, validates and refreshes session tokens signed with HS256.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// Option configures an Issuer.
type Option func(*Issuer)

// WithTTL overrides the default session lifetime.
func WithTTL(ttl time.Duration) Option {
	return func(i *Issuer) {
		i.ttl = ttl
	}
}

// WithClock overrides the time source. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(i *Issuer) {
		i.now = now
	}
}

// NewIssuer creates an Issuer signing with the given secret.
func NewIssuer(secret []byte, opts ...Option) *Issuer {
	i := &Issuer{
		secret: secret,
		ttl:    Duration,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Create issues a token for username expiring after the issuer's TTL.
func (i *Issuer) Create(username string) (string, Session, error) {
	now := i.now()
	// JWT numeric dates carry second precision; truncate so the expiry we
	// report matches the expiry a later Validate will parse back.
	expiresAt := now.Add(i.ttl).Truncate(time.Second)

	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		ID:        uuid.NewString(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", Session{}, fmt.Errorf("signing session token: %w", err)
	}
	return token, Session{Username: username, ExpiresAt: expiresAt}, nil
}

// Validate parses and verifies token. Any parse or signature failure, a
// missing subject or expiry, or an expiry at or before the current time
// yields ErrNoSession.
func (i *Issuer) Validate(token string) (Session, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(t *jwt.Token) (any, error) { return i.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil || !parsed.Valid {
		return Session{}, ErrNoSession
	}
	if claims.Subject == "" || claims.ExpiresAt == nil {
		return Session{}, ErrNoSession
	}
	// The library treats exp == now as still valid; the session contract
	// is now < expiresAt strictly.
	if !i.now().Before(claims.ExpiresAt.Time) {
		return Session{}, ErrNoSession
	}
	return Session{Username: claims.Subject, ExpiresAt: claims.ExpiresAt.Time}, nil
}

// Refresh validates token and, on success, re-issues it with a fresh
// expiry (sliding expiration).
func (i *Issuer) Refresh(token string) (string, Session, error) {
	sess, err := i.Validate(token)
	if err != nil {
		return "", Session{}, err
	}
	return i.Create(sess.Username)
}
