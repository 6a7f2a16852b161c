package storage

import (
	"crypto/sha256"
	"errors"

	"github.com/mterrano/lockbox/internal/util"
)

var (
	// ErrUsernameTaken is returned when registering an already-present
	// username (case-sensitive exact match).
	ErrUsernameTaken = errors.New("username already exists")
	// ErrUserNotFound is returned when writing an item for an unknown user.
	ErrUserNotFound = errors.New("user not found")
	// ErrNotFound is returned when reading an item that does not exist.
	// It covers both an unknown user and an unknown key.
	ErrNotFound = errors.New("not found")
)

// AccountStore owns all user records: the password verifier, the per-key
// item mapping and the failed-attempt counter shared by login and decrypt
// failures. Implementations must make every mutation atomic with respect
// to concurrent calls.
type AccountStore interface {
	// Register creates a user with a hashed password verifier, no items
	// and a zeroed failure counter. Returns ErrUsernameTaken if the
	// username is already present.
	Register(username, password string) error
	// CheckPassword reports whether password matches the stored verifier.
	// Always false for an absent user.
	CheckPassword(username, password string) bool

	// PutItem stores an encoded envelope (Envelope.Encode) under key,
	// silently overwriting any existing item. Returns ErrUserNotFound
	// for an absent user.
	PutItem(username, key, sealed string) error
	// GetItem returns the encoded envelope stored under key. ErrNotFound
	// covers both an unknown user and an unknown key.
	GetItem(username, key string) (string, error)
	// ListKeys returns the user's item keys in sorted order.
	ListKeys(username string) ([]string, error)

	// IncrementFailures adds one failed attempt. No-op for an absent user.
	IncrementFailures(username string)
	// ResetFailures zeroes the failure counter. No-op for an absent user.
	ResetFailures(username string)
	// Failures returns the failed-attempt count, zero for an absent user.
	Failures(username string) int
}

// HashPassword produces the one-way password verifier stored in place of
// the raw password. It is a fast hash, not a substitute for the slow
// passkey KDF used by the envelope cipher.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(util.Normalize(password)))
	return util.HexEncode(sum[:])
}
