package util

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

// PBKDF2Params holds the tunable parameters for PBKDF2-HMAC-SHA256.
type PBKDF2Params struct {
	Iterations int `json:"iterations"`
	KeyLen     int `json:"key_len"`
}

// DefaultPBKDF2Params returns the parameters used for passkey stretching.
// The iteration count is part of the stored-envelope contract; changing it
// invalidates every envelope sealed with the old value.
func DefaultPBKDF2Params() PBKDF2Params {
	return PBKDF2Params{
		Iterations: 100000,
		KeyLen:     AESKeySize,
	}
}

// DerivePBKDF2Key stretches passphrase into a symmetric key. Deterministic
// for a fixed (passphrase, salt, params) triple.
func DerivePBKDF2Key(passphrase string, salt []byte, params PBKDF2Params) []byte {
	return pbkdf2.Key([]byte(passphrase), salt, params.Iterations, params.KeyLen, sha256.New)
}
