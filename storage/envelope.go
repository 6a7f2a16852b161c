// Package storage provides the passkey envelope cipher and the account
// storage abstraction for encrypted user items.
package storage

import (
	"errors"

	"github.com/awnumar/memguard"

	"github.com/mterrano/lockbox/internal/util"
)

const (
	// NonceSize is the GCM nonce length stored in every envelope.
	NonceSize = util.NonceSize
	// SaltSize is the KDF salt length stored in every envelope.
	SaltSize = 16

	// headerSize is the minimum decoded envelope length: nonce || salt.
	headerSize = NonceSize + SaltSize
)

var (
	// ErrAuthenticationFailed indicates a wrong passkey or a tampered
	// envelope. The two causes are deliberately indistinguishable.
	ErrAuthenticationFailed = errors.New("authentication failed")
	// ErrMalformedEnvelope indicates an envelope shorter than the minimum
	// header length or otherwise structurally invalid.
	ErrMalformedEnvelope = errors.New("malformed envelope")
)

// Envelope is a self-contained encrypted item: a fresh KDF salt, a fresh
// GCM nonce and the authenticated ciphertext. Immutable once created.
type Envelope struct {
	Nonce      []byte
	Salt       []byte
	Ciphertext []byte
}

// DeriveKey stretches passkey into an AES-256 key using PBKDF2-HMAC-SHA256.
// The passkey is NFKD-normalized first so the same logical passphrase always
// derives the same key. Deterministic for a fixed (passkey, salt) pair.
func DeriveKey(passkey string, salt []byte) []byte {
	return util.DerivePBKDF2Key(util.Normalize(passkey), salt, util.DefaultPBKDF2Params())
}

// Seal encrypts plaintext under a key derived from passkey. Salt and nonce
// are freshly random on every call, even for identical inputs.
func Seal(plaintext []byte, passkey string) (*Envelope, error) {
	salt, err := util.RandomBytes(SaltSize)
	if err != nil {
		return nil, err
	}
	nonce, err := util.RandomBytes(NonceSize)
	if err != nil {
		return nil, err
	}

	key := memguard.NewBufferFromBytes(DeriveKey(passkey, salt))
	defer key.Destroy()

	ciphertext, err := util.SealAES(plaintext, key.Bytes(), nonce)
	if err != nil {
		return nil, err
	}
	return &Envelope{Nonce: nonce, Salt: salt, Ciphertext: ciphertext}, nil
}

// Open decrypts env with a key re-derived from passkey and the stored salt.
// Returns ErrAuthenticationFailed for a wrong passkey or modified ciphertext.
func Open(env *Envelope, passkey string) ([]byte, error) {
	if env == nil || len(env.Nonce) != NonceSize || len(env.Salt) != SaltSize {
		return nil, ErrMalformedEnvelope
	}

	key := memguard.NewBufferFromBytes(DeriveKey(passkey, env.Salt))
	defer key.Destroy()

	plaintext, err := util.OpenAES(env.Ciphertext, key.Bytes(), env.Nonce)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}
	return plaintext, nil
}

// Encode serializes the envelope as nonce || salt || ciphertext in unpadded
// URL-safe base64. This layout is part of the stored-data contract.
func (e *Envelope) Encode() string {
	buf := make([]byte, 0, len(e.Nonce)+len(e.Salt)+len(e.Ciphertext))
	buf = append(buf, e.Nonce...)
	buf = append(buf, e.Salt...)
	buf = append(buf, e.Ciphertext...)
	return util.Base64Encode(buf)
}

// DecodeEnvelope reverses Encode. Inputs shorter than the nonce plus salt
// header are rejected with ErrMalformedEnvelope.
func DecodeEnvelope(s string) (*Envelope, error) {
	raw, err := util.Base64Decode(s)
	if err != nil {
		return nil, ErrMalformedEnvelope
	}
	if len(raw) < headerSize {
		return nil, ErrMalformedEnvelope
	}
	return &Envelope{
		Nonce:      util.CopyBytes(raw[:NonceSize]),
		Salt:       util.CopyBytes(raw[NonceSize:headerSize]),
		Ciphertext: util.CopyBytes(raw[headerSize:]),
	}, nil
}
