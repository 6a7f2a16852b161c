package util

import (
	"bytes"
	"testing"
)

func TestAES(t *testing.T) {
	key, _ := RandomBytes(AESKeySize)
	nonce, _ := RandomBytes(NonceSize)
	plainText := []byte("hello world")

	t.Run("SealOpen", func(t *testing.T) {
		cipherText, err := SealAES(plainText, key, nonce)
		if err != nil {
			t.Fatalf("SealAES failed: %v", err)
		}

		decrypted, err := OpenAES(cipherText, key, nonce)
		if err != nil {
			t.Fatalf("OpenAES failed: %v", err)
		}

		if !bytes.Equal(plainText, decrypted) {
			t.Errorf("expected %s, got %s", plainText, decrypted)
		}
	})

	t.Run("TamperCipherText", func(t *testing.T) {
		cipherText, _ := SealAES(plainText, key, nonce)
		cipherText[len(cipherText)-1] ^= 0xFF
		_, err := OpenAES(cipherText, key, nonce)
		if err == nil {
			t.Error("expected error with tampered ciphertext, got nil")
		}
	})

	t.Run("WrongNonce", func(t *testing.T) {
		cipherText, _ := SealAES(plainText, key, nonce)
		other, _ := RandomBytes(NonceSize)
		_, err := OpenAES(cipherText, key, other)
		if err == nil {
			t.Error("expected error with wrong nonce, got nil")
		}
	})

	t.Run("RejectBadKeySize", func(t *testing.T) {
		_, err := SealAES(plainText, []byte("too short"), nonce)
		if err == nil {
			t.Error("expected error with wrong key size, got nil")
		}
	})

	t.Run("RejectBadNonceSize", func(t *testing.T) {
		_, err := SealAES(plainText, key, []byte("short"))
		if err == nil {
			t.Error("expected error with wrong nonce size, got nil")
		}
	})
}

func TestPBKDF2(t *testing.T) {
	params := DefaultPBKDF2Params()
	passphrase := "correct horse battery staple"
	salt := []byte("random salt bytes")

	key1 := DerivePBKDF2Key(passphrase, salt, params)
	if len(key1) != AESKeySize {
		t.Errorf("expected key length %d, got %d", AESKeySize, len(key1))
	}

	key2 := DerivePBKDF2Key(passphrase, salt, params)
	if !bytes.Equal(key1, key2) {
		t.Error("PBKDF2 should be deterministic")
	}

	key3 := DerivePBKDF2Key("wrong passphrase", salt, params)
	if bytes.Equal(key1, key3) {
		t.Error("different passphrases should derive different keys")
	}

	key4 := DerivePBKDF2Key(passphrase, []byte("another salt bytes"), params)
	if bytes.Equal(key1, key4) {
		t.Error("different salts should derive different keys")
	}
}

func TestNormalize(t *testing.T) {
	// U+00E9 (é) and U+0065 U+0301 (e + combining acute) must normalize
	// to the same representation.
	composed := "café"
	decomposed := "café"
	if Normalize(composed) != Normalize(decomposed) {
		t.Error("expected NFKD to unify composed and decomposed forms")
	}
}

func TestBase64RoundTrip(t *testing.T) {
	b, _ := RandomBytes(57)
	decoded, err := Base64Decode(Base64Encode(b))
	if err != nil {
		t.Fatalf("Base64Decode failed: %v", err)
	}
	if !bytes.Equal(b, decoded) {
		t.Error("base64 round trip mismatch")
	}
}

func TestRandomBytes(t *testing.T) {
	a, err := RandomBytes(16)
	if err != nil {
		t.Fatalf("RandomBytes failed: %v", err)
	}
	b, _ := RandomBytes(16)
	if bytes.Equal(a, b) {
		t.Error("two random draws should differ")
	}
}
