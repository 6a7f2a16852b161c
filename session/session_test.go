package session

import (
	"errors"
	"testing"
	"time"
)

var testSecret = []byte("test-signing-secret")

func TestCreateValidate(t *testing.T) {
	issuer := NewIssuer(testSecret)

	token, created, err := issuer.Create("alice")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.Username != "alice" {
		t.Errorf("expected username alice, got %q", created.Username)
	}

	sess, err := issuer.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if sess.Username != "alice" {
		t.Errorf("expected username alice, got %q", sess.Username)
	}
	if !sess.ExpiresAt.Equal(created.ExpiresAt) {
		t.Errorf("expected expiry %v, got %v", created.ExpiresAt, sess.ExpiresAt)
	}
}

func TestExpiry(t *testing.T) {
	start := time.Now()
	current := start
	issuer := NewIssuer(testSecret, WithClock(func() time.Time { return current }))

	token, _, err := issuer.Create("alice")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Just before expiry the session is Active.
	current = start.Add(Duration - time.Second)
	if _, err := issuer.Validate(token); err != nil {
		t.Errorf("expected session active before expiry, got %v", err)
	}

	// At the expiry instant the session is Absent: valid iff now < expiresAt.
	current = start.Add(Duration)
	if _, err := issuer.Validate(token); !errors.Is(err, ErrNoSession) {
		t.Errorf("expected ErrNoSession at expiry, got %v", err)
	}

	current = start.Add(Duration + time.Hour)
	if _, err := issuer.Validate(token); !errors.Is(err, ErrNoSession) {
		t.Errorf("expected ErrNoSession after expiry, got %v", err)
	}
}

func TestRefreshSlidesExpiry(t *testing.T) {
	start := time.Now()
	current := start
	issuer := NewIssuer(testSecret, WithClock(func() time.Time { return current }))

	token, _, err := issuer.Create("alice")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	current = start.Add(3 * 24 * time.Hour)
	refreshed, sess, err := issuer.Refresh(token)
	if err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if want := current.Add(Duration).Truncate(time.Second); !sess.ExpiresAt.Equal(want) {
		t.Errorf("expected refreshed expiry %v, got %v", want, sess.ExpiresAt)
	}

	// The refreshed token outlives the original's window.
	current = start.Add(Duration + time.Hour)
	if _, err := issuer.Validate(refreshed); err != nil {
		t.Errorf("expected refreshed session to be active, got %v", err)
	}

	// Refreshing an expired token fails.
	current = start.Add(100 * 24 * time.Hour)
	if _, _, err := issuer.Refresh(refreshed); !errors.Is(err, ErrNoSession) {
		t.Errorf("expected ErrNoSession, got %v", err)
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	issuer := NewIssuer(testSecret)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		if _, err := issuer.Validate(token); !errors.Is(err, ErrNoSession) {
			t.Errorf("expected ErrNoSession for %q, got %v", token, err)
		}
	}
}

func TestValidateRejectsForeignSignature(t *testing.T) {
	issuer := NewIssuer(testSecret)
	other := NewIssuer([]byte("a different secret"))

	token, _, err := other.Create("alice")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := issuer.Validate(token); !errors.Is(err, ErrNoSession) {
		t.Errorf("expected ErrNoSession for foreign signature, got %v", err)
	}
}
