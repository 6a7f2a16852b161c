// Package vault orchestrates the account store, the session issuer and the
// envelope cipher into the user-facing register, login and item operations.
package vault

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/mterrano/lockbox/session"
	"github.com/mterrano/lockbox/storage"
)

// User-displayable operation messages. They never contain cryptographic
// material and never distinguish "no such user" from "wrong secret" beyond
// what the attempt count already implies.
const (
	msgRegistered      = "User registered successfully"
	msgUsernameTaken   = "Username already exists"
	msgRegisterFailed  = "Registration failed. Please try again."
	msgLoginOK         = "Login successful"
	msgLoginFailed     = "Login failed. Please try again."
	msgLocked          = "Account locked due to too many failed attempts. Please try again later."
	msgUnauthenticated = "Not authenticated. Please login again."
	msgStored          = "Data stored successfully"
	msgStoreFailed     = "Failed to store data. Please try again."
	msgNotFound        = "Data not found"
	msgRetrieved       = "Data retrieved successfully"
	msgRetrieveFailed  = "Failed to retrieve data. Please try again."
	msgForcedLogout    = "Too many failed attempts. You have been logged out."
	msgLoggedOut       = "Logged out successfully"
	msgKeys            = "Keys retrieved successfully"
)

// Result is the tagged outcome of a facade operation. Message is always
// safe to display to the user.
type Result struct {
	Success bool
	Code    Code
	Message string
}

// LoginResult carries the session token issued on a successful login.
type LoginResult struct {
	Result
	Token     string
	ExpiresAt time.Time
}

// RetrieveResult carries the decrypted item value. SessionRevoked is set
// when repeated authentication failures forced a logout; the caller must
// discard its session token.
type RetrieveResult struct {
	Result
	Data           string
	SessionRevoked bool
}

// KeysResult carries the caller's stored item keys.
type KeysResult struct {
	Result
	Keys []string
}

// Service is the authentication and storage facade.
type Service struct {
	store    storage.AccountStore
	sessions *session.Issuer
	logger   *slog.Logger
}

// NewService creates a Service. A nil logger discards log output.
func NewService(store storage.AccountStore, sessions *session.Issuer, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{store: store, sessions: sessions, logger: logger}
}

func ok(code Code, msg string) Result {
	return Result{Success: true, Code: code, Message: msg}
}

func fail(code Code, msg string) Result {
	return Result{Success: false, Code: code, Message: msg}
}

// Register creates a new account. Registration itself is not rate limited.
func (s *Service) Register(ctx context.Context, username, password string) Result {
	err := s.store.Register(username, password)
	switch {
	case errors.Is(err, storage.ErrUsernameTaken):
		return fail(CodeUsernameTaken, msgUsernameTaken)
	case err != nil:
		s.logger.Error("register: store failure", "error", err)
		return fail(CodeInternal, msgRegisterFailed)
	}
	s.logger.Info("user registered", "username", username)
	return ok(CodeOK, msgRegistered)
}

// Login authenticates username/password and issues a session token. The
// lockout check runs strictly before the password check, so a locked
// account rejects even the correct password.
func (s *Service) Login(ctx context.Context, username, password string) LoginResult {
	attempts := s.store.Failures(username)
	if Locked(attempts, MaxLoginAttempts) {
		return LoginResult{Result: fail(CodeAccountLocked, msgLocked)}
	}

	if s.store.CheckPassword(username, password) {
		token, sess, err := s.sessions.Create(username)
		if err != nil {
			s.logger.Error("login: issuing session failed", "error", err)
			return LoginResult{Result: fail(CodeInternal, msgLoginFailed)}
		}
		s.store.ResetFailures(username)
		s.logger.Info("user logged in", "username", username)
		return LoginResult{
			Result:    ok(CodeOK, msgLoginOK),
			Token:     token,
			ExpiresAt: sess.ExpiresAt,
		}
	}

	s.store.IncrementFailures(username)
	remaining := MaxLoginAttempts - (attempts + 1)
	if remaining <= 0 {
		s.logger.Info("account locked", "username", username)
		return LoginResult{Result: fail(CodeAccountLocked, msgLocked)}
	}
	return LoginResult{Result: fail(CodeInvalidCredentials,
		fmt.Sprintf("Invalid username or password. %d attempts remaining.", remaining))}
}

// StoreItem encrypts value under passkey and stores it at key for the
// session's user, overwriting any existing item.
func (s *Service) StoreItem(ctx context.Context, token, key, value, passkey string) Result {
	sess, err := s.sessions.Validate(token)
	if err != nil {
		return fail(CodeUnauthenticated, msgUnauthenticated)
	}

	env, err := storage.Seal([]byte(value), passkey)
	if err != nil {
		s.logger.Error("store item: seal failed", "error", err)
		return fail(CodeInternal, msgStoreFailed)
	}
	if err := s.store.PutItem(sess.Username, key, env.Encode()); err != nil {
		s.logger.Error("store item: write failed", "username", sess.Username, "error", err)
		return fail(CodeInternal, msgStoreFailed)
	}
	return ok(CodeOK, msgStored)
}

// RetrieveItem fetches and decrypts the item at key. The lockout check
// runs before any ciphertext is touched, so a locked account cannot use
// an existing session as a passkey-guessing oracle. A wrong passkey
// increments the shared failure counter; reaching the threshold revokes
// the session. A successful retrieval does not reset the counter; only a
// successful login does.
func (s *Service) RetrieveItem(ctx context.Context, token, key, passkey string) RetrieveResult {
	sess, err := s.sessions.Validate(token)
	if err != nil {
		return RetrieveResult{Result: fail(CodeUnauthenticated, msgUnauthenticated)}
	}

	if Locked(s.store.Failures(sess.Username), MaxLoginAttempts) {
		return RetrieveResult{Result: fail(CodeAccountLocked, msgLocked)}
	}

	sealed, err := s.store.GetItem(sess.Username, key)
	if errors.Is(err, storage.ErrNotFound) {
		return RetrieveResult{Result: fail(CodeItemNotFound, msgNotFound)}
	}
	if err != nil {
		s.logger.Error("retrieve item: read failed", "username", sess.Username, "error", err)
		return RetrieveResult{Result: fail(CodeInternal, msgRetrieveFailed)}
	}

	env, err := storage.DecodeEnvelope(sealed)
	if err != nil {
		// A structurally invalid stored envelope is an internal fault,
		// not a wrong passkey; it does not burn an attempt.
		s.logger.Error("retrieve item: corrupt envelope", "username", sess.Username, "error", err)
		return RetrieveResult{Result: fail(CodeInternal, msgRetrieveFailed)}
	}

	plaintext, err := storage.Open(env, passkey)
	if err != nil {
		if !errors.Is(err, storage.ErrAuthenticationFailed) {
			s.logger.Error("retrieve item: open failed", "username", sess.Username, "error", err)
			return RetrieveResult{Result: fail(CodeInternal, msgRetrieveFailed)}
		}

		s.store.IncrementFailures(sess.Username)
		attempts := s.store.Failures(sess.Username)
		remaining := MaxLoginAttempts - attempts
		if remaining <= 0 {
			s.logger.Info("forced logout", "username", sess.Username)
			return RetrieveResult{
				Result:         fail(CodeForcedLogout, msgForcedLogout),
				SessionRevoked: true,
			}
		}
		return RetrieveResult{Result: fail(CodeAuthenticationFailure,
			fmt.Sprintf("Incorrect passkey. %d attempts remaining before logout.", remaining))}
	}

	return RetrieveResult{
		Result: ok(CodeOK, msgRetrieved),
		Data:   string(plaintext),
	}
}

// ListKeys returns the session user's stored item keys.
func (s *Service) ListKeys(ctx context.Context, token string) KeysResult {
	sess, err := s.sessions.Validate(token)
	if err != nil {
		return KeysResult{Result: fail(CodeUnauthenticated, msgUnauthenticated)}
	}

	keys, err := s.store.ListKeys(sess.Username)
	if err != nil {
		s.logger.Error("list keys failed", "username", sess.Username, "error", err)
		return KeysResult{Result: fail(CodeInternal, msgRetrieveFailed)}
	}
	return KeysResult{Result: ok(CodeOK, msgKeys), Keys: keys}
}

// Logout always succeeds, even for an absent or expired token. The actual
// revocation is the caller discarding the token; logging out a dead
// session is not a failure the user can act on.
func (s *Service) Logout(ctx context.Context, token string) Result {
	return ok(CodeOK, msgLoggedOut)
}
