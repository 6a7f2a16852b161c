package vault

// Code classifies the outcome of a facade operation. Every expected
// failure is a code, not an error value, so callers can branch without
// parsing messages.
type Code int

const (
	// CodeOK is a successful operation.
	CodeOK Code = iota
	// CodeUsernameTaken is a registration with an existing username.
	CodeUsernameTaken
	// CodeInvalidCredentials is a wrong username or password.
	CodeInvalidCredentials
	// CodeAccountLocked is a login or decrypt rejected by the lockout
	// policy, before any secret was checked.
	CodeAccountLocked
	// CodeUnauthenticated is an operation attempted without an active
	// session.
	CodeUnauthenticated
	// CodeItemNotFound is a retrieval of a key with no stored item.
	CodeItemNotFound
	// CodeAuthenticationFailure is a wrong passkey or corrupted envelope;
	// the two are deliberately indistinguishable.
	CodeAuthenticationFailure
	// CodeForcedLogout is an authentication failure that pushed the
	// failure counter to the lockout threshold, revoking the session.
	CodeForcedLogout
	// CodeInternal is an unexpected fault, reported generically.
	CodeInternal
)

var codeNames = map[Code]string{
	CodeOK:                    "ok",
	CodeUsernameTaken:         "username_taken",
	CodeInvalidCredentials:    "invalid_credentials",
	CodeAccountLocked:         "account_locked",
	CodeUnauthenticated:       "unauthenticated",
	CodeItemNotFound:          "item_not_found",
	CodeAuthenticationFailure: "authentication_failure",
	CodeForcedLogout:          "forced_logout",
	CodeInternal:              "internal",
}

func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "unknown"
}
