package vault

// MaxLoginAttempts is the number of failed attempts after which an account
// is locked. Login failures and item decrypt failures feed the same
// counter, so repeated wrong-passkey guesses lock the account just like
// repeated wrong passwords.
const MaxLoginAttempts = 3

// Locked reports whether an account with the given failure count is locked
// out. The check happens strictly before any password or decrypt attempt.
func Locked(failures, max int) bool {
	return failures >= max
}
