package identity

import "errors"

// Sentinel errors returned by Provider implementations. "Not found" and
// "rejected" are explicit results rather than generic failures so that only
// ErrTransport is ever treated as retry-eligible.
var (
	// ErrTokenRejected indicates the provider considers the bearer token
	// invalid, expired, or revoked.
	ErrTokenRejected = errors.New("identity provider rejected token")

	// ErrAccountNotFound indicates the token or lookup referenced an account
	// that no longer exists at the provider.
	ErrAccountNotFound = errors.New("identity provider account not found")

	// ErrInvalidCredentials indicates a sign-in attempt with a wrong
	// email/password pair.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailTaken indicates a sign-up attempt with an already registered
	// email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrTransport indicates the provider could not be reached or returned a
	// malformed or 5xx response. This is the only retry-eligible failure.
	ErrTransport = errors.New("identity provider unreachable")
)
