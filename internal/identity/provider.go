// Package identity defines the contract with the external identity provider
// that owns account storage, password verification, and token issuance. The
// rest of the application only ever sees this interface, so the remote
// provider can be swapped for the in-process one in development and tests.
package identity

import "context"

// Account is the provider's view of an authenticated account.
type Account struct {
	// ID is the opaque identifier the provider issued for the account.
	ID string

	// Email is the account email as registered at the provider.
	Email string
}

// Session is the credential material returned by a successful sign-in.
type Session struct {
	// AccessToken is the opaque bearer token clients present on subsequent
	// requests. This application never parses it.
	AccessToken string

	// TokenType is the HTTP auth scheme, always "bearer" in practice.
	TokenType string

	// ExpiresIn is the token lifetime in seconds as reported by the provider.
	ExpiresIn int
}

// Provider defines the operations delegated to the external identity service.
//
// Implementations must translate their transport-level failures into the
// sentinel errors in errors.go so callers can distinguish a rejected
// credential (never retryable) from an infrastructure failure (retryable at
// the implementation's discretion, never here).
type Provider interface {
	// SignUp creates a new account and returns it.
	// Returns ErrEmailTaken if the email is already registered.
	SignUp(ctx context.Context, email, password string) (*Account, error)

	// SignIn exchanges credentials for a session.
	// Returns ErrInvalidCredentials if the email/password pair is rejected.
	SignIn(ctx context.Context, email, password string) (*Session, error)

	// ResolveToken validates a bearer token and returns the account it was
	// issued for. Returns ErrTokenRejected if the provider considers the
	// token invalid or expired, ErrAccountNotFound if the token is valid but
	// the account no longer exists.
	ResolveToken(ctx context.Context, token string) (*Account, error)
}
