package auth

import "errors"

// Authentication errors surfaced by the guard. Exactly two kinds exist; both
// map to HTTP 401 with a fixed message so no internal detail can leak.
var (
	// ErrMissingToken indicates the Authorization header was absent or did
	// not carry a Bearer credential.
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrInvalidToken indicates the identity provider rejected the token,
	// could not be reached in time, or returned no account. Timeouts fail
	// closed into this error.
	ErrInvalidToken = errors.New("invalid authentication token")
)
