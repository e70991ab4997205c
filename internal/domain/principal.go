package domain

// Principal is the resolved identity of the caller for the duration of one
// request. It is constructed fresh from a validated bearer token on every
// request, never persisted, and discarded when the request ends.
type Principal struct {
	// ProviderID is the opaque account identifier issued by the external
	// identity provider. Stable for the lifetime of the account.
	ProviderID string `json:"provider_id"`

	// Email is the account email registered at the provider.
	Email string `json:"email"`

	// DisplayName is resolved from the local profile row keyed by ProviderID.
	// When no profile row exists it holds the configured default name.
	DisplayName string `json:"display_name"`
}

// Validate checks that the principal carries the fields every consumer
// relies on. DisplayName is allowed to be empty; the guard fills it in.
func (p *Principal) Validate() error {
	if p.ProviderID == "" {
		return ErrEmptyProviderID
	}
	if !validEmail(p.Email) {
		return ErrInvalidEmail
	}
	return nil
}

// validEmail performs a minimal structural check: one '@' with a dotted
// domain after it. Full RFC 5322 validation lives in the request layer
// (validator tags); this only guards against obviously broken provider data.
func validEmail(email string) bool {
	at := -1
	for i, c := range email {
		if c == '@' {
			at = i
			break
		}
	}
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]
	dot := -1
	for i, c := range domain {
		if c == '.' {
			dot = i
			break
		}
	}
	return dot > 0 && dot < len(domain)-1
}
