package domain

import "time"

// Profile is the local users-table row keyed by the provider-issued account
// identifier. It carries the application-specific fields the identity
// provider does not know about (display name, wardrobe preferences).
type Profile struct {
	AuthID          string    `json:"auth_id"`
	Email           string    `json:"email"`
	Username        string    `json:"username"`
	Gender          string    `json:"gender,omitempty"`
	StylePreference string    `json:"style_preference,omitempty"`
	Age             int       `json:"edad"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// NewProfile creates a profile row for a freshly signed-up account.
// Returns an error if validation fails.
func NewProfile(authID, email, username string, age int) (*Profile, error) {
	now := time.Now().UTC()
	p := &Profile{
		AuthID:    authID,
		Email:     email,
		Username:  username,
		Age:       age,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks if the Profile has valid data.
func (p *Profile) Validate() error {
	if p.AuthID == "" {
		return ErrEmptyProviderID
	}
	if !validEmail(p.Email) {
		return ErrInvalidEmail
	}
	if p.Username == "" {
		return ErrEmptyUsername
	}
	if p.Age < 1 || p.Age > 130 {
		return ErrInvalidAge
	}
	return nil
}
