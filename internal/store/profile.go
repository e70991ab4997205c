package store

import (
	"context"

	"github.com/maitafernandez/armario-api/internal/domain"
)

// ProfileStore defines the interface for local profile persistence. Profiles
// are keyed by the provider-issued account identifier; the identity provider
// remains the source of truth for credentials.
type ProfileStore interface {
	// Create saves a new profile row.
	// Returns ErrEmailExists if the email is already taken.
	// Returns validation errors from the domain Profile if data is invalid.
	Create(ctx context.Context, profile *domain.Profile) error

	// GetByEmail retrieves a profile by its email address.
	// Returns ErrProfileNotFound if no row exists.
	GetByEmail(ctx context.Context, email string) (*domain.Profile, error)

	// GetByAuthID retrieves a profile by the provider-issued account ID.
	// Returns ErrProfileNotFound if no row exists.
	GetByAuthID(ctx context.Context, authID string) (*domain.Profile, error)

	// FindDisplayName returns the username column for the given provider
	// account ID. Returns ErrProfileNotFound if no row exists; callers decide
	// whether that is fatal.
	FindDisplayName(ctx context.Context, authID string) (string, error)
}
