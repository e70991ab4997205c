package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/maitafernandez/armario-api/internal/domain"
)

// OutfitStore defines the interface for outfit ("conjunto") persistence.
// Like GarmentStore, every operation is scoped to an owner.
type OutfitStore interface {
	// Create saves a new outfit and its garment references.
	// Returns validation errors from the domain Outfit if data is invalid.
	Create(ctx context.Context, outfit *domain.Outfit) error

	// ListByOwner returns all outfits owned by the given provider account ID,
	// newest first, with their garment ID lists populated.
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Outfit, error)

	// GetByID retrieves an outfit owned by ownerID.
	// Returns ErrOutfitNotFound if no such outfit exists for that owner.
	GetByID(ctx context.Context, ownerID string, id uuid.UUID) (*domain.Outfit, error)

	// Delete removes an outfit owned by ownerID.
	// Returns ErrOutfitNotFound if no such outfit exists for that owner.
	Delete(ctx context.Context, ownerID string, id uuid.UUID) error
}
