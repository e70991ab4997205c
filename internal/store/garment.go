package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/maitafernandez/armario-api/internal/domain"
)

// GarmentStore defines the interface for garment ("ropa") persistence.
// All reads and deletes are scoped to an owner so one account can never see
// or remove another account's garments.
type GarmentStore interface {
	// Create saves a new garment.
	// Returns validation errors from the domain Garment if data is invalid.
	Create(ctx context.Context, garment *domain.Garment) error

	// ListByOwner returns all garments owned by the given provider account
	// ID, newest first. An owner with no garments gets an empty slice.
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Garment, error)

	// GetByID retrieves a garment owned by ownerID.
	// Returns ErrGarmentNotFound if no such garment exists for that owner.
	GetByID(ctx context.Context, ownerID string, id uuid.UUID) (*domain.Garment, error)

	// Delete removes a garment owned by ownerID.
	// Returns ErrGarmentNotFound if no such garment exists for that owner.
	Delete(ctx context.Context, ownerID string, id uuid.UUID) error
}
