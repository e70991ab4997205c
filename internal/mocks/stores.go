package mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/maitafernandez/armario-api/internal/domain"
	"github.com/maitafernandez/armario-api/internal/store"
)

// ProfileStore is a mock implementation of store.ProfileStore.
type ProfileStore struct {
	CreateFunc          func(ctx context.Context, profile *domain.Profile) error
	GetByEmailFunc      func(ctx context.Context, email string) (*domain.Profile, error)
	GetByAuthIDFunc     func(ctx context.Context, authID string) (*domain.Profile, error)
	FindDisplayNameFunc func(ctx context.Context, authID string) (string, error)

	// Fixed fields for simple cases
	Profile     *domain.Profile
	DisplayName string
	Err         error
}

var _ store.ProfileStore = (*ProfileStore)(nil)

// Create implements store.ProfileStore.Create.
func (m *ProfileStore) Create(ctx context.Context, profile *domain.Profile) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, profile)
	}
	return m.Err
}

// GetByEmail implements store.ProfileStore.GetByEmail.
func (m *ProfileStore) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return m.Profile, m.Err
}

// GetByAuthID implements store.ProfileStore.GetByAuthID.
func (m *ProfileStore) GetByAuthID(ctx context.Context, authID string) (*domain.Profile, error) {
	if m.GetByAuthIDFunc != nil {
		return m.GetByAuthIDFunc(ctx, authID)
	}
	return m.Profile, m.Err
}

// FindDisplayName implements store.ProfileStore.FindDisplayName.
func (m *ProfileStore) FindDisplayName(ctx context.Context, authID string) (string, error) {
	if m.FindDisplayNameFunc != nil {
		return m.FindDisplayNameFunc(ctx, authID)
	}
	return m.DisplayName, m.Err
}

// GarmentStore is a mock implementation of store.GarmentStore.
type GarmentStore struct {
	CreateFunc      func(ctx context.Context, garment *domain.Garment) error
	ListByOwnerFunc func(ctx context.Context, ownerID string) ([]*domain.Garment, error)
	GetByIDFunc     func(ctx context.Context, ownerID string, id uuid.UUID) (*domain.Garment, error)
	DeleteFunc      func(ctx context.Context, ownerID string, id uuid.UUID) error

	Garments []*domain.Garment
	Err      error
}

var _ store.GarmentStore = (*GarmentStore)(nil)

// Create implements store.GarmentStore.Create.
func (m *GarmentStore) Create(ctx context.Context, garment *domain.Garment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, garment)
	}
	return m.Err
}

// ListByOwner implements store.GarmentStore.ListByOwner.
func (m *GarmentStore) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Garment, error) {
	if m.ListByOwnerFunc != nil {
		return m.ListByOwnerFunc(ctx, ownerID)
	}
	return m.Garments, m.Err
}

// GetByID implements store.GarmentStore.GetByID.
func (m *GarmentStore) GetByID(ctx context.Context, ownerID string, id uuid.UUID) (*domain.Garment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ownerID, id)
	}
	if len(m.Garments) > 0 {
		return m.Garments[0], m.Err
	}
	return nil, m.Err
}

// Delete implements store.GarmentStore.Delete.
func (m *GarmentStore) Delete(ctx context.Context, ownerID string, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, ownerID, id)
	}
	return m.Err
}

// OutfitStore is a mock implementation of store.OutfitStore.
type OutfitStore struct {
	CreateFunc      func(ctx context.Context, outfit *domain.Outfit) error
	ListByOwnerFunc func(ctx context.Context, ownerID string) ([]*domain.Outfit, error)
	GetByIDFunc     func(ctx context.Context, ownerID string, id uuid.UUID) (*domain.Outfit, error)
	DeleteFunc      func(ctx context.Context, ownerID string, id uuid.UUID) error

	Outfits []*domain.Outfit
	Err     error
}

var _ store.OutfitStore = (*OutfitStore)(nil)

// Create implements store.OutfitStore.Create.
func (m *OutfitStore) Create(ctx context.Context, outfit *domain.Outfit) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, outfit)
	}
	return m.Err
}

// ListByOwner implements store.OutfitStore.ListByOwner.
func (m *OutfitStore) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Outfit, error) {
	if m.ListByOwnerFunc != nil {
		return m.ListByOwnerFunc(ctx, ownerID)
	}
	return m.Outfits, m.Err
}

// GetByID implements store.OutfitStore.GetByID.
func (m *OutfitStore) GetByID(ctx context.Context, ownerID string, id uuid.UUID) (*domain.Outfit, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ownerID, id)
	}
	if len(m.Outfits) > 0 {
		return m.Outfits[0], m.Err
	}
	return nil, m.Err
}

// Delete implements store.OutfitStore.Delete.
func (m *OutfitStore) Delete(ctx context.Context, ownerID string, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, ownerID, id)
	}
	return m.Err
}
