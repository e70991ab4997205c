package domain

import (
	"time"

	"github.com/google/uuid"
)

// Outfit is a named combination of garments ("conjunto") owned by one account.
type Outfit struct {
	ID         uuid.UUID   `json:"id"`
	OwnerID    string      `json:"owner_id"` // provider-issued account ID
	Name       string      `json:"nombre"`
	Occasion   string      `json:"ocasion,omitempty"`
	GarmentIDs []uuid.UUID `json:"ropa_ids"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// NewOutfit creates an outfit for the given owner referencing the given
// garments. Returns an error if validation fails.
func NewOutfit(ownerID, name, occasion string, garmentIDs []uuid.UUID) (*Outfit, error) {
	now := time.Now().UTC()
	o := &Outfit{
		ID:         uuid.New(),
		OwnerID:    ownerID,
		Name:       name,
		Occasion:   occasion,
		GarmentIDs: garmentIDs,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return o, nil
}

// Validate checks if the Outfit has valid data.
func (o *Outfit) Validate() error {
	if o.OwnerID == "" {
		return ErrEmptyProviderID
	}
	if o.Name == "" {
		return ErrEmptyOutfitName
	}
	if len(o.GarmentIDs) == 0 {
		return ErrEmptyOutfit
	}
	return nil
}
