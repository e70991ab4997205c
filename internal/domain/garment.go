package domain

import (
	"time"

	"github.com/google/uuid"
)

// Garment is a single clothing item ("ropa") owned by one account.
type Garment struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   string    `json:"owner_id"` // provider-issued account ID
	Name      string    `json:"nombre"`
	Category  string    `json:"categoria,omitempty"`
	Color     string    `json:"color,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewGarment creates a garment for the given owner, generating a fresh ID
// and timestamps. Returns an error if validation fails.
func NewGarment(ownerID, name, category, color string) (*Garment, error) {
	now := time.Now().UTC()
	g := &Garment{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Name:      name,
		Category:  category,
		Color:     color,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// Validate checks if the Garment has valid data.
func (g *Garment) Validate() error {
	if g.OwnerID == "" {
		return ErrEmptyProviderID
	}
	if g.Name == "" {
		return ErrEmptyGarmentName
	}
	return nil
}
