package api

import (
	"github.com/google/uuid"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Email           string `json:"email"            validate:"required,email"`
	Password        string `json:"password"         validate:"required,min=8,max=72"`
	Username        string `json:"username"         validate:"required,min=1,max=64"`
	Gender          string `json:"gender"           validate:"omitempty,max=32"`
	StylePreference string `json:"style_preference" validate:"omitempty,max=64"`
	Age             int    `json:"edad"             validate:"required,gte=1,lte=130"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// RegisterResponse defines the successful response for registration.
type RegisterResponse struct {
	ProviderID string `json:"provider_id"`
	Email      string `json:"email"`
	Username   string `json:"username"`
}

// LoginResponse defines the successful response for login.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// MeResponse defines the body of GET /users/me.
type MeResponse struct {
	ProviderID  string `json:"provider_id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}

// ProfileResponse defines the public view of a profile row.
type ProfileResponse struct {
	Email           string `json:"email"`
	Username        string `json:"username"`
	Gender          string `json:"gender,omitempty"`
	StylePreference string `json:"style_preference,omitempty"`
	Age             int    `json:"edad"`
}

// CreateGarmentRequest defines the payload for POST /ropa.
type CreateGarmentRequest struct {
	Name     string `json:"nombre"    validate:"required,min=1,max=128"`
	Category string `json:"categoria" validate:"omitempty,max=64"`
	Color    string `json:"color"     validate:"omitempty,max=32"`
}

// CreateOutfitRequest defines the payload for POST /conjuntos.
type CreateOutfitRequest struct {
	Name       string      `json:"nombre"   validate:"required,min=1,max=128"`
	Occasion   string      `json:"ocasion"  validate:"omitempty,max=64"`
	GarmentIDs []uuid.UUID `json:"ropa_ids" validate:"required,min=1,dive,required"`
}
