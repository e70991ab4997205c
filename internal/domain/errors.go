// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidEmail is returned when an email address is malformed.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrEmptyProviderID is returned when the provider-issued account
	// identifier is missing.
	ErrEmptyProviderID = errors.New("provider ID cannot be empty")

	// ErrEmptyUsername is returned when a profile is created without a username.
	ErrEmptyUsername = errors.New("username cannot be empty")

	// ErrInvalidAge is returned when a profile age is outside the accepted range.
	ErrInvalidAge = errors.New("age must be between 1 and 130")

	// ErrEmptyGarmentName is returned when a garment has no name.
	ErrEmptyGarmentName = errors.New("garment name cannot be empty")

	// ErrEmptyOutfitName is returned when an outfit has no name.
	ErrEmptyOutfitName = errors.New("outfit name cannot be empty")

	// ErrEmptyOutfit is returned when an outfit references no garments.
	ErrEmptyOutfit = errors.New("outfit must reference at least one garment")

	// ErrUnauthorized is returned when an operation is not permitted.
	ErrUnauthorized = errors.New("unauthorized operation")
)
