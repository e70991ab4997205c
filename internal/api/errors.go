package api

import (
	"errors"
	"net/http"

	"github.com/maitafernandez/armario-api/internal/identity"
	"github.com/maitafernandez/armario-api/internal/service/auth"
	"github.com/maitafernandez/armario-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors: always 401, never 400, regardless of cause.
	case errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, identity.ErrTokenRejected),
		errors.Is(err, identity.ErrInvalidCredentials):
		return http.StatusUnauthorized

	// Not found errors
	case errors.Is(err, store.ErrNotFound),
		errors.Is(err, identity.ErrAccountNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, store.ErrDuplicate),
		errors.Is(err, identity.ErrEmailTaken):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message based
// on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "Error inesperado"
	}

	switch {
	case errors.Is(err, auth.ErrMissingToken):
		return "Token no proporcionado"

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, identity.ErrTokenRejected):
		return "Token inválido"

	case errors.Is(err, identity.ErrInvalidCredentials):
		return "Credenciales inválidas"

	case errors.Is(err, identity.ErrEmailTaken),
		errors.Is(err, store.ErrEmailExists):
		return "Email ya registrado"

	case errors.Is(err, store.ErrProfileNotFound):
		return "Usuario no encontrado"

	case errors.Is(err, store.ErrGarmentNotFound):
		return "Prenda no encontrada"

	case errors.Is(err, store.ErrOutfitNotFound):
		return "Conjunto no encontrado"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Datos inválidos"

	default:
		return "Error inesperado"
	}
}
