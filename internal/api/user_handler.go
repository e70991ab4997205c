package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/maitafernandez/armario-api/internal/api/middleware"
	"github.com/maitafernandez/armario-api/internal/api/shared"
	"github.com/maitafernandez/armario-api/internal/store"
)

// UserHandler serves profile reads: the authenticated caller's identity and
// public profile lookups by email.
type UserHandler struct {
	profiles store.ProfileStore
	logger   *slog.Logger
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(profiles store.ProfileStore, logger *slog.Logger) *UserHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserHandler{
		profiles: profiles,
		logger:   logger.With(slog.String("component", "user_handler")),
	}
}

// Me handles GET /users/me. The auth middleware has already resolved the
// principal; this handler only echoes it.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r)
	if !ok {
		// Only reachable if the route was registered without the middleware.
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Token no proporcionado")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MeResponse{
		ProviderID:  principal.ProviderID,
		Email:       principal.Email,
		DisplayName: principal.DisplayName,
	})
}

// GetByEmail handles GET /users/{email}.
func (h *UserHandler) GetByEmail(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	profile, err := h.profiles.GetByEmail(r.Context(), email)
	if err != nil {
		if store.IsNotFoundError(err) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Usuario no encontrado")
			return
		}
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Error inesperado", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ProfileResponse{
		Email:           profile.Email,
		Username:        profile.Username,
		Gender:          profile.Gender,
		StylePreference: profile.StylePreference,
		Age:             profile.Age,
	})
}
