package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/maitafernandez/armario-api/internal/api/shared"
	"github.com/maitafernandez/armario-api/internal/domain"
	"github.com/maitafernandez/armario-api/internal/identity"
	"github.com/maitafernandez/armario-api/internal/redact"
	"github.com/maitafernandez/armario-api/internal/store"
)

// AuthHandler handles registration and login. Both operations delegate
// credential handling entirely to the identity provider; the handler only
// maintains the local profile row alongside the provider account.
type AuthHandler struct {
	provider  identity.Provider
	profiles  store.ProfileStore
	validator *validator.Validate
	logger    *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	provider identity.Provider,
	profiles store.ProfileStore,
	logger *slog.Logger,
) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{
		provider:  provider,
		profiles:  profiles,
		validator: validator.New(),
		logger:    logger.With(slog.String("component", "auth_handler")),
	}
}

// Register handles POST /users/register. It signs the account up at the
// provider and then creates the local profile row keyed by the returned
// account ID.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Formato de petición inválido")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Datos inválidos")
		return
	}

	account, err := h.provider.SignUp(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, identity.ErrEmailTaken) {
			shared.RespondWithError(w, r, http.StatusConflict, "Email ya registrado")
			return
		}
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "No se pudo registrar el usuario", err)
		return
	}

	profile, err := domain.NewProfile(account.ID, account.Email, req.Username, req.Age)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Datos inválidos")
		return
	}
	profile.Gender = req.Gender
	profile.StylePreference = req.StylePreference

	if err := h.profiles.Create(r.Context(), profile); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			shared.RespondWithError(w, r, http.StatusConflict, "Email ya registrado")
			return
		}
		// The provider account exists but the profile row failed; surface a
		// 500 and leave reconciliation to the operator.
		h.logger.ErrorContext(r.Context(), "profile creation failed after signup",
			slog.String("provider_id", account.ID),
			slog.String("error", redact.Error(err)))
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "No se pudo registrar el usuario", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, RegisterResponse{
		ProviderID: account.ID,
		Email:      account.Email,
		Username:   req.Username,
	})
}

// Login handles POST /users/login by exchanging credentials for a provider
// session.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Formato de petición inválido")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Datos inválidos")
		return
	}

	session, err := h.provider.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Credenciales inválidas")
			return
		}
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "No se pudo iniciar sesión", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, LoginResponse{
		AccessToken: session.AccessToken,
		TokenType:   session.TokenType,
		ExpiresIn:   session.ExpiresIn,
	})
}
