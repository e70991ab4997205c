package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/maitafernandez/armario-api/internal/api/middleware"
	"github.com/maitafernandez/armario-api/internal/api/shared"
	"github.com/maitafernandez/armario-api/internal/domain"
	"github.com/maitafernandez/armario-api/internal/store"
)

// OutfitHandler serves the /conjuntos endpoints under the auth middleware.
type OutfitHandler struct {
	outfits   store.OutfitStore
	validator *validator.Validate
	logger    *slog.Logger
}

// NewOutfitHandler creates a new OutfitHandler with the given dependencies.
func NewOutfitHandler(outfits store.OutfitStore, logger *slog.Logger) *OutfitHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &OutfitHandler{
		outfits:   outfits,
		validator: validator.New(),
		logger:    logger.With(slog.String("component", "outfit_handler")),
	}
}

// List handles GET /conjuntos.
func (h *OutfitHandler) List(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Token no proporcionado")
		return
	}

	outfits, err := h.outfits.ListByOwner(r.Context(), principal.ProviderID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Error inesperado", err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, outfits)
}

// Create handles POST /conjuntos.
func (h *OutfitHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Token no proporcionado")
		return
	}

	var req CreateOutfitRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Formato de petición inválido")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Datos inválidos")
		return
	}

	outfit, err := domain.NewOutfit(principal.ProviderID, req.Name, req.Occasion, req.GarmentIDs)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Datos inválidos")
		return
	}

	if err := h.outfits.Create(r.Context(), outfit); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, outfit)
}

// Delete handles DELETE /conjuntos/{id}.
func (h *OutfitHandler) Delete(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Token no proporcionado")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Identificador inválido")
		return
	}

	if err := h.outfits.Delete(r.Context(), principal.ProviderID, id); err != nil {
		if store.IsNotFoundError(err) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Conjunto no encontrado")
			return
		}
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Error inesperado", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
