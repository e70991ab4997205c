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

// GarmentHandler serves the /ropa endpoints. All operations run under the
// auth middleware and are scoped to the resolved principal.
type GarmentHandler struct {
	garments  store.GarmentStore
	validator *validator.Validate
	logger    *slog.Logger
}

// NewGarmentHandler creates a new GarmentHandler with the given dependencies.
func NewGarmentHandler(garments store.GarmentStore, logger *slog.Logger) *GarmentHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &GarmentHandler{
		garments:  garments,
		validator: validator.New(),
		logger:    logger.With(slog.String("component", "garment_handler")),
	}
}

// List handles GET /ropa.
func (h *GarmentHandler) List(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Token no proporcionado")
		return
	}

	garments, err := h.garments.ListByOwner(r.Context(), principal.ProviderID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Error inesperado", err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, garments)
}

// Create handles POST /ropa.
func (h *GarmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Token no proporcionado")
		return
	}

	var req CreateGarmentRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Formato de petición inválido")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Datos inválidos")
		return
	}

	garment, err := domain.NewGarment(principal.ProviderID, req.Name, req.Category, req.Color)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Datos inválidos")
		return
	}

	if err := h.garments.Create(r.Context(), garment); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, garment)
}

// Delete handles DELETE /ropa/{id}.
func (h *GarmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

	if err := h.garments.Delete(r.Context(), principal.ProviderID, id); err != nil {
		if store.IsNotFoundError(err) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Prenda no encontrada")
			return
		}
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Error inesperado", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
