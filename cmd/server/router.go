package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/maitafernandez/armario-api/internal/api"
	apimiddleware "github.com/maitafernandez/armario-api/internal/api/middleware"
	"github.com/maitafernandez/armario-api/internal/api/shared"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(apimiddleware.Trace)

	authHandler := api.NewAuthHandler(app.provider, app.profiles, app.logger)
	userHandler := api.NewUserHandler(app.profiles, app.logger)
	garmentHandler := api.NewGarmentHandler(app.garments, app.logger)
	outfitHandler := api.NewOutfitHandler(app.outfits, app.logger)
	authMiddleware := apimiddleware.NewAuthMiddleware(app.guard)

	// Public endpoints
	r.Post("/users/register", authHandler.Register)
	r.Post("/users/login", authHandler.Login)

	// Protected endpoints
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.Get("/users/me", userHandler.Me)
		r.Get("/users/{email}", userHandler.GetByEmail)

		r.Get("/ropa", garmentHandler.List)
		r.Post("/ropa", garmentHandler.Create)
		r.Delete("/ropa/{id}", garmentHandler.Delete)

		r.Get("/conjuntos", outfitHandler.List)
		r.Post("/conjuntos", outfitHandler.Create)
		r.Delete("/conjuntos/{id}", outfitHandler.Delete)
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithJSON(w, r, http.StatusOK,
			map[string]string{"message": "Welcome to the User Management API!"})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
