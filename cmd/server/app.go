package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/maitafernandez/armario-api/internal/config"
	"github.com/maitafernandez/armario-api/internal/identity"
	"github.com/maitafernandez/armario-api/internal/platform/localauth"
	"github.com/maitafernandez/armario-api/internal/platform/logger"
	"github.com/maitafernandez/armario-api/internal/platform/postgres"
	"github.com/maitafernandez/armario-api/internal/platform/supabase"
	authservice "github.com/maitafernandez/armario-api/internal/service/auth"
	"github.com/maitafernandez/armario-api/internal/store"
)

// application bundles the process-wide dependencies: configuration, logger,
// database handle, the identity provider client (instantiated once and
// shared across requests), stores, and the request guard.
type application struct {
	config   *config.Config
	logger   *slog.Logger
	db       *sql.DB
	provider identity.Provider
	profiles store.ProfileStore
	garments store.GarmentStore
	outfits  store.OutfitStore
	guard    *authservice.Guard
}

// initializeApp loads configuration and wires up all application components.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.Setup(cfg.Server)
	log.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"auth_provider", cfg.Auth.Provider)

	db, err := setupDatabase(cfg, log)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(db, log); err != nil {
		return nil, err
	}

	provider, err := setupProvider(cfg, log)
	if err != nil {
		return nil, err
	}

	profiles := postgres.NewProfileStore(db, log)
	app := &application{
		config:   cfg,
		logger:   log,
		db:       db,
		provider: provider,
		profiles: profiles,
		garments: postgres.NewGarmentStore(db, log),
		outfits:  postgres.NewOutfitStore(db, log),
		guard: authservice.NewGuard(
			provider,
			profiles,
			log,
			authservice.WithTimeout(time.Duration(cfg.Auth.ProviderTimeoutSeconds)*time.Second),
			authservice.WithDefaultDisplayName(cfg.Auth.DefaultDisplayName),
		),
	}
	return app, nil
}

// setupProvider selects the identity backend from configuration.
func setupProvider(cfg *config.Config, log *slog.Logger) (identity.Provider, error) {
	switch cfg.Auth.Provider {
	case "supabase":
		return supabase.NewClient(cfg.Auth.SupabaseURL, cfg.Auth.SupabaseKey, log), nil
	case "local":
		p, err := localauth.New(cfg.Auth.LocalSecret)
		if err != nil {
			return nil, fmt.Errorf("failed to set up local auth provider: %w", err)
		}
		log.Warn("using in-process identity provider; not for production")
		return p, nil
	default:
		return nil, fmt.Errorf("unknown auth provider %q", cfg.Auth.Provider)
	}
}
