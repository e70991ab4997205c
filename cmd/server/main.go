// Package main implements the entry point for the armario API server, which
// handles user registration, login, and wardrobe data, delegating all
// credential handling to an external identity provider.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer func() {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.serve(ctx); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
