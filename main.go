// Package main is the entry point for the blog API server.
// It initializes all dependencies and starts the HTTP server.
package main

import (
	"context"
	"log"
	"os"

	"blogapi/src/app/server"
	"blogapi/src/infra/config"
	"blogapi/src/infra/db"
	"blogapi/src/infra/logger"
	"blogapi/src/infra/repo"
)

func main() {
	if err := run(); err != nil {
		log.Printf("fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Initialize logger
	log := logger.New(cfg.Log)
	log.Info("starting application",
		"port", cfg.Server.Port,
		"log_level", cfg.Log.Level,
	)

	ctx := context.Background()

	// Apply schema migrations before opening the pool
	if err := db.Migrate(ctx, cfg.Database, log); err != nil {
		return err
	}

	// Initialize database connection
	pg, err := db.New(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	defer pg.Close()

	// Initialize repositories
	repos := repo.New(pg, log)

	// Create and run HTTP server
	srv := server.New(cfg, log, repos)

	// Run blocks until shutdown signal is received
	return srv.Run()
}
