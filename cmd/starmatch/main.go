// Package main implements the entry point for the StarMatch service,
// which manages user profiles, friendships and astrological insight over
// a configurable storage backend.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/joho/godotenv"

	"github.com/starmatchhq/starmatch/internal/config"
	"github.com/starmatchhq/starmatch/internal/platform/logger"
	"github.com/starmatchhq/starmatch/internal/platform/postgres"
	"github.com/starmatchhq/starmatch/internal/seed"
	"github.com/starmatchhq/starmatch/internal/service"
)

// app holds the fully wired service layer.
type app struct {
	Users     *service.UserService
	Friends   *service.FriendService
	Astrology *service.AstrologyService
	Analytics *service.AnalyticsService
	Admin     *service.AdminService

	cfg *config.Config
	log *slog.Logger
}

func main() {
	if _, err := initializeApp(context.Background()); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
}

// initializeApp loads configuration, sets up logging, opens the
// configured storage backend and wires the services on top of it.
func initializeApp(ctx context.Context) (*app, error) {
	// A missing .env file is fine; configuration falls back to real
	// environment variables and defaults.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.Setup(cfg.Log)
	appLogger.Info("Configuration loaded",
		"log_level", cfg.Log.Level,
		"storage_backend", cfg.Storage.Backend)

	stores, err := openStores(ctx, cfg, appLogger)
	if err != nil {
		return nil, err
	}

	a := &app{
		Users:     service.NewUserService(stores.Users, appLogger),
		Friends:   service.NewFriendService(stores.Users, appLogger),
		Astrology: service.NewAstrologyService(stores.Users, stores.Signs, stores.Quotes, appLogger),
		Analytics: service.NewAnalyticsService(stores.Users, stores.Signs, stores.Quotes, appLogger),
		Admin:     service.NewAdminService(stores.Admins, stores.Quotes, stores.Traits, stores.Signs, appLogger),
		cfg:       cfg,
		log:       appLogger,
	}

	appLogger.Info("StarMatch ready", "storage_backend", cfg.Storage.Backend)
	return a, nil
}

// openStores builds the repository set for the configured backend.
func openStores(ctx context.Context, cfg *config.Config, appLogger *slog.Logger) (*seed.Stores, error) {
	switch cfg.Storage.Backend {
	case "memory":
		return seed.Memory(ctx, appLogger)
	case "file":
		return seed.Files(ctx, cfg.Storage.DataDir, appLogger)
	case "postgres":
		db, err := postgres.Open(ctx, cfg.Storage.DatabaseURL, appLogger)
		if err != nil {
			return nil, err
		}
		if err := postgres.Migrate(db, appLogger); err != nil {
			return nil, err
		}
		return &seed.Stores{
			Users:  postgres.NewUserStore(db, appLogger),
			Admins: postgres.NewAdminStore(db, appLogger),
			Signs:  postgres.NewStarSignStore(db, appLogger),
			Traits: postgres.NewTraitStore(db, appLogger),
			Quotes: postgres.NewQuoteStore(db, appLogger),
		}, nil
	default:
		return nil, fmt.Errorf("unsupported storage backend %q", cfg.Storage.Backend)
	}
}
