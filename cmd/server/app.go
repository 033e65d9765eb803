package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib" // Register pgx driver for database/sql

	"github.com/jvanloon/bingo-api/internal/config"
	"github.com/jvanloon/bingo-api/internal/platform/gemini"
	"github.com/jvanloon/bingo-api/internal/platform/logger"
	"github.com/jvanloon/bingo-api/internal/platform/postgres"
	"github.com/jvanloon/bingo-api/internal/service"
	"github.com/jvanloon/bingo-api/internal/service/auth"
	"github.com/jvanloon/bingo-api/internal/store"
)

// application holds the wired dependencies of the server.
type application struct {
	config *config.Config
	logger *slog.Logger

	db *sql.DB

	userStore store.UserStore
	gameStore store.GameStore

	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
	gameService      service.GameService
}

// initializeApp loads configuration and wires up all application components.
// Fails fast: a missing or placeholder Gemini API key, an invalid JWT secret
// or an unreachable database all abort startup.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	log.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := setupDatabase(cfg, log)
	if err != nil {
		return nil, err
	}

	if err := postgres.RunMigrations(db, log); err != nil {
		_ = db.Close()
		return nil, err
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	generator, err := gemini.NewGenerator(context.Background(), log, cfg.LLM)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create item generator: %w", err)
	}

	userStore := postgres.NewUserStore(db, log, cfg.Auth.BCryptCost)
	gameStore := postgres.NewGameStore(db, log)

	return &application{
		config:           cfg,
		logger:           log,
		db:               db,
		userStore:        userStore,
		gameStore:        gameStore,
		jwtService:       jwtService,
		passwordVerifier: auth.NewBcryptVerifier(),
		gameService:      service.NewGameService(generator, gameStore, db, log),
	}, nil
}

// cleanup releases application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}
