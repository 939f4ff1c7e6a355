package main

import (
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"

	"github.com/taskdeck/taskdeck-api/internal/api"
	"github.com/taskdeck/taskdeck-api/internal/api/middleware"
	"github.com/taskdeck/taskdeck-api/internal/config"
	"github.com/taskdeck/taskdeck-api/internal/platform/logger"
	"github.com/taskdeck/taskdeck-api/internal/platform/sqlite"
	"github.com/taskdeck/taskdeck-api/internal/service/auth"
	"github.com/taskdeck/taskdeck-api/internal/store"
)

// application owns every long-lived component of the server and wires them
// together. Construction order is config → logger → database → services →
// handlers; Close releases resources in reverse.
type application struct {
	cfg    *config.Config
	logger *slog.Logger
	db     *sqlx.DB

	userStore store.UserStore
	taskStore store.TaskStore

	authHandler    *api.AuthHandler
	taskHandler    *api.TaskHandler
	authMiddleware *middleware.AuthMiddleware
}

// newApplication builds a fully wired application from configuration.
func newApplication(cfg *config.Config) (*application, error) {
	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	db, err := sqlite.Open(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := sqlite.Migrate(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	tokenService, err := auth.NewStaticTokenService(cfg.Auth.TokenSecret)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}

	bcryptService := auth.NewBcryptService(cfg.Auth.BcryptCost)

	userStore := sqlite.NewUserStore(db)
	taskStore := sqlite.NewTaskStore(db, log)

	app := &application{
		cfg:            cfg,
		logger:         log,
		db:             db,
		userStore:      userStore,
		taskStore:      taskStore,
		authHandler:    api.NewAuthHandler(userStore, tokenService, bcryptService, bcryptService, log),
		taskHandler:    api.NewTaskHandler(taskStore, log),
		authMiddleware: middleware.NewAuthMiddleware(tokenService),
	}

	log.Info("application initialized",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.String("database_path", cfg.Database.Path))

	return app, nil
}

// Close releases the application's resources.
func (a *application) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}
