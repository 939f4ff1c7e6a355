// Package main implements the entry point for the TaskDeck API server:
// user registration and login with bearer tokens, and task CRUD with
// filtering, sorting and pagination over an embedded SQLite database.
package main

import (
	"log"

	"github.com/taskdeck/taskdeck-api/internal/config"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	app, err := newApplication(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			app.logger.Error("failed to close application", "error", err)
		}
	}()

	return app.serve()
}
