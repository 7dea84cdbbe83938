// Package main implements the entry point for the task API server,
// which handles user registration/login and per-user task CRUD.
package main

import (
	"log"

	"github.com/phrazzld/tasklist-api/internal/config"
	"github.com/phrazzld/tasklist-api/internal/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logg, err := logger.Setup(cfg.Server)
	if err != nil {
		log.Fatalf("failed to set up logger: %v", err)
	}

	logg.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	app, err := newApplication(cfg, logg)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}
	defer app.close()

	if err := app.serve(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
