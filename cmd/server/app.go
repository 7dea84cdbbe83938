package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/tasklist-api/internal/api"
	"github.com/phrazzld/tasklist-api/internal/config"
	"github.com/phrazzld/tasklist-api/internal/platform/postgres"
	"github.com/phrazzld/tasklist-api/internal/service/auth"
	"github.com/phrazzld/tasklist-api/internal/store"
)

// application holds every constructed dependency for the running process.
// The connection pool and signing secret live here and are handed to
// components at construction time rather than read ambiently.
type application struct {
	config           *config.Config
	logger           *slog.Logger
	db               *sql.DB
	userStore        store.UserStore
	taskStore        store.TaskStore
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
	runTx            api.TxRunner
}

// newApplication wires up all application dependencies: database pool,
// schema migrations, stores, and auth services.
func newApplication(cfg *config.Config, log *slog.Logger) (*application, error) {
	db, err := setupDatabase(cfg, log)
	if err != nil {
		return nil, err
	}

	// Schema is created/updated before the server accepts requests.
	if err := postgres.Migrate(db); err != nil {
		closeDatabase(db, log)
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	log.Info("database migrations applied")

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		closeDatabase(db, log)
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	return &application{
		config:           cfg,
		logger:           log,
		db:               db,
		userStore:        postgres.NewPostgresUserStore(db, log),
		taskStore:        postgres.NewPostgresTaskStore(db, log),
		jwtService:       jwtService,
		passwordVerifier: auth.NewBcryptVerifier(),
		runTx: func(ctx context.Context, fn store.TxFn) error {
			return store.RunInTransaction(ctx, db, fn)
		},
	}, nil
}

// close releases the application's long-lived resources.
func (app *application) close() {
	closeDatabase(app.db, app.logger)
}

func closeDatabase(db *sql.DB, log *slog.Logger) {
	if err := db.Close(); err != nil {
		log.Error("failed to close database connection", "error", err)
	}
}
