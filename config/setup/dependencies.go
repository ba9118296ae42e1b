package setup

import (
	"context"
	"log/slog"

	"item-notes/app"
	"item-notes/config"
	"item-notes/database"
	"item-notes/metrics"
	"item-notes/session"
)

// InitDatabase initializes the SQLite database and runs migrations
func InitDatabase(ctx context.Context, dbPath string, logger *slog.Logger) (*database.DB, error) {
	db, err := database.New(dbPath)
	if err != nil {
		return nil, err
	}

	if err := db.MigrateContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	version, err := db.SchemaVersion(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("database initialized", "path", dbPath, "schema_version", version)
	return db, nil
}

// InitApp initializes the application with all dependencies
func InitApp(db *database.DB, logger *slog.Logger) *app.App {
	repo := database.NewRepository(db)

	sessionStore := session.NewStore(db.DB)
	sessionStore.StartCleanupRoutine()
	logger.Info("session cleanup routine started")

	m := metrics.NewMetrics()
	m.RegisterDB(db.DB)

	cfg := config.AppConfig
	application := app.New(repo, sessionStore, m, logger, app.Options{
		SecretKey:        cfg.SecretKey,
		AccessTokenTTL:   cfg.AccessTokenTTL,
		OpenRegistration: cfg.OpenRegistration,
		SecureCookies:    cfg.IsProduction(),
	})
	logger.Info("application initialized with dependency injection")

	return application
}

// EnsureFirstSuperuser creates the configured bootstrap superuser on an empty install
func EnsureFirstSuperuser(ctx context.Context, application *app.App, logger *slog.Logger) error {
	cfg := config.AppConfig
	if cfg.FirstSuperuser == "" {
		return nil
	}

	user, created, err := application.UserService.EnsureSuperuser(ctx, cfg.FirstSuperuser, cfg.FirstSuperuserPassword)
	if err != nil {
		return err
	}
	if created {
		logger.Info("first superuser created", "email", user.Email, "user_id", user.ID)
	}
	return nil
}

// Shutdown performs graceful shutdown of all services
func Shutdown(application *app.App, db *database.DB, logger *slog.Logger) {
	logger.Info("shutting down services...")

	if application != nil && application.SessionStore != nil {
		application.SessionStore.Stop()
		logger.Info("session cleanup stopped")
	}

	if db != nil {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
			return
		}
		logger.Info("database closed")
	}
}
