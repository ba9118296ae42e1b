package app

import (
	"log/slog"
	"time"

	"item-notes/database"
	"item-notes/metrics"
	"item-notes/services"
	"item-notes/session"
	"item-notes/validator"
)

// Options carries the settings the services need from configuration
type Options struct {
	SecretKey        string
	AccessTokenTTL   time.Duration
	OpenRegistration bool
	SecureCookies    bool
}

// App holds all application dependencies
// This struct is the central point for dependency injection
type App struct {
	Repo          *database.Repository
	SessionStore  *session.Store
	Validator     *validator.Validator
	Metrics       *metrics.Metrics
	Logger        *slog.Logger
	AuthService   *services.AuthService
	UserService   *services.UserService
	ItemService   *services.ItemService
	NoteService   *services.NoteService
	SecureCookies bool
}

// New creates a new App instance with all dependencies
func New(repo *database.Repository, sessionStore *session.Store, m *metrics.Metrics, logger *slog.Logger, opts Options) *App {
	return &App{
		Repo:          repo,
		SessionStore:  sessionStore,
		Validator:     validator.New(),
		Metrics:       m,
		Logger:        logger,
		AuthService:   services.NewAuthService(repo, sessionStore, opts.SecretKey, opts.AccessTokenTTL),
		UserService:   services.NewUserService(repo, opts.OpenRegistration),
		ItemService:   services.NewItemService(repo),
		NoteService:   services.NewNoteService(repo),
		SecureCookies: opts.SecureCookies,
	}
}
