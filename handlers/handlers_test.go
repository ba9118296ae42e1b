package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"item-notes/app"
	"item-notes/database"
	"item-notes/metrics"
	"item-notes/models"
	"item-notes/session"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

const testPassword = "password123"

// setupTestDB creates a temporary test database and returns app with all dependencies
func setupTestDB(t *testing.T) *app.App {
	t.Helper()

	db, err := database.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err, "Failed to initialize test database")
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.Migrate(), "Failed to run migrations")

	repo := database.NewRepository(db)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return app.New(repo, session.NewStore(db.DB), metrics.NewMetrics(), logger, app.Options{
		SecretKey:        "test-secret",
		AccessTokenTTL:   time.Hour,
		OpenRegistration: true,
	})
}

// createUser registers an account directly through the user service
func createUser(t *testing.T, a *app.App, email string, superuser bool) *models.User {
	t.Helper()

	user, err := a.UserService.Create(context.Background(), models.UserCreate{
		Email:       email,
		Password:    testPassword,
		IsSuperuser: superuser,
	})
	require.NoError(t, err)
	return user
}

// setupTestApp creates a Fiber app that runs every request as user
func setupTestApp(user *models.User) *fiber.App {
	fiberApp := fiber.New()

	fiberApp.Use(func(c *fiber.Ctx) error {
		if user != nil {
			c.Locals("user", user)
			c.Locals("userID", user.ID)
		}
		return c.Next()
	})

	return fiberApp
}

func doJSON(t *testing.T, fiberApp *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}

	resp, err := fiberApp.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// doJSONRaw posts an arbitrary payload labelled as JSON
func doJSONRaw(t *testing.T, fiberApp *fiber.App, path, raw string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(raw))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := fiberApp.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}
