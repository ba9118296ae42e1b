package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"item-notes/metrics"
	"item-notes/models"
	"item-notes/services"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthenticator struct {
	tokens   map[string]*models.User
	sessions map[string]*models.User
	tokenErr error
}

func (f *fakeAuthenticator) UserFromToken(_ context.Context, token string) (*models.User, error) {
	if f.tokenErr != nil {
		return nil, f.tokenErr
	}
	if u, ok := f.tokens[token]; ok {
		return u, nil
	}
	return nil, services.ErrInvalidToken
}

func (f *fakeAuthenticator) UserFromSession(_ context.Context, sessionID string) (*models.User, error) {
	if u, ok := f.sessions[sessionID]; ok {
		return u, nil
	}
	return nil, services.ErrSessionNotFound
}

func newAuthApp(authn Authenticator, extra ...fiber.Handler) *fiber.App {
	app := fiber.New()
	handlers := append([]fiber.Handler{AuthRequired(authn)}, extra...)
	handlers = append(handlers, func(c *fiber.Ctx) error {
		return c.SendString(GetUserID(c))
	})
	app.Get("/protected", handlers...)
	return app
}

func TestAuthRequired(t *testing.T) {
	alice := &models.User{ID: "alice", IsActive: true}
	authn := &fakeAuthenticator{
		tokens:   map[string]*models.User{"good-token": alice},
		sessions: map[string]*models.User{"good-session": alice},
	}
	app := newAuthApp(authn)

	tests := []struct {
		name           string
		header         string
		cookie         string
		expectedStatus int
	}{
		{"No credentials", "", "", http.StatusUnauthorized},
		{"Malformed header", "Token good-token", "", http.StatusUnauthorized},
		{"Invalid token", "Bearer bad-token", "", http.StatusUnauthorized},
		{"Valid bearer token", "Bearer good-token", "", http.StatusOK},
		{"Lower-case scheme", "bearer good-token", "", http.StatusOK},
		{"Valid session cookie", "", "good-session", http.StatusOK},
		{"Stale cookie falls back to header", "Bearer good-token", "stale", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: SessionCookie, Value: tt.cookie})
			}

			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestAuthRequired_InactiveUser(t *testing.T) {
	app := newAuthApp(&fakeAuthenticator{tokenErr: services.ErrInactiveUser})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer anything")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSuperuserRequired(t *testing.T) {
	authn := &fakeAuthenticator{tokens: map[string]*models.User{
		"user":  {ID: "u", IsActive: true},
		"admin": {ID: "a", IsActive: true, IsSuperuser: true},
	}}
	app := newAuthApp(authn, SuperuserRequired())

	for token, want := range map[string]int{"user": http.StatusForbidden, "admin": http.StatusOK} {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, want, resp.StatusCode, token)
	}
}

func TestPageAuthRequired_Redirects(t *testing.T) {
	app := fiber.New()
	app.Get("/", PageAuthRequired(&fakeAuthenticator{}, "/login"), func(c *fiber.Ctx) error {
		return c.SendString("home")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestStructuredLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	app := fiber.New()
	app.Use(StructuredLogger(logger, "/health"))
	app.Get("/health", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/missing", func(c *fiber.Ctx) error { return c.SendStatus(http.StatusNotFound) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Header.Get(RequestIDHeader))
	assert.Empty(t, buf.String(), "quiet paths are not logged")

	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	req.Header.Set(RequestIDHeader, "fixed-id")
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "fixed-id", resp.Header.Get(RequestIDHeader))
	assert.Contains(t, buf.String(), "client error")
	assert.Contains(t, buf.String(), "request_id=fixed-id")
}

func TestMetricsMiddleware(t *testing.T) {
	m := metrics.NewMetrics()

	app := fiber.New()
	app.Use(Metrics(m))
	app.Get("/items/:id", func(c *fiber.Ctx) error { return c.SendString("ok") })

	for _, id := range []string{"a", "b"} {
		_, err := app.Test(httptest.NewRequest(http.MethodGet, "/items/"+id, nil), -1)
		require.NoError(t, err)
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestCounter.WithLabelValues("GET", "/items/:id", "200")))
}

func TestSecurityHeaders(t *testing.T) {
	app := fiber.New()
	app.Use(Security())
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", resp.Header.Get("X-Frame-Options"))
}
