package setup

import (
	"time"

	"item-notes/app"
	"item-notes/handlers"
	"item-notes/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

const APIPrefix = "/api/v1"

// RegisterRoutes registers all application routes
func RegisterRoutes(fiberApp *fiber.App, application *app.App) {
	// Probes
	fiberApp.Get("/health", handlers.Health)
	fiberApp.Get("/metrics", application.Metrics.Handler())

	// Browser UI
	pageAuth := middleware.PageAuthRequired(application.AuthService, "/login")
	fiberApp.Get("/login", handlers.LoginPage)
	fiberApp.Post("/login", handlers.LoginForm(application))
	fiberApp.Post("/logout", handlers.Logout(application))
	fiberApp.Get("/", pageAuth, handlers.HomePage(application))
	fiberApp.Post("/items", pageAuth, handlers.CreateItemForm(application))
	fiberApp.Post("/items/:id/delete", pageAuth, handlers.DeleteItemForm(application))
	fiberApp.Post("/notes", pageAuth, handlers.CreateNoteForm(application))
	fiberApp.Post("/notes/:id/pin", pageAuth, handlers.TogglePinForm(application))
	fiberApp.Post("/notes/:id/delete", pageAuth, handlers.DeleteNoteForm(application))

	// Public API routes
	fiberApp.Get(APIPrefix+"/utils/health-check", handlers.HealthCheck)
	fiberApp.Post(APIPrefix+"/login/access-token", handlers.LoginAccessToken(application))
	fiberApp.Post(APIPrefix+"/users/signup", handlers.Signup(application))

	// Protected API routes
	api := fiberApp.Group(APIPrefix, middleware.AuthRequired(application.AuthService), limiter.New(limiter.Config{
		Max:        100,
		Expiration: time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			if userID := middleware.GetUserID(c); userID != "" {
				return "user:" + userID
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Rate limit exceeded for your account",
			})
		},
	}))

	api.Post("/login/test-token", handlers.TestToken)

	api.Get("/users/me", handlers.ReadMe)
	api.Patch("/users/me", handlers.UpdateMe(application))
	api.Delete("/users/me", handlers.DeleteMe(application))
	api.Patch("/users/me/password", handlers.UpdatePassword(application))

	superuser := middleware.SuperuserRequired()
	api.Get("/users", superuser, handlers.ListUsers(application))
	api.Post("/users", superuser, handlers.CreateUser(application))
	api.Get("/users/:id", handlers.GetUser(application))
	api.Patch("/users/:id", superuser, handlers.UpdateUser(application))
	api.Delete("/users/:id", superuser, handlers.DeleteUser(application))

	api.Get("/items", handlers.ListItems(application))
	api.Post("/items", handlers.CreateItem(application))
	api.Get("/items/categories", handlers.ListCategories(application))
	api.Get("/items/:id", handlers.GetItem(application))
	api.Put("/items/:id", handlers.UpdateItem(application))
	api.Delete("/items/:id", handlers.DeleteItem(application))

	api.Get("/notes", handlers.ListNotes(application))
	api.Post("/notes", handlers.CreateNote(application))
	api.Get("/notes/:id", handlers.GetNote(application))
	api.Put("/notes/:id", handlers.UpdateNote(application))
	api.Delete("/notes/:id", handlers.DeleteNote(application))
	api.Post("/notes/:id/pin", handlers.TogglePin(application))
}
