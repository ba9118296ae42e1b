package handlers

import (
	"item-notes/app"
	"item-notes/middleware"
	"item-notes/models"

	"github.com/gofiber/fiber/v2"
)

// LoginAccessToken exchanges email/password (OAuth2 password form or JSON) for a bearer token
func LoginAccessToken(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.LoginRequest
		if ok, err := bind(a, c, &req); !ok {
			return err
		}

		token, err := a.AuthService.Login(c.UserContext(), req.Username, req.Password)
		if err != nil {
			return serviceError(c, err, "Failed to log in")
		}

		a.Logger.Info("access token issued", "request_id", middleware.RequestID(c))
		return success(c, token)
	}
}

// TestToken echoes the authenticated user
func TestToken(c *fiber.Ctx) error {
	return success(c, middleware.GetUser(c))
}
