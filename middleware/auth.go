package middleware

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"item-notes/models"
	"item-notes/services"

	"github.com/gofiber/fiber/v2"
)

const SessionCookie = "session_id"

// Authenticator resolves request credentials to a user
type Authenticator interface {
	UserFromToken(ctx context.Context, token string) (*models.User, error)
	UserFromSession(ctx context.Context, sessionID string) (*models.User, error)
}

// AuthRequired creates an authentication middleware that requires a valid session cookie or Bearer token
func AuthRequired(authn Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if sessionID := c.Cookies(SessionCookie); sessionID != "" {
			user, err := authn.UserFromSession(c.UserContext(), sessionID)
			if err == nil {
				setUser(c, user)
				return c.Next()
			}
			c.ClearCookie(SessionCookie)
		}

		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Not authenticated",
			})
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid authorization header format",
			})
		}

		user, err := authn.UserFromToken(c.UserContext(), parts[1])
		if err != nil {
			return authFailure(c, err)
		}

		setUser(c, user)
		return c.Next()
	}
}

// PageAuthRequired is the browser flavour: no JSON, just a redirect to the login page
func PageAuthRequired(authn Authenticator, loginPath string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID := c.Cookies(SessionCookie)
		if sessionID == "" {
			return c.Redirect(loginPath, fiber.StatusSeeOther)
		}

		user, err := authn.UserFromSession(c.UserContext(), sessionID)
		if err != nil {
			c.ClearCookie(SessionCookie)
			return c.Redirect(loginPath, fiber.StatusSeeOther)
		}

		setUser(c, user)
		return c.Next()
	}
}

// SuperuserRequired must run after AuthRequired
func SuperuserRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := GetUser(c)
		if user == nil || !user.IsSuperuser {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "The user doesn't have enough privileges",
			})
		}
		return c.Next()
	}
}

func authFailure(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInactiveUser):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Inactive user"})
	case errors.Is(err, services.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	case errors.Is(err, services.ErrInvalidToken):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Could not validate credentials"})
	default:
		slog.Error("authentication lookup failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}
}

func setUser(c *fiber.Ctx, user *models.User) {
	c.Locals("user", user)
	c.Locals("userID", user.ID)
}

func GetUser(c *fiber.Ctx) *models.User {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return nil
	}
	return user
}

func GetUserID(c *fiber.Ctx) string {
	userID, ok := c.Locals("userID").(string)
	if !ok {
		return ""
	}
	return userID
}
