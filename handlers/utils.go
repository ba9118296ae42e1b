package handlers

import (
	"errors"
	"log/slog"

	"item-notes/app"
	"item-notes/middleware"
	"item-notes/models"
	"item-notes/services"
	"item-notes/validator"

	"github.com/gofiber/fiber/v2"
)

func success(c *fiber.Ctx, data interface{}) error {
	return c.JSON(data)
}

func created(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

func message(c *fiber.Ctx, msg string) error {
	return c.JSON(models.Message{Message: msg})
}

func errorJSON(c *fiber.Ctx, status int, msg string) error {
	body := fiber.Map{"error": msg}
	if id := middleware.RequestID(c); id != "" {
		body["request_id"] = id
	}
	return c.Status(status).JSON(body)
}

func badRequest(c *fiber.Ctx, msg string) error {
	return errorJSON(c, fiber.StatusBadRequest, msg)
}

func validationError(c *fiber.Ctx, err error) error {
	var details validator.ValidationErrors
	if errors.As(err, &details) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":   "Validation failed",
			"details": details,
		})
	}
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
}

func serverErrorWithDetails(c *fiber.Ctx, msg string, err error) error {
	slog.Error("server error",
		"request_id", middleware.RequestID(c),
		"method", c.Method(),
		"path", c.Path(),
		"message", msg,
		"error", err,
	)

	return errorJSON(c, fiber.StatusInternalServerError, msg)
}

// serviceStatus maps service sentinels onto an HTTP status and client message.
// ok is false for errors that should surface as a 500.
func serviceStatus(err error) (status int, msg string, ok bool) {
	switch {
	case errors.Is(err, services.ErrItemNotFound):
		return fiber.StatusNotFound, "Item not found", true
	case errors.Is(err, services.ErrNoteNotFound):
		return fiber.StatusNotFound, "Note not found", true
	case errors.Is(err, services.ErrUserNotFound):
		return fiber.StatusNotFound, "User not found", true
	case errors.Is(err, services.ErrNotEnoughPermissions):
		return fiber.StatusForbidden, "Not enough permissions", true
	case errors.Is(err, services.ErrSuperuserSelfDelete):
		return fiber.StatusForbidden, "Super users are not allowed to delete themselves", true
	case errors.Is(err, services.ErrRegistrationClosed):
		return fiber.StatusForbidden, "Open user registration is forbidden on this server", true
	case errors.Is(err, services.ErrEmailAlreadyRegistered):
		return fiber.StatusBadRequest, "The user with this email already exists in the system", true
	case errors.Is(err, services.ErrIncorrectPassword):
		return fiber.StatusBadRequest, "Incorrect password", true
	case errors.Is(err, services.ErrSamePassword):
		return fiber.StatusBadRequest, "New password cannot be the same as the current one", true
	case errors.Is(err, services.ErrIncorrectCredentials):
		return fiber.StatusBadRequest, "Incorrect email or password", true
	case errors.Is(err, services.ErrInactiveUser):
		return fiber.StatusBadRequest, "Inactive user", true
	default:
		return fiber.StatusInternalServerError, "", false
	}
}

// serviceError writes the JSON response for a service error; anything
// unrecognised is logged and reported as a 500 with fallback.
func serviceError(c *fiber.Ctx, err error, fallback string) error {
	status, msg, ok := serviceStatus(err)
	if !ok {
		return serverErrorWithDetails(c, fallback, err)
	}
	return errorJSON(c, status, msg)
}

// bind decodes and validates the request body. When it returns false the
// error response has already been written and err is what the handler returns.
func bind(a *app.App, c *fiber.Ctx, req interface{}) (bool, error) {
	if err := c.BodyParser(req); err != nil {
		return false, badRequest(c, "Invalid request body")
	}
	if err := a.Validator.Validate(req); err != nil {
		return false, validationError(c, err)
	}
	return true, nil
}

// page reads the skip/limit query parameters
func page(c *fiber.Ctx) (skip, limit int) {
	return c.QueryInt("skip", 0), c.QueryInt("limit", services.DefaultLimit)
}
