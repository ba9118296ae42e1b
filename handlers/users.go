package handlers

import (
	"item-notes/app"
	"item-notes/middleware"
	"item-notes/models"

	"github.com/gofiber/fiber/v2"
)

// ==================== SELF-SERVICE ====================

// Signup registers a new regular user without authentication
func Signup(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.UserRegister
		if ok, err := bind(a, c, &req); !ok {
			return err
		}

		user, err := a.UserService.Register(c.UserContext(), req)
		if err != nil {
			return serviceError(c, err, "Failed to register user")
		}

		return created(c, user)
	}
}

func ReadMe(c *fiber.Ctx) error {
	return success(c, middleware.GetUser(c))
}

func UpdateMe(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.UserUpdateMe
		if ok, err := bind(a, c, &req); !ok {
			return err
		}

		user, err := a.UserService.UpdateMe(c.UserContext(), middleware.GetUser(c), req)
		if err != nil {
			return serviceError(c, err, "Failed to update user")
		}

		return success(c, user)
	}
}

func UpdatePassword(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.UpdatePassword
		if ok, err := bind(a, c, &req); !ok {
			return err
		}

		if err := a.UserService.UpdatePassword(c.UserContext(), middleware.GetUser(c), req); err != nil {
			return serviceError(c, err, "Failed to update password")
		}

		return message(c, "Password updated successfully")
	}
}

func DeleteMe(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.UserService.DeleteMe(c.UserContext(), middleware.GetUser(c)); err != nil {
			return serviceError(c, err, "Failed to delete user")
		}

		return message(c, "User deleted successfully")
	}
}

// ==================== ADMINISTRATION ====================

// ListUsers is superuser-only
func ListUsers(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		skip, limit := page(c)

		result, err := a.UserService.List(c.UserContext(), skip, limit)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch users", err)
		}

		return success(c, result)
	}
}

// CreateUser is superuser-only
func CreateUser(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.UserCreate
		if ok, err := bind(a, c, &req); !ok {
			return err
		}

		user, err := a.UserService.Create(c.UserContext(), req)
		if err != nil {
			return serviceError(c, err, "Failed to create user")
		}

		return created(c, user)
	}
}

// GetUser lets superusers read anyone and other users read themselves
func GetUser(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := a.UserService.Get(c.UserContext(), middleware.GetUser(c), c.Params("id"))
		if err != nil {
			return serviceError(c, err, "Failed to fetch user")
		}

		return success(c, user)
	}
}

// UpdateUser is superuser-only
func UpdateUser(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.UserUpdate
		if ok, err := bind(a, c, &req); !ok {
			return err
		}

		user, err := a.UserService.Update(c.UserContext(), c.Params("id"), req)
		if err != nil {
			return serviceError(c, err, "Failed to update user")
		}

		return success(c, user)
	}
}

// DeleteUser is superuser-only; owned items and notes are removed too
func DeleteUser(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.UserService.Delete(c.UserContext(), middleware.GetUser(c), c.Params("id")); err != nil {
			return serviceError(c, err, "Failed to delete user")
		}

		return message(c, "User deleted successfully")
	}
}
