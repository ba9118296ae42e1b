package handlers

import (
	"item-notes/app"
	"item-notes/middleware"
	"item-notes/models"

	"github.com/gofiber/fiber/v2"
)

// ListItems returns a page of items, optionally filtered by ?category=
func ListItems(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		skip, limit := page(c)

		result, err := a.ItemService.List(c.UserContext(), middleware.GetUser(c), c.Query("category"), skip, limit)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch items", err)
		}

		return success(c, result)
	}
}

// ListCategories returns the distinct categories the caller can filter on
func ListCategories(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		categories, err := a.ItemService.Categories(c.UserContext(), middleware.GetUser(c))
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch categories", err)
		}

		return success(c, fiber.Map{"data": categories, "count": len(categories)})
	}
}

// GetItem returns a single item
func GetItem(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		item, err := a.ItemService.Get(c.UserContext(), middleware.GetUser(c), c.Params("id"))
		if err != nil {
			return serviceError(c, err, "Failed to fetch item")
		}

		return success(c, item)
	}
}

// CreateItem creates an item owned by the caller
func CreateItem(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.ItemCreate
		if ok, err := bind(a, c, &req); !ok {
			return err
		}

		item, err := a.ItemService.Create(c.UserContext(), middleware.GetUser(c), req)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to create item", err)
		}

		return created(c, item)
	}
}

// UpdateItem overwrites the supplied fields of an item
func UpdateItem(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.ItemUpdate
		if ok, err := bind(a, c, &req); !ok {
			return err
		}

		item, err := a.ItemService.Update(c.UserContext(), middleware.GetUser(c), c.Params("id"), req)
		if err != nil {
			return serviceError(c, err, "Failed to update item")
		}

		return success(c, item)
	}
}

// DeleteItem deletes an item
func DeleteItem(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.ItemService.Delete(c.UserContext(), middleware.GetUser(c), c.Params("id")); err != nil {
			return serviceError(c, err, "Failed to delete item")
		}

		return message(c, "Item deleted successfully")
	}
}
