package handlers

import (
	"strconv"

	"item-notes/app"
	"item-notes/middleware"
	"item-notes/models"

	"github.com/gofiber/fiber/v2"
)

// ListNotes returns a page of notes, pinned first, optionally filtered by ?pinned=
func ListNotes(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		skip, limit := page(c)

		var pinned *bool
		if raw := c.Query("pinned"); raw != "" {
			b, err := strconv.ParseBool(raw)
			if err != nil {
				return errorJSON(c, fiber.StatusUnprocessableEntity, "pinned must be a boolean")
			}
			pinned = &b
		}

		result, err := a.NoteService.List(c.UserContext(), middleware.GetUser(c), pinned, skip, limit)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch notes", err)
		}

		return success(c, result)
	}
}

// GetNote returns a single note
func GetNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		note, err := a.NoteService.Get(c.UserContext(), middleware.GetUser(c), c.Params("id"))
		if err != nil {
			return serviceError(c, err, "Failed to fetch note")
		}

		return success(c, note)
	}
}

// CreateNote creates a note owned by the caller
func CreateNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.NoteCreate
		if ok, err := bind(a, c, &req); !ok {
			return err
		}

		note, err := a.NoteService.Create(c.UserContext(), middleware.GetUser(c), req)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to create note", err)
		}

		return created(c, note)
	}
}

// UpdateNote overwrites the supplied fields of a note
func UpdateNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.NoteUpdate
		if ok, err := bind(a, c, &req); !ok {
			return err
		}

		note, err := a.NoteService.Update(c.UserContext(), middleware.GetUser(c), c.Params("id"), req)
		if err != nil {
			return serviceError(c, err, "Failed to update note")
		}

		return success(c, note)
	}
}

// TogglePin flips a note's pinned flag
func TogglePin(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		note, err := a.NoteService.TogglePin(c.UserContext(), middleware.GetUser(c), c.Params("id"))
		if err != nil {
			return serviceError(c, err, "Failed to update note")
		}

		return success(c, note)
	}
}

// DeleteNote deletes a note
func DeleteNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.NoteService.Delete(c.UserContext(), middleware.GetUser(c), c.Params("id")); err != nil {
			return serviceError(c, err, "Failed to delete note")
		}

		return message(c, "Note deleted successfully")
	}
}
