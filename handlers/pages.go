package handlers

import (
	"strconv"
	"strings"
	"time"

	"item-notes/app"
	"item-notes/middleware"
	"item-notes/models"
	"item-notes/services"
	"item-notes/templates/pages"

	"github.com/a-h/templ"
	"github.com/gofiber/fiber/v2"
)

func render(c *fiber.Ctx, status int, component templ.Component) error {
	c.Set("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	return component.Render(c.Context(), c.Response().BodyWriter())
}

// HomePage renders the dashboard for the signed-in user
func HomePage(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return renderHome(a, c, fiber.StatusOK, "")
	}
}

func renderHome(a *app.App, c *fiber.Ctx, status int, errMsg string) error {
	user := middleware.GetUser(c)
	ctx := c.UserContext()
	category := strings.TrimSpace(c.Query("category"))

	items, err := a.ItemService.List(ctx, user, category, 0, services.DefaultLimit)
	if err != nil {
		return serverErrorWithDetails(c, "Failed to fetch items", err)
	}
	categories, err := a.ItemService.Categories(ctx, user)
	if err != nil {
		return serverErrorWithDetails(c, "Failed to fetch categories", err)
	}
	notes, err := a.NoteService.List(ctx, user, nil, 0, services.DefaultLimit)
	if err != nil {
		return serverErrorWithDetails(c, "Failed to fetch notes", err)
	}

	return render(c, status, pages.Index(pages.IndexData{
		User:       user,
		Items:      items,
		Categories: categories,
		Category:   category,
		Notes:      notes,
		Error:      errMsg,
	}))
}

// pageError re-renders the dashboard with a message for known service errors
func pageError(a *app.App, c *fiber.Ctx, err error, fallback string) error {
	status, msg, ok := serviceStatus(err)
	if !ok {
		return serverErrorWithDetails(c, fallback, err)
	}
	return renderHome(a, c, status, msg)
}

func backHome(c *fiber.Ctx) error {
	return c.Redirect("/", fiber.StatusSeeOther)
}

// ==================== SESSIONS ====================

func LoginPage(c *fiber.Ctx) error {
	if c.Cookies(middleware.SessionCookie) != "" {
		return backHome(c)
	}
	return render(c, fiber.StatusOK, pages.Login("", ""))
}

// LoginForm opens a cookie session from the login form
func LoginForm(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email := strings.TrimSpace(c.FormValue("username"))
		password := c.FormValue("password")

		sess, err := a.AuthService.LoginSession(c.UserContext(), email, password)
		if err != nil {
			status, msg, ok := serviceStatus(err)
			if !ok {
				return serverErrorWithDetails(c, "Failed to log in", err)
			}
			return render(c, status, pages.Login(msg, email))
		}

		c.Cookie(&fiber.Cookie{
			Name:     middleware.SessionCookie,
			Value:    sess.ID,
			Path:     "/",
			Expires:  sess.ExpiresAt,
			HTTPOnly: true,
			Secure:   a.SecureCookies,
			SameSite: fiber.CookieSameSiteLaxMode,
		})

		a.Logger.Info("user logged in", "user_id", sess.UserID)
		return backHome(c)
	}
}

func Logout(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if sessionID := c.Cookies(middleware.SessionCookie); sessionID != "" {
			if err := a.AuthService.Logout(sessionID); err != nil {
				a.Logger.Error("failed to delete session", "error", err)
			}
		}

		c.Cookie(&fiber.Cookie{
			Name:     middleware.SessionCookie,
			Value:    "",
			Path:     "/",
			Expires:  time.Now().Add(-time.Hour),
			HTTPOnly: true,
			Secure:   a.SecureCookies,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
		return c.Redirect("/login", fiber.StatusSeeOther)
	}
}

// ==================== FORMS ====================

// optionalField returns nil for an empty form value
func optionalField(c *fiber.Ctx, key string) *string {
	v := strings.TrimSpace(c.FormValue(key))
	if v == "" {
		return nil
	}
	return &v
}

func CreateItemForm(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		in := models.ItemCreate{
			Title:       c.FormValue("title"),
			Description: optionalField(c, "description"),
			Category:    optionalField(c, "category"),
		}
		if err := a.Validator.Validate(&in); err != nil {
			return renderHome(a, c, fiber.StatusUnprocessableEntity, err.Error())
		}

		if _, err := a.ItemService.Create(c.UserContext(), middleware.GetUser(c), in); err != nil {
			return pageError(a, c, err, "Failed to create item")
		}
		return backHome(c)
	}
}

func DeleteItemForm(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.ItemService.Delete(c.UserContext(), middleware.GetUser(c), c.Params("id")); err != nil {
			return pageError(a, c, err, "Failed to delete item")
		}
		return backHome(c)
	}
}

func CreateNoteForm(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		pinned, _ := strconv.ParseBool(c.FormValue("is_pinned", "false"))
		in := models.NoteCreate{
			Title:    c.FormValue("title"),
			Content:  c.FormValue("content"),
			IsPinned: pinned,
		}
		if err := a.Validator.Validate(&in); err != nil {
			return renderHome(a, c, fiber.StatusUnprocessableEntity, err.Error())
		}

		if _, err := a.NoteService.Create(c.UserContext(), middleware.GetUser(c), in); err != nil {
			return pageError(a, c, err, "Failed to create note")
		}
		return backHome(c)
	}
}

func TogglePinForm(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := a.NoteService.TogglePin(c.UserContext(), middleware.GetUser(c), c.Params("id")); err != nil {
			return pageError(a, c, err, "Failed to update note")
		}
		return backHome(c)
	}
}

func DeleteNoteForm(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.NoteService.Delete(c.UserContext(), middleware.GetUser(c), c.Params("id")); err != nil {
			return pageError(a, c, err, "Failed to delete note")
		}
		return backHome(c)
	}
}
