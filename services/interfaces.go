package services

import (
	"context"

	"item-notes/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	ListUsers(ctx context.Context, limit, offset int) ([]models.User, int, error)
	CreateUser(ctx context.Context, user *models.User) error
	UpdateUser(ctx context.Context, user *models.User) error
	DeleteUser(ctx context.Context, userID string) error
}

// ItemRepository defines the interface for item data access
type ItemRepository interface {
	ListItems(ctx context.Context, filter models.ItemFilter) ([]models.Item, int, error)
	ListCategories(ctx context.Context, ownerID string) ([]string, error)
	GetItem(ctx context.Context, itemID string) (*models.Item, error)
	CreateItem(ctx context.Context, item *models.Item) error
	UpdateItem(ctx context.Context, item *models.Item) error
	DeleteItem(ctx context.Context, itemID string) error
}

// NoteRepository defines the interface for note data access
type NoteRepository interface {
	ListNotes(ctx context.Context, filter models.NoteFilter) ([]models.Note, int, error)
	GetNote(ctx context.Context, noteID string) (*models.Note, error)
	CreateNote(ctx context.Context, note *models.Note) error
	UpdateNote(ctx context.Context, note *models.Note) error
	DeleteNote(ctx context.Context, noteID string) error
}

// SessionStore defines the interface for browser session management
type SessionStore interface {
	Create(userID string) (*models.Session, error)
	Get(sessionID string) (*models.Session, error)
	Delete(sessionID string) error
}
