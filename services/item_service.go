package services

import (
	"context"
	"strings"
	"time"

	"item-notes/models"

	"github.com/google/uuid"
)

// ItemService handles business logic for items
type ItemService struct {
	repo ItemRepository
}

// NewItemService creates a new item service
func NewItemService(repo ItemRepository) *ItemService {
	return &ItemService{repo: repo}
}

// List returns the requester's items (every item for superusers),
// optionally narrowed to a single category.
func (is *ItemService) List(ctx context.Context, requester *models.User, category string, skip, limit int) (*models.ItemsPublic, error) {
	skip, limit = normalizePage(skip, limit)

	items, count, err := is.repo.ListItems(ctx, models.ItemFilter{
		OwnerID:  ownerScope(requester),
		Category: strings.TrimSpace(category),
		Limit:    limit,
		Offset:   skip,
	})
	if err != nil {
		return nil, err
	}

	return &models.ItemsPublic{Data: items, Count: count}, nil
}

// Categories lists the distinct categories visible to the requester
func (is *ItemService) Categories(ctx context.Context, requester *models.User) ([]string, error) {
	return is.repo.ListCategories(ctx, ownerScope(requester))
}

// Get retrieves an item the requester is allowed to see
func (is *ItemService) Get(ctx context.Context, requester *models.User, itemID string) (*models.Item, error) {
	item, err := is.repo.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	if !canAccess(requester, item.OwnerID) {
		return nil, ErrNotEnoughPermissions
	}
	return item, nil
}

// Create stores a new item owned by the requester
func (is *ItemService) Create(ctx context.Context, requester *models.User, in models.ItemCreate) (*models.Item, error) {
	now := time.Now()
	item := &models.Item{
		ID:          uuid.New().String(),
		Title:       strings.TrimSpace(in.Title),
		Description: trimOptional(in.Description),
		Category:    trimOptional(in.Category),
		OwnerID:     requester.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := is.repo.CreateItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Update applies the supplied fields to an existing item
func (is *ItemService) Update(ctx context.Context, requester *models.User, itemID string, in models.ItemUpdate) (*models.Item, error) {
	item, err := is.Get(ctx, requester, itemID)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		item.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		item.Description = trimOptional(in.Description)
	}
	if in.Category != nil {
		item.Category = trimOptional(in.Category)
	}

	if err := is.repo.UpdateItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete removes an item the requester owns
func (is *ItemService) Delete(ctx context.Context, requester *models.User, itemID string) error {
	if _, err := is.Get(ctx, requester, itemID); err != nil {
		return err
	}
	return is.repo.DeleteItem(ctx, itemID)
}

// trimOptional trims a free-text value; blank becomes nil (stored as NULL)
func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
