package services

import (
	"context"
	"errors"
	"testing"

	"item-notes/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestItemService_List(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		requester *models.User
		category  string
		skip      int
		limit     int
		expected  models.ItemFilter
	}{
		{
			name:      "Regular user sees own items",
			requester: regularUser(),
			limit:     10,
			expected:  models.ItemFilter{OwnerID: "user-1", Limit: 10},
		},
		{
			name:      "Superuser sees all items",
			requester: superUser(),
			limit:     10,
			expected:  models.ItemFilter{Limit: 10},
		},
		{
			name:      "Category filter is trimmed and passed through",
			requester: regularUser(),
			category:  "  tools ",
			skip:      5,
			limit:     10,
			expected:  models.ItemFilter{OwnerID: "user-1", Category: "tools", Limit: 10, Offset: 5},
		},
		{
			name:      "Invalid pagination is normalized",
			requester: regularUser(),
			skip:      -3,
			limit:     0,
			expected:  models.ItemFilter{OwnerID: "user-1", Limit: DefaultLimit},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockItemRepository)
			items := []models.Item{{ID: "i1", Title: "Hammer", OwnerID: "user-1"}}
			repo.On("ListItems", mock.Anything, tt.expected).Return(items, 7, nil)

			svc := NewItemService(repo)
			result, err := svc.List(ctx, tt.requester, tt.category, tt.skip, tt.limit)

			require.NoError(t, err)
			assert.Equal(t, 7, result.Count)
			assert.Equal(t, items, result.Data)
			repo.AssertExpectations(t)
		})
	}
}

func TestItemService_List_RepositoryError(t *testing.T) {
	repo := new(MockItemRepository)
	repo.On("ListItems", mock.Anything, mock.Anything).Return(nil, 0, errors.New("db down"))

	_, err := NewItemService(repo).List(context.Background(), regularUser(), "", 0, 10)
	assert.EqualError(t, err, "db down")
}

func TestItemService_Get(t *testing.T) {
	ctx := context.Background()
	owned := &models.Item{ID: "i1", Title: "Hammer", OwnerID: "user-1"}

	tests := []struct {
		name      string
		requester *models.User
		found     *models.Item
		wantErr   error
	}{
		{"Owner can read", regularUser(), owned, nil},
		{"Superuser can read", superUser(), owned, nil},
		{"Other user is rejected", otherUser(), owned, ErrNotEnoughPermissions},
		{"Missing item", regularUser(), nil, ErrItemNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockItemRepository)
			if tt.found == nil {
				repo.On("GetItem", mock.Anything, "i1").Return(nil, nil)
			} else {
				repo.On("GetItem", mock.Anything, "i1").Return(tt.found, nil)
			}

			item, err := NewItemService(repo).Get(ctx, tt.requester, "i1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, item)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "Hammer", item.Title)
			}
		})
	}
}

func TestItemService_Create(t *testing.T) {
	repo := new(MockItemRepository)
	repo.On("CreateItem", mock.Anything, mock.MatchedBy(func(item *models.Item) bool {
		return item.OwnerID == "user-1" &&
			item.Title == "Hammer" &&
			item.Category != nil && *item.Category == "tools" &&
			item.Description == nil &&
			item.ID != ""
	})).Return(nil)

	item, err := NewItemService(repo).Create(context.Background(), regularUser(), models.ItemCreate{
		Title:       " Hammer ",
		Description: strPtr("   "),
		Category:    strPtr("tools"),
	})

	require.NoError(t, err)
	assert.Equal(t, "user-1", item.OwnerID)
	repo.AssertExpectations(t)
}

func TestItemService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Only supplied fields change", func(t *testing.T) {
		repo := new(MockItemRepository)
		existing := &models.Item{ID: "i1", Title: "Hammer", Description: strPtr("steel"), Category: strPtr("tools"), OwnerID: "user-1"}
		repo.On("GetItem", mock.Anything, "i1").Return(existing, nil)
		repo.On("UpdateItem", mock.Anything, mock.AnythingOfType("*models.Item")).Return(nil)

		item, err := NewItemService(repo).Update(ctx, regularUser(), "i1", models.ItemUpdate{Category: strPtr("hardware")})

		require.NoError(t, err)
		assert.Equal(t, "Hammer", item.Title)
		assert.Equal(t, "steel", *item.Description)
		assert.Equal(t, "hardware", *item.Category)
	})

	t.Run("Empty category clears it", func(t *testing.T) {
		repo := new(MockItemRepository)
		existing := &models.Item{ID: "i1", Title: "Hammer", Category: strPtr("tools"), OwnerID: "user-1"}
		repo.On("GetItem", mock.Anything, "i1").Return(existing, nil)
		repo.On("UpdateItem", mock.Anything, mock.AnythingOfType("*models.Item")).Return(nil)

		item, err := NewItemService(repo).Update(ctx, regularUser(), "i1", models.ItemUpdate{Category: strPtr("")})

		require.NoError(t, err)
		assert.Nil(t, item.Category)
	})

	t.Run("Non-owner cannot update", func(t *testing.T) {
		repo := new(MockItemRepository)
		repo.On("GetItem", mock.Anything, "i1").Return(&models.Item{ID: "i1", OwnerID: "user-1"}, nil)

		_, err := NewItemService(repo).Update(ctx, otherUser(), "i1", models.ItemUpdate{Title: strPtr("x")})

		assert.ErrorIs(t, err, ErrNotEnoughPermissions)
		repo.AssertNotCalled(t, "UpdateItem", mock.Anything, mock.Anything)
	})
}

func TestItemService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Owner deletes", func(t *testing.T) {
		repo := new(MockItemRepository)
		repo.On("GetItem", mock.Anything, "i1").Return(&models.Item{ID: "i1", OwnerID: "user-1"}, nil)
		repo.On("DeleteItem", mock.Anything, "i1").Return(nil)

		assert.NoError(t, NewItemService(repo).Delete(ctx, regularUser(), "i1"))
		repo.AssertExpectations(t)
	})

	t.Run("Missing item", func(t *testing.T) {
		repo := new(MockItemRepository)
		repo.On("GetItem", mock.Anything, "i1").Return(nil, nil)

		assert.ErrorIs(t, NewItemService(repo).Delete(ctx, regularUser(), "i1"), ErrItemNotFound)
		repo.AssertNotCalled(t, "DeleteItem", mock.Anything, mock.Anything)
	})
}

func TestItemService_Categories(t *testing.T) {
	repo := new(MockItemRepository)
	repo.On("ListCategories", mock.Anything, "").Return([]string{"food", "tools"}, nil)

	categories, err := NewItemService(repo).Categories(context.Background(), superUser())
	require.NoError(t, err)
	assert.Equal(t, []string{"food", "tools"}, categories)
}
