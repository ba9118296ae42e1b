package database

import (
	"context"
	"database/sql"
	"time"

	"item-notes/models"
)

// ==================== ITEM OPERATIONS ====================

const itemColumns = `id, title, description, category, owner_id, created_at, updated_at`

func scanItem(row rowScanner) (*models.Item, error) {
	var item models.Item
	var description, category sql.NullString
	if err := row.Scan(
		&item.ID, &item.Title, &description, &category,
		&item.OwnerID, &item.CreatedAt, &item.UpdatedAt,
	); err != nil {
		return nil, err
	}
	item.Description = stringPtr(description)
	item.Category = stringPtr(category)
	return &item, nil
}

// ListItems returns a page of items matching the filter plus the total match count
func (r *Repository) ListItems(ctx context.Context, filter models.ItemFilter) ([]models.Item, int, error) {
	var conds []string
	var args []any
	if filter.OwnerID != "" {
		conds = append(conds, "owner_id = ?")
		args = append(args, filter.OwnerID)
	}
	if filter.Category != "" {
		conds = append(conds, "category = ?")
		args = append(args, filter.Category)
	}
	where := whereClause(conds)

	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM items`+where, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+itemColumns+`
		FROM items`+where+`
		ORDER BY created_at ASC, rowid ASC
		LIMIT ? OFFSET ?
	`, append(args, filter.Limit, filter.Offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	// Initialize with empty slice to avoid returning nil
	items := make([]models.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, *item)
	}

	return items, count, rows.Err()
}

// GetItem retrieves an item by ID, or nil when absent
func (r *Repository) GetItem(ctx context.Context, itemID string) (*models.Item, error) {
	item, err := scanItem(r.db.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE id = ?`, itemID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return item, err
}

// CreateItem inserts a new item
func (r *Repository) CreateItem(ctx context.Context, item *models.Item) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO items (`+itemColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		item.ID, item.Title, nullString(item.Description), nullString(item.Category),
		item.OwnerID, item.CreatedAt, item.UpdatedAt,
	)
	return err
}

// UpdateItem overwrites an item's title, description and category
func (r *Repository) UpdateItem(ctx context.Context, item *models.Item) error {
	item.UpdatedAt = time.Now()
	_, err := r.db.ExecContext(ctx, `
		UPDATE items SET
			title = ?,
			description = ?,
			category = ?,
			updated_at = ?
		WHERE id = ?
	`, item.Title, nullString(item.Description), nullString(item.Category), item.UpdatedAt, item.ID)
	return err
}

// DeleteItem deletes an item by ID
func (r *Repository) DeleteItem(ctx context.Context, itemID string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM items WHERE id = ?", itemID)
	return err
}

// ListCategories returns the distinct categories in use, for filter suggestions
func (r *Repository) ListCategories(ctx context.Context, ownerID string) ([]string, error) {
	query := `SELECT DISTINCT category FROM items WHERE category IS NOT NULL`
	var args []any
	if ownerID != "" {
		query += ` AND owner_id = ?`
		args = append(args, ownerID)
	}
	query += ` ORDER BY category ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]string, 0)
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}

	return categories, rows.Err()
}
