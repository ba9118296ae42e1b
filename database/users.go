package database

import (
	"context"
	"database/sql"
	"time"

	"item-notes/models"
)

// ==================== USER OPERATIONS ====================

const userColumns = `id, email, full_name, hashed_password, is_active, is_superuser, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*models.User, error) {
	var user models.User
	var fullName sql.NullString
	if err := row.Scan(
		&user.ID, &user.Email, &fullName, &user.HashedPassword,
		&user.IsActive, &user.IsSuperuser, &user.CreatedAt, &user.UpdatedAt,
	); err != nil {
		return nil, err
	}
	user.FullName = stringPtr(fullName)
	return &user, nil
}

// GetUserByID retrieves a user by ID, or nil when absent
func (r *Repository) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	user, err := scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, userID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return user, err
}

// GetUserByEmail looks a user up case-insensitively
func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ? COLLATE NOCASE`, email))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return user, err
}

// ListUsers returns a page of users and the total user count
func (r *Repository) ListUsers(ctx context.Context, limit, offset int) ([]models.User, int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+userColumns+`
		FROM users
		ORDER BY created_at ASC, rowid ASC
		LIMIT ? OFFSET ?
	`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, *user)
	}

	return users, count, rows.Err()
}

// CreateUser inserts a new user record
func (r *Repository) CreateUser(ctx context.Context, user *models.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (`+userColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		user.ID, user.Email, nullString(user.FullName), user.HashedPassword,
		user.IsActive, user.IsSuperuser, user.CreatedAt, user.UpdatedAt,
	)
	return err
}

// UpdateUser overwrites the mutable profile fields of a user
func (r *Repository) UpdateUser(ctx context.Context, user *models.User) error {
	user.UpdatedAt = time.Now()
	_, err := r.db.ExecContext(ctx, `
		UPDATE users SET
			email = ?,
			full_name = ?,
			hashed_password = ?,
			is_active = ?,
			is_superuser = ?,
			updated_at = ?
		WHERE id = ?
	`,
		user.Email, nullString(user.FullName), user.HashedPassword,
		user.IsActive, user.IsSuperuser, user.UpdatedAt, user.ID,
	)
	return err
}

// DeleteUser removes a user; items, notes and sessions cascade
func (r *Repository) DeleteUser(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM users WHERE id = ?", userID)
	return err
}
