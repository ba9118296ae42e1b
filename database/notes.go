package database

import (
	"context"
	"database/sql"
	"time"

	"item-notes/models"
)

// ==================== NOTE OPERATIONS ====================

const noteColumns = `id, title, content, is_pinned, owner_id, created_at, updated_at`

func scanNote(row rowScanner) (*models.Note, error) {
	var note models.Note
	if err := row.Scan(
		&note.ID, &note.Title, &note.Content, &note.IsPinned,
		&note.OwnerID, &note.CreatedAt, &note.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &note, nil
}

// ListNotes returns a page of notes, pinned first, plus the total match count
func (r *Repository) ListNotes(ctx context.Context, filter models.NoteFilter) ([]models.Note, int, error) {
	var conds []string
	var args []any
	if filter.OwnerID != "" {
		conds = append(conds, "owner_id = ?")
		args = append(args, filter.OwnerID)
	}
	if filter.Pinned != nil {
		conds = append(conds, "is_pinned = ?")
		args = append(args, boolToInt(*filter.Pinned))
	}
	where := whereClause(conds)

	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM notes`+where, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+noteColumns+`
		FROM notes`+where+`
		ORDER BY is_pinned DESC, created_at ASC, rowid ASC
		LIMIT ? OFFSET ?
	`, append(args, filter.Limit, filter.Offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	notes := make([]models.Note, 0)
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, 0, err
		}
		notes = append(notes, *note)
	}

	return notes, count, rows.Err()
}

// GetNote retrieves a note by ID, or nil when absent
func (r *Repository) GetNote(ctx context.Context, noteID string) (*models.Note, error) {
	note, err := scanNote(r.db.QueryRowContext(ctx,
		`SELECT `+noteColumns+` FROM notes WHERE id = ?`, noteID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return note, err
}

// CreateNote inserts a new note
func (r *Repository) CreateNote(ctx context.Context, note *models.Note) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO notes (`+noteColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		note.ID, note.Title, note.Content, note.IsPinned,
		note.OwnerID, note.CreatedAt, note.UpdatedAt,
	)
	return err
}

// UpdateNote overwrites a note's title, content and pin flag
func (r *Repository) UpdateNote(ctx context.Context, note *models.Note) error {
	note.UpdatedAt = time.Now()
	_, err := r.db.ExecContext(ctx, `
		UPDATE notes SET
			title = ?,
			content = ?,
			is_pinned = ?,
			updated_at = ?
		WHERE id = ?
	`, note.Title, note.Content, note.IsPinned, note.UpdatedAt, note.ID)
	return err
}

// DeleteNote deletes a note by ID
func (r *Repository) DeleteNote(ctx context.Context, noteID string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM notes WHERE id = ?", noteID)
	return err
}
