package models

import "time"

type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	IsPinned  bool      `json:"is_pinned"`
	OwnerID   string    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type NotesPublic struct {
	Data  []Note `json:"data"`
	Count int    `json:"count"`
}

type NoteCreate struct {
	Title    string `json:"title" validate:"required,notblank,max=255"`
	Content  string `json:"content"`
	IsPinned bool   `json:"is_pinned"`
}

type NoteUpdate struct {
	Title    *string `json:"title" validate:"omitnil,notblank,max=255"`
	Content  *string `json:"content"`
	IsPinned *bool   `json:"is_pinned"`
}

// NoteFilter narrows a listing. Pinned, when set, is an equality filter on is_pinned.
type NoteFilter struct {
	OwnerID string
	Pinned  *bool
	Limit   int
	Offset  int
}
