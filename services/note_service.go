package services

import (
	"context"
	"strings"
	"time"

	"item-notes/models"

	"github.com/google/uuid"
)

// NoteService handles business logic for notes
type NoteService struct {
	repo NoteRepository
}

// NewNoteService creates a new note service
func NewNoteService(repo NoteRepository) *NoteService {
	return &NoteService{repo: repo}
}

// List returns the requester's notes with pinned notes first.
// pinned, when non-nil, keeps only notes with that pin state.
func (ns *NoteService) List(ctx context.Context, requester *models.User, pinned *bool, skip, limit int) (*models.NotesPublic, error) {
	skip, limit = normalizePage(skip, limit)

	notes, count, err := ns.repo.ListNotes(ctx, models.NoteFilter{
		OwnerID: ownerScope(requester),
		Pinned:  pinned,
		Limit:   limit,
		Offset:  skip,
	})
	if err != nil {
		return nil, err
	}

	return &models.NotesPublic{Data: notes, Count: count}, nil
}

// Get retrieves a note the requester is allowed to see
func (ns *NoteService) Get(ctx context.Context, requester *models.User, noteID string) (*models.Note, error) {
	note, err := ns.repo.GetNote(ctx, noteID)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, ErrNoteNotFound
	}
	if !canAccess(requester, note.OwnerID) {
		return nil, ErrNotEnoughPermissions
	}
	return note, nil
}

// Create stores a new note owned by the requester
func (ns *NoteService) Create(ctx context.Context, requester *models.User, in models.NoteCreate) (*models.Note, error) {
	now := time.Now()
	note := &models.Note{
		ID:        uuid.New().String(),
		Title:     strings.TrimSpace(in.Title),
		Content:   in.Content,
		IsPinned:  in.IsPinned,
		OwnerID:   requester.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := ns.repo.CreateNote(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

// Update applies the supplied fields to an existing note
func (ns *NoteService) Update(ctx context.Context, requester *models.User, noteID string, in models.NoteUpdate) (*models.Note, error) {
	note, err := ns.Get(ctx, requester, noteID)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		note.Title = strings.TrimSpace(*in.Title)
	}
	if in.Content != nil {
		note.Content = *in.Content
	}
	if in.IsPinned != nil {
		note.IsPinned = *in.IsPinned
	}

	if err := ns.repo.UpdateNote(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

// TogglePin flips the pinned flag of a note
func (ns *NoteService) TogglePin(ctx context.Context, requester *models.User, noteID string) (*models.Note, error) {
	note, err := ns.Get(ctx, requester, noteID)
	if err != nil {
		return nil, err
	}

	note.IsPinned = !note.IsPinned
	if err := ns.repo.UpdateNote(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

// Delete removes a note the requester owns
func (ns *NoteService) Delete(ctx context.Context, requester *models.User, noteID string) error {
	if _, err := ns.Get(ctx, requester, noteID); err != nil {
		return err
	}
	return ns.repo.DeleteNote(ctx, noteID)
}
