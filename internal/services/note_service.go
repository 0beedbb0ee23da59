package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/you/notesvc/domain"
)

// NoteServiceImpl implements domain.NoteService
type NoteServiceImpl struct {
	noteRepo domain.NoteRepository
}

// NewNoteService creates a new note service
func NewNoteService(noteRepo domain.NoteRepository) domain.NoteService {
	return &NoteServiceImpl{noteRepo: noteRepo}
}

// CreateNote implements domain.NoteService. Title length is validated at
// the handler layer before this runs.
func (s *NoteServiceImpl) CreateNote(ctx context.Context, userID uint, title string) (*domain.Note, error) {
	note := &domain.Note{
		Title:    strings.TrimSpace(title),
		AuthorID: userID,
	}

	if err := s.noteRepo.Create(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	return note, nil
}

// DeleteNote implements domain.NoteService. Only the owning author can
// delete a note; anything else is a not-found.
func (s *NoteServiceImpl) DeleteNote(ctx context.Context, userID, noteID uint) error {
	return s.noteRepo.DeleteByIDAndAuthor(ctx, noteID, userID)
}
