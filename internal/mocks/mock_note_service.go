package mocks

import (
	"context"
	"time"

	"github.com/you/notesvc/domain"
)

// MockNoteService implements domain.NoteService for testing
type MockNoteService struct {
	CreateNoteFunc func(ctx context.Context, userID uint, title string) (*domain.Note, error)
	DeleteNoteFunc func(ctx context.Context, userID, noteID uint) error
}

// NewMockNoteService creates a new MockNoteService with default behaviors
func NewMockNoteService() *MockNoteService {
	return &MockNoteService{}
}

// CreateNote creates a note for the user
func (m *MockNoteService) CreateNote(ctx context.Context, userID uint, title string) (*domain.Note, error) {
	if m.CreateNoteFunc != nil {
		return m.CreateNoteFunc(ctx, userID, title)
	}
	now := time.Now()
	return &domain.Note{ID: 1, Title: title, AuthorID: userID, CreatedAt: now, UpdatedAt: now}, nil
}

// DeleteNote deletes the user's note
func (m *MockNoteService) DeleteNote(ctx context.Context, userID, noteID uint) error {
	if m.DeleteNoteFunc != nil {
		return m.DeleteNoteFunc(ctx, userID, noteID)
	}
	// Default behavior: not found
	return domain.ErrNoteNotFound
}

// Compile-time interface compliance verification
var _ domain.NoteService = (*MockNoteService)(nil)
