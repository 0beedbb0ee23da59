package mocks

import (
	"context"

	"github.com/you/notesvc/domain"
)

// MockNoteRepository implements domain.NoteRepository for testing
type MockNoteRepository struct {
	CreateFunc              func(ctx context.Context, note *domain.Note) error
	DeleteByIDAndAuthorFunc func(ctx context.Context, noteID, authorID uint) error
}

// NewMockNoteRepository creates a new MockNoteRepository with default behaviors
func NewMockNoteRepository() *MockNoteRepository {
	return &MockNoteRepository{}
}

// Create creates a new note
func (m *MockNoteRepository) Create(ctx context.Context, note *domain.Note) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, note)
	}
	// Default behavior: success
	return nil
}

// DeleteByIDAndAuthor deletes a note scoped to its author
func (m *MockNoteRepository) DeleteByIDAndAuthor(ctx context.Context, noteID, authorID uint) error {
	if m.DeleteByIDAndAuthorFunc != nil {
		return m.DeleteByIDAndAuthorFunc(ctx, noteID, authorID)
	}
	// Default behavior: not found
	return domain.ErrNoteNotFound
}

// Compile-time interface compliance verification
var _ domain.NoteRepository = (*MockNoteRepository)(nil)
