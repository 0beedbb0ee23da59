package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/you/notesvc/domain"
)

// NoteRepositoryImpl implements domain.NoteRepository using GORM
type NoteRepositoryImpl struct {
	db *gorm.DB
}

// DBNote represents the database model for Note (with GORM tags)
type DBNote struct {
	ID        uint      `gorm:"primaryKey"`
	Title     string    `gorm:"size:128"`
	AuthorID  uint      `gorm:"index"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBNote) TableName() string {
	return "notes"
}

// NewNoteRepository creates a new note repository
func NewNoteRepository(db *gorm.DB) domain.NoteRepository {
	return &NoteRepositoryImpl{db: db}
}

// Create implements domain.NoteRepository
func (r *NoteRepositoryImpl) Create(ctx context.Context, note *domain.Note) error {
	dbNote := &DBNote{
		Title:    note.Title,
		AuthorID: note.AuthorID,
	}
	if err := r.db.WithContext(ctx).Create(dbNote).Error; err != nil {
		return err
	}
	note.ID = dbNote.ID
	note.CreatedAt = dbNote.CreatedAt
	note.UpdatedAt = dbNote.UpdatedAt
	return nil
}

// DeleteByIDAndAuthor implements domain.NoteRepository. The delete is
// scoped to the owning author: a matching id under a different author
// deletes nothing and reports ErrNoteNotFound, so ownership mismatch and
// unknown id are indistinguishable to the caller.
func (r *NoteRepositoryImpl) DeleteByIDAndAuthor(ctx context.Context, noteID, authorID uint) error {
	result := r.db.WithContext(ctx).Where("id = ? AND author_id = ?", noteID, authorID).Delete(&DBNote{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNoteNotFound
	}
	return nil
}
