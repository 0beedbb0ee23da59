package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/you/notesvc/domain"
)

// NoteHandlers handles note HTTP requests
type NoteHandlers struct {
	noteSvc domain.NoteService
}

// NewNoteHandlers creates new note handlers
func NewNoteHandlers(noteSvc domain.NoteService) *NoteHandlers {
	return &NoteHandlers{noteSvc: noteSvc}
}

// CreateNoteRequest represents note creation request
type CreateNoteRequest struct {
	Title string `json:"title" binding:"required"`
}

// Create handles note creation
func (h *NoteHandlers) Create(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in context"})
		return
	}

	var req CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validateTitle(req.Title); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	note, err := h.noteSvc.CreateNote(c.Request.Context(), userID.(uint), req.Title)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create note"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data": gin.H{
			"message": "Note created successfully",
			"note": gin.H{
				"id":         note.ID,
				"title":      note.Title,
				"author_id":  note.AuthorID,
				"created_at": note.CreatedAt,
				"updated_at": note.UpdatedAt,
			},
		},
	})
}

// Delete handles note deletion
func (h *NoteHandlers) Delete(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID not found in context"})
		return
	}

	noteID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Note not found"})
		return
	}

	if err := h.noteSvc.DeleteNote(c.Request.Context(), userID.(uint), uint(noteID)); err != nil {
		if err == domain.ErrNoteNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Note not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete note"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"message": "Note deleted successfully",
		},
	})
}
