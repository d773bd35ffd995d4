package handlers

import (
	"errors"
	"net/http"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"

	"github.com/florv/home-helper/internal/dto"
	apierrors "github.com/florv/home-helper/internal/errors"
	"github.com/florv/home-helper/internal/middleware"
	"github.com/florv/home-helper/internal/services"
)

// NoteHandler coordinates note CRUD HTTP handlers.
type NoteHandler struct {
	noteService *services.NoteService
}

// NewNoteHandler creates a new NoteHandler.
func NewNoteHandler(noteService *services.NoteService) *NoteHandler {
	return &NoteHandler{
		noteService: noteService,
	}
}

// ListNotes returns the current user's notes, oldest first, each with a
// sanitized body preview.
func (h *NoteHandler) ListNotes(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	notes, err := h.noteService.ListNotes(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch notes")
		return
	}

	items := make([]dto.NoteListItemDTO, len(notes))
	for i, note := range notes {
		items[i] = dto.ToNoteListItemDTO(note, h.noteService.Preview(note.Body))
	}

	c.JSON(http.StatusOK, gin.H{"notes": items})
}

// EditNote returns the note behind the edit form, or an empty draft when no
// ID is supplied.
func (h *NoteHandler) EditNote(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	noteID, ok := optionalNoteID(c)
	if !ok {
		return
	}

	note, err := h.noteService.GetNoteForEdit(userID, noteID)
	if err != nil {
		if errors.Is(err, services.ErrNoteNotFound) {
			apierrors.NotFound(c, "Note not found")
			return
		}
		apierrors.InternalError(c, "Failed to fetch note")
		return
	}

	c.JSON(http.StatusOK, dto.ToNoteDTO(*note))
}

// SaveNote creates, updates, or deletes a note depending on the presence of
// an ID and the delete action, mirroring the single edit form.
func (h *NoteHandler) SaveNote(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	noteID, ok := optionalNoteID(c)
	if !ok {
		return
	}

	type SaveNoteRequest struct {
		Title   string `json:"title" form:"title"`
		Body    string `json:"body" form:"body"`
		Primary bool   `json:"primary" form:"primary"`
		Sticky  bool   `json:"sticky" form:"sticky"`
		Delete  bool   `json:"delete" form:"delete"`
	}

	var req SaveNoteRequest
	if err := c.ShouldBind(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if req.Delete {
		if noteID == nil {
			apierrors.BadRequest(c, "Cannot delete an unsaved note")
			return
		}
		if err := h.noteService.DeleteNote(userID, *noteID); err != nil {
			if errors.Is(err, services.ErrNoteNotFound) {
				apierrors.NotFound(c, "Note not found")
				return
			}
			apierrors.InternalError(c, "Failed to delete note")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Note deleted successfully"})
		return
	}

	note, err := h.noteService.SaveNote(userID, services.SaveNoteInput{
		ID:      noteID,
		Title:   req.Title,
		Body:    req.Body,
		Primary: req.Primary,
		Sticky:  req.Sticky,
	})
	if err != nil {
		var fieldErrs validation.Errors
		switch {
		case errors.As(err, &fieldErrs):
			apierrors.BadRequestWithDetails(c, "Invalid note", fieldErrs)
		case errors.Is(err, services.ErrNoteNotFound):
			apierrors.NotFound(c, "Note not found")
		default:
			apierrors.InternalError(c, "Failed to save note")
		}
		return
	}

	status := http.StatusOK
	if noteID == nil {
		status = http.StatusCreated
	}
	c.JSON(status, dto.ToNoteDTO(*note))
}

// optionalNoteID parses the :id path parameter when present. A malformed ID
// responds 400 and returns ok=false.
func optionalNoteID(c *gin.Context) (*uint64, bool) {
	idStr := c.Param("id")
	if idStr == "" {
		return nil, true
	}

	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid note ID")
		return nil, false
	}
	return &id, true
}
