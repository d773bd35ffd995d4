package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/florv/home-helper/internal/constants"
	"github.com/florv/home-helper/internal/content"
	"github.com/florv/home-helper/internal/dto"
	apierrors "github.com/florv/home-helper/internal/errors"
	"github.com/florv/home-helper/internal/middleware"
	"github.com/florv/home-helper/internal/services"
)

// HomeHandler serves the dashboard: primary notes, the curated static lists,
// and the per-session auto-refresh interval.
type HomeHandler struct {
	authService *services.AuthService
	noteService *services.NoteService
	library     *content.Library
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(authService *services.AuthService, noteService *services.NoteService, library *content.Library) *HomeHandler {
	return &HomeHandler{
		authService: authService,
		noteService: noteService,
		library:     library,
	}
}

// Dashboard composes the home page payload for the current user. A session
// whose user no longer exists is a not-found, matching the user loader.
func (h *HomeHandler) Dashboard(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	user, err := h.authService.GetUser(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			apierrors.NotFound(c, "User not found")
			return
		}
		apierrors.InternalError(c, "Failed to load user")
		return
	}

	notes, err := h.noteService.PrimaryNotes(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch primary notes")
		return
	}

	items := make([]dto.NoteListItemDTO, len(notes))
	for i, note := range notes {
		items[i] = dto.ToNoteListItemDTO(note, h.noteService.Preview(note.Body))
	}

	c.JSON(http.StatusOK, gin.H{
		"user":             dto.ToUserDTO(*user),
		"primary_notes":    items,
		"library":          h.library,
		"refresh_interval": refreshInterval(c),
	})
}

// SetRefreshInterval stores the dashboard auto-refresh interval in the
// session. Zero disables; anything else must fall within the allowed range.
func (h *HomeHandler) SetRefreshInterval(c *gin.Context) {
	type RefreshRequest struct {
		RefreshInterval int `json:"refresh_interval" form:"refresh_interval"`
	}

	var req RefreshRequest
	if err := c.ShouldBind(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if req.RefreshInterval != 0 &&
		(req.RefreshInterval < constants.MinRefreshInterval || req.RefreshInterval > constants.MaxRefreshInterval) {
		apierrors.BadRequest(c, "Refresh interval must be 0 or between 9 and 180 seconds")
		return
	}

	session := sessions.Default(c)
	session.Set(constants.SessionKeyRefresh, req.RefreshInterval)
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "Failed to save session")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":          "Refresh interval updated",
		"refresh_interval": req.RefreshInterval,
	})
}

// refreshInterval reads the session's interval, defaulting to disabled.
func refreshInterval(c *gin.Context) int {
	session := sessions.Default(c)
	value := session.Get(constants.SessionKeyRefresh)
	if value == nil {
		return 0
	}
	if interval, ok := value.(int); ok {
		return interval
	}
	return 0
}
