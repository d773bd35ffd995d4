package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/florv/home-helper/internal/dto"
	apierrors "github.com/florv/home-helper/internal/errors"
	"github.com/florv/home-helper/internal/middleware"
	"github.com/florv/home-helper/internal/models"
	"github.com/florv/home-helper/internal/services"
)

// SearchHandler coordinates search dispatch, results, and history handlers.
type SearchHandler struct {
	searchService *services.SearchService
	noteService   *services.NoteService
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(searchService *services.SearchService, noteService *services.NoteService) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
		noteService:   noteService,
	}
}

// Dispatch records the search and redirects to its target: the internal
// results page for self-site searches, the external engine URL otherwise.
func (h *SearchHandler) Dispatch(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type SearchRequest struct {
		SearchType  string `json:"search_type" form:"search_type" binding:"required"`
		SearchValue string `json:"search_value" form:"search_value" binding:"required"`
	}

	var req SearchRequest
	if err := c.ShouldBind(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	target, err := h.searchService.Dispatch(userID, models.SearchType(req.SearchType), req.SearchValue)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnknownSearchType):
			apierrors.BadRequest(c, "Unknown search type")
		case errors.Is(err, services.ErrEmptyQuery):
			apierrors.BadRequest(c, "Search query is required")
		default:
			apierrors.InternalError(c, "Failed to dispatch search")
		}
		return
	}

	c.Redirect(http.StatusFound, target)
}

// Results returns the current user's notes matching the query.
func (h *SearchHandler) Results(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	query := c.Query("query")
	if query == "" {
		apierrors.BadRequest(c, "Search query is required")
		return
	}

	notes, err := h.searchService.SelfSearch(userID, query)
	if err != nil {
		apierrors.InternalError(c, "Failed to search notes")
		return
	}

	items := make([]dto.NoteListItemDTO, len(notes))
	for i, note := range notes {
		items[i] = dto.ToNoteListItemDTO(note, h.noteService.Preview(note.Body))
	}

	c.JSON(http.StatusOK, gin.H{
		"query":   query,
		"results": items,
	})
}

// History returns the current user's search history.
func (h *SearchHandler) History(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	entries, err := h.searchService.History(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch search history")
		return
	}

	items := make([]dto.SearchHistoryDTO, len(entries))
	for i, entry := range entries {
		items[i] = dto.ToSearchHistoryDTO(entry)
	}

	c.JSON(http.StatusOK, gin.H{"history": items})
}
