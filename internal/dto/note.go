package dto

import (
	"time"

	"github.com/florv/home-helper/internal/models"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID        uint64 `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// NoteDTO represents a full note in API responses
type NoteDTO struct {
	ID        uint64    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Primary   bool      `json:"primary"`
	Sticky    bool      `json:"sticky"`
	CreatedAt time.Time `json:"created_at"`
	EditedAt  time.Time `json:"edited_at"`
}

// NoteListItemDTO represents a note in list responses: metadata plus a
// sanitized, truncated body preview instead of the full body.
type NoteListItemDTO struct {
	ID        uint64    `json:"id"`
	Title     string    `json:"title"`
	Preview   string    `json:"preview"`
	Primary   bool      `json:"primary"`
	Sticky    bool      `json:"sticky"`
	CreatedAt time.Time `json:"created_at"`
	EditedAt  time.Time `json:"edited_at"`
}

// SearchHistoryDTO represents one search history row in API responses
type SearchHistoryDTO struct {
	ID            uint64            `json:"id"`
	SearchType    models.SearchType `json:"search_type"`
	SearchValue   string            `json:"search_value"`
	TimesSearched int64             `json:"times_searched"`
}

// Conversion functions

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
}

// ToNoteDTO converts a Note model to NoteDTO
func ToNoteDTO(note models.Note) NoteDTO {
	return NoteDTO{
		ID:        note.ID,
		Title:     note.Title,
		Body:      note.Body,
		Primary:   note.Primary,
		Sticky:    note.Sticky,
		CreatedAt: note.CreatedAt,
		EditedAt:  note.EditedAt,
	}
}

// ToNoteListItemDTO converts a Note model to NoteListItemDTO
func ToNoteListItemDTO(note models.Note, preview string) NoteListItemDTO {
	return NoteListItemDTO{
		ID:        note.ID,
		Title:     note.Title,
		Preview:   preview,
		Primary:   note.Primary,
		Sticky:    note.Sticky,
		CreatedAt: note.CreatedAt,
		EditedAt:  note.EditedAt,
	}
}

// ToSearchHistoryDTO converts a SearchHistory model to SearchHistoryDTO
func ToSearchHistoryDTO(entry models.SearchHistory) SearchHistoryDTO {
	return SearchHistoryDTO{
		ID:            entry.ID,
		SearchType:    entry.SearchType,
		SearchValue:   entry.SearchValue,
		TimesSearched: entry.TimesSearched,
	}
}
