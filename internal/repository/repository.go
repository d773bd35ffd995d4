package repository

import (
	"github.com/florv/home-helper/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)
}

// NoteRepository defines the interface for note data access.
// Every lookup that takes an authorID is scoped to that author: a note that
// exists but belongs to someone else behaves as if it does not exist.
type NoteRepository interface {
	// Create creates a new note
	Create(note *models.Note) error

	// FindOwned finds a note by ID, scoped to its author
	FindOwned(id, authorID uint64) (*models.Note, error)

	// ListByAuthor returns all notes for an author ordered by creation time
	ListByAuthor(authorID uint64) ([]models.Note, error)

	// ListPrimaryByAuthor returns the author's notes flagged for the dashboard
	ListPrimaryByAuthor(authorID uint64) ([]models.Note, error)

	// Update persists changes to an existing note
	Update(note *models.Note) error

	// DeleteOwned removes a note by ID, scoped to its author. Returns
	// gorm.ErrRecordNotFound when no owned row matched.
	DeleteOwned(id, authorID uint64) error

	// SearchByAuthor returns the author's notes whose title or body contain
	// the query as a substring
	SearchByAuthor(authorID uint64, query string) ([]models.Note, error)
}

// SearchHistoryRepository defines the interface for search history data access
type SearchHistoryRepository interface {
	// Record increments the counter for (author, type, value), inserting the
	// row with a count of 1 on first sight. The increment is pushed into the
	// store's conflict clause so concurrent duplicates cannot fork rows.
	Record(authorID uint64, searchType models.SearchType, value string) error

	// ListByAuthor returns the author's history ordered by times searched
	ListByAuthor(authorID uint64) ([]models.SearchHistory, error)
}
