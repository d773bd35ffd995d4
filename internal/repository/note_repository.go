package repository

import (
	"github.com/florv/home-helper/internal/models"
	"gorm.io/gorm"
)

// GormNoteRepository is a GORM implementation of NoteRepository
type GormNoteRepository struct {
	db *gorm.DB
}

// NewNoteRepository creates a new NoteRepository
func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &GormNoteRepository{db: db}
}

// Create creates a new note
func (r *GormNoteRepository) Create(note *models.Note) error {
	return r.db.Create(note).Error
}

// FindOwned finds a note by ID, scoped to its author
func (r *GormNoteRepository) FindOwned(id, authorID uint64) (*models.Note, error) {
	var note models.Note
	if err := r.db.Where("id = ? AND author_id = ?", id, authorID).First(&note).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

// ListByAuthor returns all notes for an author ordered by creation time
func (r *GormNoteRepository) ListByAuthor(authorID uint64) ([]models.Note, error) {
	var notes []models.Note
	if err := r.db.
		Where("author_id = ?", authorID).
		Order("created_at ASC").
		Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

// ListPrimaryByAuthor returns the author's notes flagged for the dashboard
func (r *GormNoteRepository) ListPrimaryByAuthor(authorID uint64) ([]models.Note, error) {
	var notes []models.Note
	if err := r.db.
		Where(`author_id = ? AND "primary" = ?`, authorID, true).
		Order("created_at ASC").
		Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

// Update persists changes to an existing note
func (r *GormNoteRepository) Update(note *models.Note) error {
	return r.db.Save(note).Error
}

// DeleteOwned removes a note by ID, scoped to its author
func (r *GormNoteRepository) DeleteOwned(id, authorID uint64) error {
	result := r.db.Where("id = ? AND author_id = ?", id, authorID).Delete(&models.Note{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SearchByAuthor returns the author's notes matching the query as a substring
// of the title or body. Case sensitivity follows the store's collation.
func (r *GormNoteRepository) SearchByAuthor(authorID uint64, query string) ([]models.Note, error) {
	var notes []models.Note
	pattern := "%" + query + "%"
	if err := r.db.
		Where("author_id = ? AND (title LIKE ? OR body LIKE ?)", authorID, pattern, pattern).
		Order("created_at ASC").
		Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}
