package services

import (
	"errors"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gorm.io/gorm"

	"github.com/florv/home-helper/internal/constants"
	"github.com/florv/home-helper/internal/models"
	"github.com/florv/home-helper/internal/repository"
)

var (
	ErrNoteNotFound = errors.New("note not found")
)

// NoteService handles note business logic. Every operation is scoped to the
// acting user; a note owned by someone else is indistinguishable from a
// missing one.
type NoteService struct {
	noteRepo repository.NoteRepository
}

// NewNoteService creates a new NoteService.
func NewNoteService(noteRepo repository.NoteRepository) *NoteService {
	return &NoteService{
		noteRepo: noteRepo,
	}
}

// SaveNoteInput represents input for creating or updating a note. A nil ID
// creates; a non-nil ID updates the existing owned note.
type SaveNoteInput struct {
	ID      *uint64
	Title   string
	Body    string
	Primary bool
	Sticky  bool
}

// Validate validates the note fields before anything touches storage.
func (in SaveNoteInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Title, validation.Required,
			validation.Length(1, constants.MaxNoteTitleLength)),
		validation.Field(&in.Body,
			validation.Length(0, constants.MaxNoteBodyLength)),
	)
}

// ListNotes returns all notes owned by the user, oldest first.
func (s *NoteService) ListNotes(userID uint64) ([]models.Note, error) {
	notes, err := s.noteRepo.ListByAuthor(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	return notes, nil
}

// PrimaryNotes returns the user's notes flagged for the dashboard.
func (s *NoteService) PrimaryNotes(userID uint64) ([]models.Note, error) {
	notes, err := s.noteRepo.ListPrimaryByAuthor(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list primary notes: %w", err)
	}
	return notes, nil
}

// GetNoteForEdit fetches an owned note for the edit form, or an empty draft
// when no ID is supplied.
func (s *NoteService) GetNoteForEdit(userID uint64, id *uint64) (*models.Note, error) {
	if id == nil {
		return &models.Note{AuthorID: userID}, nil
	}

	note, err := s.noteRepo.FindOwned(*id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, fmt.Errorf("failed to find note: %w", err)
	}

	return note, nil
}

// SaveNote validates and persists a note. Validation failures return before
// any write, so a rejected form leaves storage untouched.
func (s *NoteService) SaveNote(userID uint64, input SaveNoteInput) (*models.Note, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if input.ID == nil {
		now := time.Now()
		note := &models.Note{
			Title:     input.Title,
			Body:      input.Body,
			Primary:   input.Primary,
			Sticky:    input.Sticky,
			AuthorID:  userID,
			CreatedAt: now,
			EditedAt:  now,
		}
		if err := s.noteRepo.Create(note); err != nil {
			return nil, fmt.Errorf("failed to create note: %w", err)
		}
		return note, nil
	}

	note, err := s.noteRepo.FindOwned(*input.ID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, fmt.Errorf("failed to find note: %w", err)
	}

	note.Title = input.Title
	note.Body = input.Body
	note.Primary = input.Primary
	note.Sticky = input.Sticky
	note.EditedAt = time.Now()

	if err := s.noteRepo.Update(note); err != nil {
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	return note, nil
}

// DeleteNote permanently removes an owned note. There is no soft delete.
func (s *NoteService) DeleteNote(userID, id uint64) error {
	if err := s.noteRepo.DeleteOwned(id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNoteNotFound
		}
		return fmt.Errorf("failed to delete note: %w", err)
	}
	return nil
}

// Preview returns the sanitized, truncated preview for a note body.
func (s *NoteService) Preview(body string) string {
	return NotePreview(body, constants.NotePreviewLength)
}
