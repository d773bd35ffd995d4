package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/florv/home-helper/internal/models"
)

func TestNoteRepository_FindOwned_ScopesByAuthor(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewNoteRepository(db)
	alice := seedAuthor(t, db, "alice")
	bob := seedAuthor(t, db, "bobby")

	note := models.Note{Title: "Mine", Body: "secret", AuthorID: alice.ID}
	require.NoError(t, repo.Create(&note))

	found, err := repo.FindOwned(note.ID, alice.ID)
	require.NoError(t, err)
	require.Equal(t, "Mine", found.Title)

	_, err = repo.FindOwned(note.ID, bob.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestNoteRepository_DeleteOwned(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewNoteRepository(db)
	alice := seedAuthor(t, db, "alice")
	bob := seedAuthor(t, db, "bobby")

	note := models.Note{Title: "Doomed", AuthorID: alice.ID}
	require.NoError(t, repo.Create(&note))

	// A non-owner delete is a not-found, and leaves the row in place.
	require.ErrorIs(t, repo.DeleteOwned(note.ID, bob.ID), gorm.ErrRecordNotFound)

	var count int64
	require.NoError(t, db.Model(&models.Note{}).Count(&count).Error)
	require.Equal(t, int64(1), count)

	require.NoError(t, repo.DeleteOwned(note.ID, alice.ID))
	require.ErrorIs(t, repo.DeleteOwned(note.ID, alice.ID), gorm.ErrRecordNotFound)
}

func TestNoteRepository_ListPrimaryByAuthor(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewNoteRepository(db)
	alice := seedAuthor(t, db, "alice")

	require.NoError(t, repo.Create(&models.Note{Title: "plain", AuthorID: alice.ID}))
	require.NoError(t, repo.Create(&models.Note{Title: "starred", Primary: true, AuthorID: alice.ID}))

	primary, err := repo.ListPrimaryByAuthor(alice.ID)
	require.NoError(t, err)
	require.Len(t, primary, 1)
	require.Equal(t, "starred", primary[0].Title)
}

func TestNoteRepository_SearchByAuthor(t *testing.T) {
	db := setupRepoTestDB(t)
	repo := NewNoteRepository(db)
	alice := seedAuthor(t, db, "alice")

	require.NoError(t, repo.Create(&models.Note{Title: "Groceries", Body: "milk, eggs", AuthorID: alice.ID}))
	require.NoError(t, repo.Create(&models.Note{Title: "milk run", Body: "tomorrow", AuthorID: alice.ID}))
	require.NoError(t, repo.Create(&models.Note{Title: "Nope", Body: "nothing", AuthorID: alice.ID}))

	matches, err := repo.SearchByAuthor(alice.ID, "milk")
	require.NoError(t, err)
	require.Len(t, matches, 2)
}
