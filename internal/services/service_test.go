package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/florv/home-helper/internal/models"
	"github.com/florv/home-helper/internal/repository"
)

type serviceTestEnv struct {
	db            *gorm.DB
	authService   *AuthService
	noteService   *NoteService
	searchService *SearchService
}

func setupServiceTestEnv(t *testing.T) serviceTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Note{},
		&models.SearchHistory{},
	)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	userRepo := repository.NewUserRepository(db)
	noteRepo := repository.NewNoteRepository(db)
	historyRepo := repository.NewSearchHistoryRepository(db)

	return serviceTestEnv{
		db:            db,
		authService:   NewAuthService(userRepo),
		noteService:   NewNoteService(noteRepo),
		searchService: NewSearchService(historyRepo, noteRepo),
	}
}

func createTestUser(t *testing.T, env serviceTestEnv, username, password string) *models.User {
	t.Helper()

	user, err := env.authService.CreateUser(CreateUserInput{
		Username:  username,
		Password:  password,
		Email:     username + "@example.com",
		FirstName: "Test",
		LastName:  "User",
	})
	require.NoError(t, err)
	return user
}
