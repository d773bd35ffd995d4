package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/florv/home-helper/internal/constants"
	"github.com/florv/home-helper/internal/content"
	"github.com/florv/home-helper/internal/database"
	"github.com/florv/home-helper/internal/middleware"
	"github.com/florv/home-helper/internal/models"
	"github.com/florv/home-helper/internal/repository"
	"github.com/florv/home-helper/internal/services"
)

type handlerTestEnv struct {
	db            *gorm.DB
	router        *gin.Engine
	authService   *services.AuthService
	noteService   *services.NoteService
	searchService *services.SearchService
}

// setupHandlerTestEnv wires the full route table against an in-memory
// database, matching the server's own wiring.
func setupHandlerTestEnv(t *testing.T) handlerTestEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Note{},
		&models.SearchHistory{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	userRepo := repository.NewUserRepository(db)
	noteRepo := repository.NewNoteRepository(db)
	historyRepo := repository.NewSearchHistoryRepository(db)

	authService := services.NewAuthService(userRepo)
	noteService := services.NewNoteService(noteRepo)
	searchService := services.NewSearchService(historyRepo, noteRepo)

	library := &content.Library{
		Backgrounds: []string{"forest.jpg"},
		WatchList:   []string{"The Expanse"},
		Sounds:      []string{"rain"},
		Notes:       []string{"remember the plants"},
	}

	authHandler := NewAuthHandler(authService)
	noteHandler := NewNoteHandler(noteService)
	searchHandler := NewSearchHandler(searchService, noteService)
	homeHandler := NewHomeHandler(authService, noteService, library)

	r := gin.New()
	store := cookie.NewStore([]byte("secret"))
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	r.GET("/login", authHandler.LoginPage)
	r.POST("/login", authHandler.Login)

	authed := r.Group("/")
	authed.Use(middleware.RequireAuth())
	{
		authed.GET("", homeHandler.Dashboard)
		authed.POST("", homeHandler.SetRefreshInterval)
		authed.GET("/logout", authHandler.Logout)

		authed.GET("/notes", noteHandler.ListNotes)
		authed.GET("/notes/edit", noteHandler.EditNote)
		authed.GET("/notes/edit/:id", noteHandler.EditNote)
		authed.POST("/notes/edit", noteHandler.SaveNote)
		authed.POST("/notes/edit/:id", noteHandler.SaveNote)

		authed.POST("/search", searchHandler.Dispatch)
		authed.GET("/search/results", searchHandler.Results)
		authed.GET("/search/history", searchHandler.History)
	}

	return handlerTestEnv{
		db:            db,
		router:        r,
		authService:   authService,
		noteService:   noteService,
		searchService: searchService,
	}
}

func createUser(t *testing.T, env handlerTestEnv, username, password string) *models.User {
	t.Helper()

	user, err := env.authService.CreateUser(services.CreateUserInput{
		Username:  username,
		Password:  password,
		Email:     username + "@example.com",
		FirstName: "Test",
		LastName:  "User",
	})
	require.NoError(t, err)
	return user
}

// login performs a credential POST and returns the session cookies.
func login(t *testing.T, env handlerTestEnv, username, password string) []*http.Cookie {
	t.Helper()

	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()

	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusFound, w.Code)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies, "expected session cookie to be set")
	return cookies
}

// do issues a request through the router with the given session cookies.
func do(env handlerTestEnv, method, target, body string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}
