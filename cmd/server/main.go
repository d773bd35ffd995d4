package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/florv/home-helper/internal/config"
	"github.com/florv/home-helper/internal/constants"
	"github.com/florv/home-helper/internal/content"
	"github.com/florv/home-helper/internal/database"
	"github.com/florv/home-helper/internal/handlers"
	"github.com/florv/home-helper/internal/middleware"
	"github.com/florv/home-helper/internal/repository"
	"github.com/florv/home-helper/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Load static content lists. Missing files are fatal: the home page has
	// no fallback content.
	library, err := content.Load(cfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to load static content: %v", err)
	}

	// Initialize Gin router
	r := gin.Default()

	// Setup cookie-backed session middleware
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Initialize repositories and services
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	noteRepo := repository.NewNoteRepository(db)
	historyRepo := repository.NewSearchHistoryRepository(db)

	authService := services.NewAuthService(userRepo)
	noteService := services.NewNoteService(noteRepo)
	searchService := services.NewSearchService(historyRepo, noteRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	noteHandler := handlers.NewNoteHandler(noteService)
	searchHandler := handlers.NewSearchHandler(searchService, noteService)
	homeHandler := handlers.NewHomeHandler(authService, noteService, library)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Home Helper is running",
		})
	})

	// Auth routes (public)
	r.GET("/login", authHandler.LoginPage)
	r.POST("/login", authHandler.Login)

	// Protected routes
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

	// Start server
	log.Printf("Server starting on %s", cfg.Address())
	if err := r.Run(cfg.Address()); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
