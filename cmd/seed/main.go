// Command seed creates a user account. Registration is not exposed as a
// route, so accounts are provisioned with this tool against the same
// database file the server uses.
package main

import (
	"flag"
	"log"

	"github.com/florv/home-helper/internal/config"
	"github.com/florv/home-helper/internal/database"
	"github.com/florv/home-helper/internal/repository"
	"github.com/florv/home-helper/internal/services"
)

func main() {
	username := flag.String("username", "", "username (4-16 characters)")
	password := flag.String("password", "", "password (4-32 characters)")
	email := flag.String("email", "", "email address")
	firstName := flag.String("first-name", "", "first name")
	lastName := flag.String("last-name", "", "last name")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	authService := services.NewAuthService(repository.NewUserRepository(database.GetDB()))

	user, err := authService.CreateUser(services.CreateUserInput{
		Username:  *username,
		Password:  *password,
		Email:     *email,
		FirstName: *firstName,
		LastName:  *lastName,
	})
	if err != nil {
		log.Fatalf("Failed to create user: %v", err)
	}

	log.Printf("Created user %q (id %d)", user.Username, user.ID)
}
