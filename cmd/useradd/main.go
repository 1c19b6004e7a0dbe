package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/tmreyes/staffboard-api/pkg/auth"
	"github.com/tmreyes/staffboard-api/pkg/database"
	"github.com/tmreyes/staffboard-api/pkg/models"
)

// useradd provisions a manager account in the configured database. Employees
// self-register over the API; managers are created here or seeded from env.
func main() {
	// Load .env from project root
	_ = godotenv.Load("../.env")
	_ = godotenv.Load(".env")

	if len(os.Args) < 3 {
		fmt.Println("Usage: useradd <email> <password>")
		os.Exit(1)
	}

	email := strings.ToLower(strings.TrimSpace(os.Args[1]))
	password := os.Args[2]
	if email == "" || password == "" {
		fmt.Println("Error: email and password cannot be empty")
		os.Exit(1)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		fmt.Printf("Error: could not hash password: %v\n", err)
		os.Exit(1)
	}

	db := database.InitDB()
	user := models.UserAccount{
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleManager,
	}
	if err := db.Create(&user).Error; err != nil {
		fmt.Printf("Error: could not create account: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Created manager account %s\n", email)
}
