//go:build ignore

// Creates (or reuses) a local admin account and prints a bearer token for it.
//
//	go run scripts/gen_test_token.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"codeberg.org/bookhub/server/bookhub/users"
	"codeberg.org/bookhub/server/internal/auth"
	"codeberg.org/bookhub/server/internal/config"
	"codeberg.org/bookhub/server/internal/storage"
	"github.com/google/uuid"
)

const testEmail = "admin@bookhub.test"

func main() {
	cfg, err := config.LoadEnvironmentVariables()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	store, err := storage.NewClient(ctx, cfg.MongoURI, cfg.DBName)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer store.Close(ctx) //nolint:errcheck // script exit

	userRepo := users.NewRepository(store.Database())

	user, err := userRepo.FindByEmail(ctx, testEmail)
	switch {
	case errors.Is(err, users.ErrNotFound):
		password := uuid.NewString()

		hashed, err := auth.NewPasswordHasher(cfg.BcryptCost).Hash(password)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}

		user = &users.User{Name: "Test Admin", Email: testEmail, Password: hashed, Role: auth.RoleAdmin}
		if _, err := userRepo.Create(ctx, user); err != nil {
			log.Fatalf("Failed to create test user: %v", err)
		}

		fmt.Printf("Created test admin: %s (ID: %s, password: %s)\n", testEmail, user.IDHex(), password)
	case err != nil:
		log.Fatalf("Failed to look up test user: %v", err)
	default:
		fmt.Printf("Using existing test user (ID: %s, role: %s)\n", user.IDHex(), user.Role)
	}

	tokens, err := auth.NewTokenService(cfg.JWTSecret)
	if err != nil {
		log.Fatalf("Failed to create token service: %v", err)
	}

	token, err := tokens.Issue(user.IDHex(), user.Email, user.Role)
	if err != nil {
		log.Fatalf("Failed to generate JWT: %v", err)
	}

	fmt.Printf("\nTest JWT Token (valid for %s):\n%s\n\n", auth.TokenLifetime, token)
	fmt.Printf("Export this token for testing:\nexport TEST_TOKEN=\"%s\"\n", token)
}
