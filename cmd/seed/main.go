// seed inserts a confirmed and an unconfirmed dev account into the local
// database. Run: go run ./cmd/seed
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/channelry/accounts/internal/domain"
	"github.com/channelry/accounts/internal/infrastructure/postgres"
	"github.com/channelry/accounts/internal/password"
)

const seedPassword = "password123"

type accountSpec struct {
	email     string
	fullname  string
	confirmed bool
}

var accounts = []accountSpec{
	{"confirmed@test.local", "Connie Firmed", true},
	{"unconfirmed@test.local", "Pen Ding", false},
}

func main() {
	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set — run: direnv allow")
	}

	if err := postgres.RunMigrations(ctx, dbURL); err != nil {
		log.Fatalf("migrations: %v", err)
	}

	pool, err := postgres.NewPool(ctx, dbURL)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer pool.Close()

	repo := postgres.NewUserRepository(pool)

	hash, err := password.Hash(seedPassword)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	var inserted, skipped int
	for _, spec := range accounts {
		_, err := repo.Create(ctx, &domain.User{
			Email:        spec.email,
			Fullname:     spec.fullname,
			PasswordHash: hash,
		})
		if errors.Is(err, domain.ErrEmailTaken) {
			// Idempotent re-runs: the account is already there.
			skipped++
			continue
		}
		if err != nil {
			log.Fatalf("insert account %s: %v", spec.email, err)
		}
		if spec.confirmed {
			if err := repo.Confirm(ctx, spec.email); err != nil {
				log.Fatalf("confirm account %s: %v", spec.email, err)
			}
		}
		inserted++
	}

	fmt.Println("Seed complete")
	fmt.Println()
	fmt.Printf("  Accounts created: %d  (skipped %d already existing)\n", inserted, skipped)
	fmt.Printf("  Password:         %s\n", seedPassword)
	fmt.Println()
	for _, spec := range accounts {
		state := "unconfirmed"
		if spec.confirmed {
			state = "confirmed"
		}
		fmt.Printf("  %-24s %s\n", spec.email, state)
	}
}
