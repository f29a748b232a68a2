package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/lib/pq"

	"github.com/cryptofolio/cryptofolio/domain/entity"
	"github.com/cryptofolio/cryptofolio/infrastructure/config"
	"github.com/cryptofolio/cryptofolio/infrastructure/persistence/postgres"
	"github.com/cryptofolio/cryptofolio/infrastructure/service/password"
)

// Usage: create_admin [email] [username] [password]
func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("failed to ping database: %v", err)
	}

	email := "admin@cryptofolio.local"
	username := "admin"
	adminPassword := "change-me-now"

	if len(os.Args) > 1 {
		email = os.Args[1]
	}
	if len(os.Args) > 2 {
		username = os.Args[2]
	}
	if len(os.Args) > 3 {
		adminPassword = os.Args[3]
	}

	passwordService := password.NewBcryptPasswordService(cfg.BcryptCost, cfg.HashWorkers)
	hashed, err := passwordService.Hash(ctx, adminPassword)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	admin := entity.NewUser(email, username, "Administrator", hashed)
	admin.Role = entity.RoleAdmin
	admin.IsVerified = true

	userRepo := postgres.NewUserRepository(db)
	if err := userRepo.Create(ctx, admin); err != nil {
		log.Fatalf("failed to create admin user: %v", err)
	}

	fmt.Printf("admin user created: id=%d email=%s\n", admin.ID, admin.Email)
}
