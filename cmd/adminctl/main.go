// adminctl provisions or resets the admin account out of band. Sign-up never
// grants admin to a caller who is not already admin, so the first admin has
// to come from here.
package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/portfoliosite/backend/internal/config"
	"github.com/portfoliosite/backend/internal/logger"
	"github.com/portfoliosite/backend/internal/models"
	"github.com/portfoliosite/backend/internal/repositories"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

func main() {
	username := flag.String("username", "admin", "admin username")
	email := flag.String("email", "", "admin email (required)")
	password := flag.String("password", "", "admin password (required)")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("both -email and -password are required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	db, err := sql.Open("mysql", cfg.DSN())
	if err != nil {
		logger.Logger.Fatal("Failed to open database", zap.Error(err))
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Logger.Fatal("Failed to ping database", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := provisionAdmin(ctx, db, *username, *email, *password); err != nil {
		logger.Logger.Fatal("Failed to provision admin", zap.Error(err))
	}

	fmt.Printf("admin account %q is ready\n", *username)
}

// provisionAdmin creates the admin user, or resets its password and role if
// the username is already taken.
func provisionAdmin(ctx context.Context, db *sql.DB, username, email, password string) error {
	userRepo := repositories.NewUserRepository(db, logger.Logger)

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	existing, err := userRepo.GetByUsernameOrEmail(ctx, username)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return err
	}

	if existing != nil {
		if err := userRepo.UpdatePassword(ctx, existing.ID, string(passwordHash)); err != nil {
			return err
		}
		if existing.Role != models.RoleAdmin {
			existing.Role = models.RoleAdmin
			if err := userRepo.Update(ctx, existing); err != nil {
				return err
			}
		}
		logger.Logger.Info("reset existing admin credentials", zap.Int("user_id", existing.ID))
		return nil
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		Name:         username,
		PasswordHash: string(passwordHash),
		Role:         models.RoleAdmin,
	}
	if err := userRepo.Create(ctx, user); err != nil {
		return err
	}

	logger.Logger.Info("created admin account", zap.Int("user_id", user.ID))
	return nil
}
