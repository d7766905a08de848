package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	_ "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/portfoliosite/backend/docs"
	"github.com/portfoliosite/backend/internal/auth"
	"github.com/portfoliosite/backend/internal/config"
	"github.com/portfoliosite/backend/internal/handlers"
	"github.com/portfoliosite/backend/internal/logger"
	"github.com/portfoliosite/backend/internal/middlewares"
	"github.com/portfoliosite/backend/internal/repositories"
	"github.com/portfoliosite/backend/internal/services"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// @title Portfolio API
// @version 1.0
// @description REST API for the personal portfolio site: authentication plus contact, project, service and qualification resources.

// @license.name MIT

// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token. Browsers send the token cookie instead.
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting portfolio backend")

	// Connect to database
	db, err := connectDB(cfg.DSN())
	if err != nil {
		logger.Logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Run migrations (schema plus default portfolio content)
	if err := runMigrations(db); err != nil {
		logger.Logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize session token issuer. An empty JWT secret is already
	// rejected by config.Load, so this only fails on a bad expiry.
	tokenIssuer, err := auth.NewTokenIssuer(cfg.JWT.Secret, cfg.JWT.TokenExpiry)
	if err != nil {
		logger.Logger.Fatal("Failed to initialize token issuer", zap.Error(err))
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db, logger.Logger)
	contactRepo := repositories.NewContactRepository(db, logger.Logger)
	projectRepo := repositories.NewProjectRepository(db, logger.Logger)
	serviceRepo := repositories.NewServiceRepository(db, logger.Logger)
	qualificationRepo := repositories.NewQualificationRepository(db, logger.Logger)

	// Initialize services
	authService := services.NewAuthService(userRepo, tokenIssuer, logger.Logger)
	userService := services.NewUserService(userRepo, logger.Logger)
	contactService := services.NewContactService(contactRepo, logger.Logger)
	projectService := services.NewProjectService(projectRepo, logger.Logger)
	serviceService := services.NewServiceService(serviceRepo, logger.Logger)
	qualificationService := services.NewQualificationService(qualificationRepo, logger.Logger)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, cfg.JWT.TokenExpiry, cfg.Server.CookieSecure, logger.Logger)
	userHandler := handlers.NewUserHandler(userService, logger.Logger)
	contactHandler := handlers.NewContactHandler(contactService, logger.Logger)
	projectHandler := handlers.NewProjectHandler(projectService, logger.Logger)
	serviceHandler := handlers.NewServiceHandler(serviceService, logger.Logger)
	qualificationHandler := handlers.NewQualificationHandler(qualificationService, logger.Logger)

	// Auth middleware pair: VerifyToken populates the claims context,
	// RequireAdmin gates on the role claim it left there.
	verifyToken := auth.VerifyToken(tokenIssuer)
	requireAdmin := auth.RequireAdmin

	// Setup router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(middlewares.RequestIDMiddleware)
	r.Use(middlewares.LoggerMiddleware(logger.Logger))
	r.Use(middlewares.RecoveryMiddleware(logger.Logger))
	r.Use(middlewares.CORSMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(httprate.LimitByIP(100, time.Minute))
	r.Use(middlewares.RequestSizeLimitMiddleware(1 * 1024 * 1024)) // 1MB

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port)),
	))

	// Auth routes live at /auth, content resources under /api
	authHandler.RegisterRoutes(r, verifyToken)
	r.Route("/api", func(r chi.Router) {
		contactHandler.RegisterRoutes(r, verifyToken, requireAdmin)
		projectHandler.RegisterRoutes(r, verifyToken, requireAdmin)
		serviceHandler.RegisterRoutes(r, verifyToken, requireAdmin)
		qualificationHandler.RegisterRoutes(r, verifyToken, requireAdmin)
		userHandler.RegisterRoutes(r, verifyToken, requireAdmin)
	})

	// Start server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Logger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
}

// connectDB connects to the database
func connectDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB) error {
	driver, err := mysql.WithInstance(db, &mysql.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	// Resolve the migrations folder relative to the working directory
	migrationPath := "file://migrations"
	if _, err := os.Stat("migrations"); os.IsNotExist(err) {
		if _, err := os.Stat("../migrations"); err == nil {
			migrationPath = "file://../migrations"
		}
	}

	m, err := migrate.NewWithDatabaseInstance(
		migrationPath,
		"mysql",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
