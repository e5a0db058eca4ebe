package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"s2dio.backend/internal/config"
	"s2dio.backend/internal/infrastructure/giphy"
	"s2dio.backend/internal/infrastructure/models"
	"s2dio.backend/internal/infrastructure/repositories"
	"s2dio.backend/internal/infrastructure/seed"
	"s2dio.backend/internal/interfaces/http/handlers"
	"s2dio.backend/internal/interfaces/http/middleware"
	"s2dio.backend/internal/usecases"
	"s2dio.backend/pkg/jwt"
	"s2dio.backend/pkg/logger"
	"s2dio.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	newSessionStore = redis.NewSessionStore
	runServer       = func(srv *http.Server) error { return srv.ListenAndServe() }
	getStdDB        = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.PASSWORD); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
		if err := db.AutoMigrate(
			&models.User{},
			&models.Section{},
			&models.Project{},
			&models.Service{},
			&models.TeamMember{},
		); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	sectionRepo := repositories.NewSectionRepository(db)
	projectRepo := repositories.NewProjectRepository(db)
	serviceRepo := repositories.NewServiceRepository(db)
	teamRepo := repositories.NewTeamMemberRepository(db)

	// Initialize Session Store
	sessionStore, err := newSessionStore(cfg.Security.SessionEncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}

	// Initialize external GIF provider
	giphyClient := giphy.NewClient(cfg.Giphy.APIKey, cfg.Giphy.BaseURL, cfg.Giphy.Timeout)

	// Seed initial content
	if cfg.Seed.Enabled {
		seeder := seed.NewSeeder(userRepo, sectionRepo, projectRepo, serviceRepo, teamRepo)
		if err := seeder.Run(context.Background(), &cfg.Seed); err != nil {
			logger.Warn(context.Background(), "Database seed failed", zap.Error(err))
		}
	}

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, jwtService)
	gifUsecase := usecases.NewGifUsecase(giphyClient)
	pageUsecase := usecases.NewPageUsecase(sectionRepo, projectRepo, serviceRepo, teamRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase, sessionStore, cfg.JWT.RefreshExpiry)
	sectionHandler := handlers.NewSectionHandler(sectionRepo)
	projectHandler := handlers.NewProjectHandler(projectRepo)
	serviceHandler := handlers.NewServiceHandler(serviceRepo)
	teamHandler := handlers.NewTeamHandler(teamRepo)
	gifHandler := handlers.NewGifHandler(gifUsecase)
	pageHandler := handlers.NewPageHandler(pageUsecase)

	// Create session auth middleware
	sessionAuthMiddleware := middleware.SessionAuthMiddleware(jwtService, sessionStore)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:           authHandler,
		sectionHandler:        sectionHandler,
		projectHandler:        projectHandler,
		serviceHandler:        serviceHandler,
		teamHandler:           teamHandler,
		gifHandler:            gifHandler,
		pageHandler:           pageHandler,
		sessionAuthMiddleware: sessionAuthMiddleware,
	})

	// Print all registered routes for debugging
	log.Println("📋 Registered Routes:")
	for _, route := range r.Routes() {
		log.Printf("   %s %s", route.Method, route.Path)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error(context.Background(), "Server shutdown failed", zap.Error(err))
		}
	}()

	// Start server
	log.Printf("🚀 S2dio Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(srv); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
