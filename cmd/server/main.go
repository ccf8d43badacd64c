package main

import (
	"fmt"
	"os"

	"github.com/bookvault/bookvault/internal/api"
	"github.com/bookvault/bookvault/internal/config"
	"github.com/bookvault/bookvault/internal/database"
	"github.com/bookvault/bookvault/internal/database/repository"
	"github.com/bookvault/bookvault/internal/database/service"
	"github.com/bookvault/bookvault/internal/handler"
	"github.com/bookvault/bookvault/internal/logger"
	"github.com/bookvault/bookvault/internal/middleware"
	"github.com/bookvault/bookvault/internal/storage"
)

func main() {
	// 1. Config
	cfg := config.LoadConfig()

	// 2. Logger
	appLogger := logger.New(cfg)

	appLogger.Info("🚀 Starting Bookvault...",
		"environment", cfg.AppEnv,
		"port", cfg.Port,
	)

	// 3. Connect to Database
	db, err := database.Connect(cfg, appLogger)
	if err != nil {
		appLogger.Error("❌ Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close(db)

	// 4. Initialize Repositories
	userRepo := repository.NewUserRepository(db)
	bookRepo := repository.NewBookRepository(db)

	// 5. Initialize the image relay
	objectStore, err := storage.NewMinioStore(cfg, appLogger)
	if err != nil {
		appLogger.Error("❌ Failed to connect to object storage", "error", err)
		os.Exit(1)
	}
	uploader := storage.NewImageUploader(objectStore, cfg.UploadFolder)

	// 6. Initialize Services
	authService := service.NewAuthService(userRepo, cfg, appLogger)
	bookService := service.NewBookService(bookRepo, uploader, appLogger)

	// 7. Initialize Handlers & Middleware
	authHandler := handler.NewAuthHandler(authService, appLogger)
	bookHandler := handler.NewBookHandler(bookService, cfg, appLogger)
	authMiddleware := middleware.NewAuthMiddleware(authService, appLogger)

	// 8. Initialize Rate Limiter
	var rateLimiter middleware.RateLimiter
	redisClient, err := database.NewRedisClient(cfg, appLogger)
	if err != nil {
		appLogger.Warn("⚠️ Failed to connect to Redis, using no-op rate limiter", "error", err)
		rateLimiter = middleware.NewNoOpRateLimiter(appLogger)
	} else {
		rateLimiter = middleware.NewRateLimiter(redisClient, cfg, appLogger)
	}
	defer rateLimiter.Close()

	// 9. Setup Router
	r := api.SetupRouter(authHandler, bookHandler, authMiddleware, rateLimiter, cfg, appLogger)

	// 10. Start HTTP Server
	addr := fmt.Sprintf(":%s", cfg.Port)
	appLogger.Info("🌍 HTTP Server running...", "addr", addr)
	if err := r.Run(addr); err != nil {
		appLogger.Error("❌ HTTP Server failed to start", "error", err)
		os.Exit(1)
	}
}
