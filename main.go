package main

import (
	"context"
	"log"

	api "authkit-backend/cmd/api"
	authRepo "authkit-backend/internal/auth/repository"
	authUsecase "authkit-backend/internal/auth/usecase"
	"authkit-backend/internal/mailer"
	userUsecase "authkit-backend/internal/user/usecase"
	"authkit-backend/pkg/config"
	"authkit-backend/pkg/database"
	"authkit-backend/pkg/hash"
	"authkit-backend/pkg/token"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize document store
	db, err := database.NewMongoConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer database.Close(db)

	// Shared services
	hasher := hash.NewService(cfg.SaltRounds)
	codec := token.NewCodec()

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	tokenRepository := authRepo.NewRefreshTokenRepository(db, codec)

	// Mail events: Pub/Sub transport when a project is configured, otherwise
	// an in-process worker.
	mailHandler := mailer.NewHandler(mailer.NewUnimplementedSender(), codec, cfg)
	var mailQueue mailer.Queue
	if cfg.GoogleProjectID != "" {
		pubsubQueue, err := mailer.NewPubSubQueue(cfg.GoogleProjectID, cfg.GooglePubSubTopic, cfg.GoogleCredentials, mailHandler)
		if err != nil {
			log.Printf("[WARN] Failed to initialize Pub/Sub mail queue: %v", err)
		} else {
			go pubsubQueue.Start(context.Background())
			mailQueue = pubsubQueue
		}
	}
	if mailQueue == nil {
		worker := mailer.NewWorker(mailHandler, 64)
		worker.Start()
		mailQueue = worker
	}

	// Initialize use cases (dependency injection)
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepository, tokenRepository, hasher, codec, mailQueue, cfg)
	userUsecaseInstance := userUsecase.NewUserUsecase(userRepository, hasher)

	// Bootstrap admin account
	if cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		if err := authUsecase.EnsureAdminUser(context.Background(), userRepository, hasher, cfg.AdminEmail, cfg.AdminPassword); err != nil {
			log.Printf("[WARN] Failed to ensure admin user: %v", err)
		}
	}

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, userUsecaseInstance, codec, cfg)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
