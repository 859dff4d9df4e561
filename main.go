package main

import (
	"log"

	api "todolist-api/cmd/api"
	authdomain "todolist-api/internal/auth/domain"
	authRepo "todolist-api/internal/auth/repository"
	authScheduler "todolist-api/internal/auth/scheduler"
	authUsecase "todolist-api/internal/auth/usecase"
	taskdomain "todolist-api/internal/task/domain"
	taskRepo "todolist-api/internal/task/repository"
	taskUsecase "todolist-api/internal/task/usecase"
	"todolist-api/pkg/config"
	"todolist-api/pkg/database"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &authdomain.RefreshToken{}, &taskdomain.Task{}); err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	tokenRepository := authRepo.NewRefreshTokenRepository(db)
	taskRepository := taskRepo.NewGormTaskRepository(db)

	// Initialize use cases
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepository, tokenRepository, cfg)
	taskUsecaseInstance := taskUsecase.NewTaskUsecase(taskRepository)

	// Start the expired refresh-token reaper
	reaper := authScheduler.NewTokenReaper(tokenRepository, cfg.TokenReapInterval, cfg.TokenRetention)
	reaper.Start()
	defer reaper.Stop()

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, taskUsecaseInstance, cfg)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
