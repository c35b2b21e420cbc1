package main

import (
	"log"

	api "taskboard-backend/cmd/api"
	authdomain "taskboard-backend/internal/auth/domain"
	authRepo "taskboard-backend/internal/auth/repository"
	authUsecase "taskboard-backend/internal/auth/usecase"
	boarddomain "taskboard-backend/internal/board/domain"
	boardRepo "taskboard-backend/internal/board/repository"
	boardUsecase "taskboard-backend/internal/board/usecase"
	notifdomain "taskboard-backend/internal/notification/domain"
	notifRepo "taskboard-backend/internal/notification/repository"
	notifUsecase "taskboard-backend/internal/notification/usecase"
	"taskboard-backend/pkg/config"
	"taskboard-backend/pkg/database"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(
		&authdomain.User{},
		&authdomain.RefreshToken{},
		&boarddomain.Board{},
		&boarddomain.Column{},
		&boarddomain.Task{},
		&notifdomain.Notification{},
	); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	boardRepository := boardRepo.NewBoardRepository(db)
	columnRepository := boardRepo.NewColumnRepository(db)
	taskRepository := boardRepo.NewTaskRepository(db)
	notificationRepository := notifRepo.NewNotificationRepository(db)

	// Initialize use cases (dependency injection)
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepository, cfg)
	boardUsecaseInstance := boardUsecase.NewBoardUsecase(boardRepository, columnRepository, taskRepository, userRepository)
	notificationUsecaseInstance := notifUsecase.NewNotificationUsecase(notificationRepository)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, boardUsecaseInstance, notificationUsecaseInstance)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
