package api

import (
	"net/http"

	authdelivery "taskboard-backend/internal/auth/delivery"
	authUsecase "taskboard-backend/internal/auth/usecase"
	boarddelivery "taskboard-backend/internal/board/delivery"
	boardUsecase "taskboard-backend/internal/board/usecase"
	notifdelivery "taskboard-backend/internal/notification/delivery"
	notifUsecase "taskboard-backend/internal/notification/usecase"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, boardUc boardUsecase.BoardUsecase, notifUc notifUsecase.NotificationUsecase) {
	authHandler := authdelivery.NewAuthHandler(authUc)
	boardHandler := boarddelivery.NewBoardHandler(boardUc)
	notificationHandler := notifdelivery.NewNotificationHandler(notifUc)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/google", authHandler.GoogleSignIn)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", authdelivery.AuthMiddleware(authUc), authHandler.Me)
		}

		// Board routes (protected)
		boards := api.Group("/boards")
		boards.Use(authdelivery.AuthMiddleware(authUc))
		{
			boards.GET("", boardHandler.ListBoards)
			boards.POST("", boardHandler.CreateBoard)
			boards.GET("/:id", boardHandler.GetBoard)
			boards.PUT("/:id", boardHandler.UpdateBoard)
			boards.DELETE("/:id", boardHandler.DeleteBoard)
			boards.POST("/:id/invite", boardHandler.InviteMember)
			boards.POST("/:id/columns", boardHandler.CreateColumn)
		}

		// Column routes (protected)
		columns := api.Group("/columns")
		columns.Use(authdelivery.AuthMiddleware(authUc))
		{
			columns.PUT("/:id", boardHandler.UpdateColumn)
			columns.DELETE("/:id", boardHandler.DeleteColumn)
			columns.POST("/:id/tasks", boardHandler.CreateTask)
		}

		// Task routes (protected)
		tasks := api.Group("/tasks")
		tasks.Use(authdelivery.AuthMiddleware(authUc))
		{
			tasks.PUT("/:id", boardHandler.UpdateTask)
			tasks.DELETE("/:id", boardHandler.DeleteTask)
			tasks.POST("/reorder", boardHandler.MoveTask)
		}

		// Notification routes (protected)
		notifications := api.Group("/notifications")
		notifications.Use(authdelivery.AuthMiddleware(authUc))
		{
			notifications.GET("", notificationHandler.List)
			notifications.POST("/:id/read", notificationHandler.MarkRead)
			notifications.POST("/read-all", notificationHandler.MarkAllRead)
		}
	}
}
