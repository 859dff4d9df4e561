package api

import (
	"net/http"

	"todolist-api/internal/auth/delivery"
	authUsecase "todolist-api/internal/auth/usecase"
	taskDelivery "todolist-api/internal/task/delivery"
	taskUsecase "todolist-api/internal/task/usecase"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, taskUc taskUsecase.TaskUsecase) {
	authHandler := delivery.NewAuthHandler(authUc)
	taskHandler := taskDelivery.NewTaskHandler(taskUc)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh-token", authHandler.RefreshToken)
		}

		// Task routes (protected)
		tasks := api.Group("/tasks")
		tasks.Use(delivery.AuthMiddleware(authUc))
		{
			tasks.GET("", taskHandler.GetTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.PATCH("/:id/toggle-status", taskHandler.ToggleTaskStatus)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
		}
	}
}
