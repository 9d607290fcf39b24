// Package router wires handlers, services, and middleware into a gin
// engine. Kept separate from main so tests can run the full HTTP
// surface against a test database.
package router

import (
	"net/http"

	"freelanceflow/internal/config"
	"freelanceflow/internal/handler"
	"freelanceflow/internal/middleware"
	"freelanceflow/internal/repository"
	"freelanceflow/internal/service"
	"freelanceflow/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// New builds the application router on top of an open database
// connection.
func New(cfg *config.Config, db *gorm.DB, logger *zap.Logger) *gin.Engine {
	tokens := utils.NewTokenService(cfg.Auth.SecretKey, cfg.Auth.AccessTokenExpiry)

	userRepo := repository.NewUserRepo(db)
	projectRepo := repository.NewProjectRepo(db)
	taskRepo := repository.NewTaskRepo(db)
	timeEntryRepo := repository.NewTimeEntryRepo(db)

	authService := service.NewAuthService(userRepo, tokens)
	userService := service.NewUserService(userRepo)
	projectService := service.NewProjectService(projectRepo)
	taskService := service.NewTaskService(taskRepo)
	timeEntryService := service.NewTimeEntryService(timeEntryRepo)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService, timeEntryService)
	projectHandler := handler.NewProjectHandler(projectService)
	taskHandler := handler.NewTaskHandler(taskService)
	timeEntryHandler := handler.NewTimeEntryHandler(timeEntryService)

	authn := middleware.NewAuthenticator(userRepo, tokens, logger)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS(cfg))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "freelanceflow",
		})
	})

	api := r.Group("/api")

	// Auth routes (public)
	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	// Everything below requires a valid bearer token
	protected := api.Group("")
	protected.Use(authn.Authenticate())

	users := protected.Group("/users")
	users.Use(middleware.RequireActiveUser())
	{
		users.GET("/me", userHandler.Me)
		users.GET("/:id/time-statistics", userHandler.TimeStatistics)

		// Admin-only user management
		users.GET("/:id", middleware.RequireAdmin(), userHandler.Get)
		users.PUT("/:id", middleware.RequireAdmin(), userHandler.Update)
		users.DELETE("/:id", middleware.RequireAdmin(), userHandler.Delete)
	}

	projects := protected.Group("/projects")
	projects.Use(middleware.RequireActiveUser())
	{
		projects.POST("", projectHandler.Create)
		projects.GET("/my", projectHandler.ListMy)
		projects.GET("/:id", projectHandler.Get)
		projects.PUT("/:id", projectHandler.Update)
		projects.DELETE("/:id", projectHandler.Delete)
	}

	tasks := protected.Group("/tasks")
	tasks.Use(middleware.RequireActiveUser())
	{
		tasks.POST("", taskHandler.Create)
		tasks.GET("/my-tasks", taskHandler.ListMy)
		tasks.GET("/:id", taskHandler.Get)
		tasks.PUT("/:id", taskHandler.Update)
		tasks.PUT("/:id/status/:status", taskHandler.UpdateStatus)
		tasks.DELETE("/:id", taskHandler.Delete)

		// Time entries live under their owning task
		tasks.POST("/:id/time", timeEntryHandler.Create)
		tasks.GET("/:id/time", timeEntryHandler.List)
		tasks.DELETE("/:id/time/:entry_id", timeEntryHandler.Delete)
	}

	return r
}
