package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/ranilsonsilva664-collab/meu-controle-ia/internal/config"
	"github.com/ranilsonsilva664-collab/meu-controle-ia/internal/database"
	"github.com/ranilsonsilva664-collab/meu-controle-ia/internal/handlers"
	"github.com/ranilsonsilva664-collab/meu-controle-ia/internal/logger"
	"github.com/ranilsonsilva664-collab/meu-controle-ia/internal/mentor"
	"github.com/ranilsonsilva664-collab/meu-controle-ia/internal/middleware"
	"github.com/ranilsonsilva664-collab/meu-controle-ia/internal/services"
	"github.com/ranilsonsilva664-collab/meu-controle-ia/internal/storage"
	"github.com/ranilsonsilva664-collab/meu-controle-ia/internal/validator"

	_ "github.com/ranilsonsilva664-collab/meu-controle-ia/internal/docs" // Import swagger docs
)

// @title           Meu Controle IA API
// @version         1.0
// @description     Offline financial mentor for a personal finance tracker: transactions, summaries, rule-based insights, weekly missions and quick answers.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	transactionService := services.NewTransactionService(db)
	mentorService := mentor.NewService(storage.NewGorm(db))

	// Initialize handlers
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	mentorHandler := handlers.NewMentorHandler(mentorService, transactionService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Transaction routes
	transactions := v1.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.GET("/:id", transactionHandler.GetTransactionByID)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	// Summary route
	v1.GET("/summary", mentorHandler.GetSummary)

	// Mentor routes
	mentorGroup := v1.Group("/mentor")
	mentorGroup.GET("/feedback", mentorHandler.GetFeedback)
	mentorGroup.GET("/tips", mentorHandler.GetTips)
	mentorGroup.POST("/answer", mentorHandler.PostQuickAnswer)
	mentorGroup.GET("/missions", mentorHandler.GetMissions)
	mentorGroup.PUT("/missions/:id", mentorHandler.UpdateMission)
	mentorGroup.GET("/rules", mentorHandler.GetRules)
	mentorGroup.PUT("/rules", mentorHandler.SetRules)

	log.Infof("Starting Meu Controle IA backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
