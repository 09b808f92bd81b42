package main

import (
	"fmt"
	"net/http"
	"os"

	"financebook/internal/config"
	"financebook/internal/database"
	"financebook/internal/handlers"
	"financebook/internal/logger"
	"financebook/internal/middleware"
	"financebook/internal/services"
	"financebook/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "financebook/internal/docs" // Import swagger docs
)

// @title           FinanceBook API
// @version         1.0
// @description     FinanceBook records cash-flow events, classifies them along user-defined taxonomy trees, and associates them with recipients.

// @host      localhost:8080
// @BasePath  /

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

	// Create database manager
	dbManager, err := database.NewManager(appConfig.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Create or update the schema, then seed the reserved default rows
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}
	db := dbManager.DB()
	if err := database.Seed(db); err != nil {
		return fmt.Errorf("failed to seed default data: %w", err)
	}

	// Register custom binding validators
	validator.Register()

	// Initialize services
	categoryTypeService := services.NewCategoryTypeService(db)
	categoryService := services.NewCategoryService(db)
	recipientService := services.NewRecipientService(db)
	paymentItemService := services.NewPaymentItemService(db, categoryService)
	iconService := services.NewIconService(appConfig.IconDir)

	// Initialize handlers
	paymentItemHandler := handlers.NewPaymentItemHandler(paymentItemService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	categoryTypeHandler := handlers.NewCategoryTypeHandler(categoryTypeService)
	recipientHandler := handlers.NewRecipientHandler(recipientService)
	iconHandler := handlers.NewIconHandler(iconService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Payment item routes
	paymentItems := router.Group("/payment-items")
	paymentItems.POST("", paymentItemHandler.CreatePaymentItem)
	paymentItems.GET("", paymentItemHandler.ListPaymentItems)
	paymentItems.GET("/:id", paymentItemHandler.GetPaymentItemByID)
	paymentItems.PUT("/:id", paymentItemHandler.UpdatePaymentItem)
	paymentItems.DELETE("/:id", paymentItemHandler.DeletePaymentItem)

	// Category type routes
	categoryTypes := router.Group("/category-types")
	categoryTypes.POST("", categoryTypeHandler.CreateCategoryType)
	categoryTypes.GET("", categoryTypeHandler.ListCategoryTypes)

	// Category routes
	categories := router.Group("/categories")
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("", categoryHandler.ListCategories)
	categories.PUT("/:id", categoryHandler.UpdateCategory)
	categories.GET("/:id/tree", categoryHandler.GetCategoryTree)
	categories.GET("/:id/descendants", categoryHandler.GetCategoryDescendants)
	categories.GET("/by-type/:id", categoryHandler.GetCategoriesByType)

	// Recipient routes
	recipients := router.Group("/recipients")
	recipients.POST("", recipientHandler.CreateRecipient)
	recipients.GET("", recipientHandler.ListRecipients)
	recipients.GET("/:id", recipientHandler.GetRecipientByID)

	// Icon upload/download routes
	router.POST("/uploadicon/", iconHandler.UploadIcon)
	router.GET("/download_static/:filename", iconHandler.DownloadIcon)

	log.Infof("Starting FinanceBook backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
