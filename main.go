package main

import (
	"log"
	"os"

	"github.com/foodshare-app/foodshare_backend/controllers"
	"github.com/foodshare-app/foodshare_backend/database"
	"github.com/foodshare-app/foodshare_backend/docs"
	"github.com/foodshare-app/foodshare_backend/middleware"
	"github.com/foodshare-app/foodshare_backend/models"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           FoodShare API
// @version         1.0
// @description     API Server for the FoodShare food donation marketplace
// @host            localhost:8080
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Initialize database
	database.Connect()
	database.Migrate()

	// Set up Swagger info
	docs.SwaggerInfo.Title = "FoodShare API"
	docs.SwaggerInfo.Description = "API Server for the FoodShare food donation marketplace"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = "localhost:" + os.Getenv("PORT")
	if docs.SwaggerInfo.Host == "localhost:" {
		docs.SwaggerInfo.Host = "localhost:8080"
	}
	docs.SwaggerInfo.BasePath = "/"
	docs.SwaggerInfo.Schemes = []string{"http"}

	router := setupRouter()

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server running on port %s", port)
	log.Printf("Swagger documentation available at http://localhost:%s/swagger/index.html", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRouter() *gin.Engine {
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Authentication routes
	auth := router.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Protected routes
	api := router.Group("/api")
	api.Use(middleware.JWTAuth())
	{
		// Open to any authenticated role
		api.GET("/food/available", controllers.GetAvailableListings)
		api.GET("/user/profile-stats", controllers.GetProfileStats)

		// Provider operations
		provider := api.Group("/")
		provider.Use(middleware.RequireRole(models.RoleProvider))
		{
			provider.POST("/food/create", controllers.CreateListing)
			provider.GET("/food/my-listings", controllers.GetMyListings)
			provider.PUT("/food/update/:id", controllers.UpdateListing)
			provider.DELETE("/food/delete/:id", controllers.DeleteListing)
			provider.GET("/provider/:id/requests", controllers.GetProviderRequests)
			provider.POST("/donation/request/update", controllers.ResolveRequest)
		}

		// Receiver operations
		receiver := api.Group("/")
		receiver.Use(middleware.RequireRole(models.RoleReceiver))
		{
			receiver.POST("/donation/request", controllers.CreateRequest)
			receiver.GET("/receiver/my-requests", controllers.GetReceiverRequests)
		}
	}

	return router
}
