package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/green-citizen/api-go/config"
	"github.com/green-citizen/api-go/controllers"
	"github.com/green-citizen/api-go/middleware"
	"github.com/green-citizen/api-go/storage"
	"github.com/green-citizen/api-go/workflow"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Wire the submission pipeline against R2 and postgres
	storageClient := storage.NewClient(config.GetR2Config())
	submission := workflow.NewSubmissionService(storageClient, storage.NewActionStore(db))
	aggregator := workflow.NewAggregator(db)

	// Initialize controllers
	authController := controllers.NewAuthController(db)
	actionController := controllers.NewActionController(db, submission)
	dashboardController := controllers.NewDashboardController(aggregator)
	verificationController := controllers.NewVerificationController(db)

	// Public routes
	public := r.Group("/api")
	{
		public.POST("/register", authController.Register)
		public.POST("/login", authController.Login)
	}

	// Protected routes
	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/profile", authController.GetProfile)
		protected.PUT("/profile", authController.UpdateProfile)

		SetupActionRoutes(protected, actionController, verificationController)
		SetupDashboardRoutes(protected, dashboardController)
	}
}
