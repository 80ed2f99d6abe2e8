package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/green-citizen/api-go/controllers"
)

func SetupDashboardRoutes(protected *gin.RouterGroup, dashboardController *controllers.DashboardController) {
	dashboard := protected.Group("/dashboard")
	{
		dashboard.GET("", dashboardController.GetMyDashboard)
		dashboard.GET("/district/:district", dashboardController.GetDistrictDashboard)
	}
}
