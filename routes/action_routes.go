package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/green-citizen/api-go/controllers"
)

func SetupActionRoutes(protected *gin.RouterGroup, actionController *controllers.ActionController, verificationController *controllers.VerificationController) {
	actions := protected.Group("/actions")
	{
		actions.POST("", actionController.CreateAction)
		actions.GET("", actionController.GetMyActions)
		actions.POST("/:id/verification", verificationController.TransitionAction)
	}
}
