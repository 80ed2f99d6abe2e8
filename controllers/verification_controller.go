package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/green-citizen/api-go/models"
	"github.com/green-citizen/api-go/storage"
	"github.com/green-citizen/api-go/utils"
	"gorm.io/gorm"
)

// VerificationController is the privileged surface the verification
// authority uses to move actions through their lifecycle. Citizens never
// reach it; records only ever originate as pending.
type VerificationController struct {
	DB    *gorm.DB
	Store *storage.ActionStore
}

type TransitionRequest struct {
	Level models.VerificationLevel `json:"level" binding:"required"`
}

func NewVerificationController(db *gorm.DB) *VerificationController {
	return &VerificationController{DB: db, Store: storage.NewActionStore(db)}
}

// TransitionAction applies one guarded state-machine edge to an action.
// When the action becomes verified its points are credited to the owner's
// denormalized total.
func (vc *VerificationController) TransitionAction(c *gin.Context) {
	user := utils.GetUser(c)
	if user.Role != "verifier" {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied", "success": false})
		return
	}

	var req TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	var action models.Action
	if err := vc.DB.First(&action, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Action not found", "success": false})
		return
	}

	if err := vc.Store.ApplyVerification(c.Request.Context(), &action, req.Level); err != nil {
		if errors.Is(err, storage.ErrVerificationConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "Action was updated by another verifier, please reload", "success": false})
			return
		}
		if !action.VerificationLevel.CanTransitionTo(req.Level) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "success": false})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update action", "success": false})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    action,
		Message: "Verification level updated successfully",
	})
}
