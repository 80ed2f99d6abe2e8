package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/green-citizen/api-go/utils"
	"github.com/green-citizen/api-go/workflow"
)

type DashboardController struct {
	Aggregator *workflow.Aggregator
}

func NewDashboardController(aggregator *workflow.Aggregator) *DashboardController {
	return &DashboardController{Aggregator: aggregator}
}

// GetMyDashboard recomputes the caller's summary on each view.
func (dc *DashboardController) GetMyDashboard(c *gin.Context) {
	user := utils.GetUser(c)

	summary, err := dc.Aggregator.UserSummary(c.Request.Context(), user.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard", "success": false})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: summary})
}

// GetDistrictDashboard aggregates every action logged by users of one
// district.
func (dc *DashboardController) GetDistrictDashboard(c *gin.Context) {
	district := c.Param("district")
	if district == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "District is required", "success": false})
		return
	}

	summary, err := dc.Aggregator.DistrictSummary(c.Request.Context(), district)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard", "success": false})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: summary})
}
