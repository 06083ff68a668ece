package controllers

import (
	"fmt"
	"net/http"

	"connectoradminapi/configdoc"
	"connectoradminapi/services"
	"connectoradminapi/utils"

	"github.com/gin-gonic/gin"
)

var planningSrv services.PlanningService

// SetPlanningService initializes the planning service instance.
func SetPlanningService(srv services.PlanningService) {
	planningSrv = srv
}

// getPlannings returns the synchronization schedule
// @Summary List plannings
// @Description Returns the schedule rows, falling back to the legacy document subtree when the table is empty
// @Tags Plannings
// @Produce json
// @Success 200 {array} configdoc.PlanningEntry
// @Failure 400 {object} map[string]interface{} "Load failure"
// @Router /api/plannings [get]
func getPlannings(c *gin.Context) {
	license, err := currentLicense(c)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	entries, err := planningSrv.GetPlannings(license)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, entries)
}

// savePlannings replaces the synchronization schedule
// @Summary Save plannings
// @Description Validates every entry then replaces the whole schedule in one transaction
// @Tags Plannings
// @Accept json
// @Produce json
// @Param plannings body []configdoc.PlanningEntry true "Schedule entries"
// @Success 200 {object} map[string]interface{} "Saved"
// @Failure 400 {object} map[string]interface{} "Invalid entry or save failure"
// @Router /api/plannings [post]
func savePlannings(c *gin.Context) {
	var entries []configdoc.PlanningEntry
	if err := c.ShouldBindJSON(&entries); err != nil {
		utils.ErrorResponse(c, fmt.Errorf("invalid request body: %v", err))
		return
	}

	license, err := currentLicense(c)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	if err := planningSrv.SavePlannings(license, entries); err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{"message": "plannings saved"})
}

// RegisterPlanningRoutes registers HTTP endpoints for the schedule.
func RegisterPlanningRoutes(rg *gin.RouterGroup) {
	rg.GET("/plannings", getPlannings)
	rg.POST("/plannings", savePlannings)
}
