package controllers

import (
	"fmt"
	"net/http"

	"connectoradminapi/configdoc"
	"connectoradminapi/utils"

	"github.com/gin-gonic/gin"
)

// getSyncData returns the per-table synchronization toggles
// @Summary Get synchronization toggles
// @Description Returns the toggle list joined with the element catalog that drives the history column
// @Tags Synchronized Data
// @Produce json
// @Success 200 {object} map[string]interface{} "Toggles and elements"
// @Failure 400 {object} map[string]interface{} "Load failure"
// @Router /api/sync-data [get]
func getSyncData(c *gin.Context) {
	id, _ := currentLicenseID(c)
	toggles, elements, err := configSrv.GetSyncData(id)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{
		"toggles":  toggles,
		"elements": elements,
	})
}

// saveSyncData replaces the synchronization toggles
// @Summary Save synchronization toggles
// @Tags Synchronized Data
// @Accept json
// @Produce json
// @Param toggles body []configdoc.SyncDataToggle true "Toggle list"
// @Success 200 {object} map[string]interface{} "Saved"
// @Failure 400 {object} map[string]interface{} "Invalid request or save failure"
// @Router /api/sync-data [post]
func saveSyncData(c *gin.Context) {
	var toggles []configdoc.SyncDataToggle
	if err := c.ShouldBindJSON(&toggles); err != nil {
		utils.ErrorResponse(c, fmt.Errorf("invalid request body: %v", err))
		return
	}
	id, _ := currentLicenseID(c)
	if err := configSrv.SaveSyncData(id, toggles); err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{"message": "sync data saved"})
}

// RegisterSyncDataRoutes registers HTTP endpoints for the synchronized
// data toggles.
func RegisterSyncDataRoutes(rg *gin.RouterGroup) {
	rg.GET("/sync-data", getSyncData)
	rg.POST("/sync-data", saveSyncData)
}
