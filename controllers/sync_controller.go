package controllers

import (
	"fmt"
	"net/http"

	"connectoradminapi/services/agent"
	"connectoradminapi/utils"

	"github.com/gin-gonic/gin"
)

var agentSrv agent.SyncService

// SetAgentSyncService initializes the agent sync service instance.
func SetAgentSyncService(srv agent.SyncService) {
	agentSrv = srv
}

// SyncTriggerRequest selects the kind of run to trigger on the agent.
type SyncTriggerRequest struct {
	SyncType string `json:"syncType" binding:"required"`
}

// triggerSync relays a synchronization command to the on-premise agent
// @Summary Trigger a synchronization
// @Description Sends the command to the agent's last registered endpoint and waits for its answer
// @Tags Synchronization
// @Accept json
// @Produce json
// @Param request body SyncTriggerRequest true "Sync type: C full, R incremental, I import"
// @Success 200 {object} agent.SyncResult
// @Failure 400 {object} map[string]interface{} "Invalid type, missing endpoint or non-premium licence"
// @Router /api/sync-automate [post]
func triggerSync(c *gin.Context) {
	var req SyncTriggerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, fmt.Errorf("invalid request body: %v", err))
		return
	}

	license, err := currentLicense(c)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	result, err := agentSrv.TriggerSync(c.Request.Context(), license, req.SyncType)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, result)
}

// RegisterSyncRoutes registers HTTP endpoints for remote synchronization.
func RegisterSyncRoutes(rg *gin.RouterGroup) {
	rg.POST("/sync-automate", triggerSync)
}
