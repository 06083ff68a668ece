package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"connectoradminapi/configdoc"
	"connectoradminapi/utils"

	"github.com/gin-gonic/gin"
)

// getTerminals lists the declared terminals
// @Summary List terminals
// @Tags Terminals
// @Produce json
// @Success 200 {array} configdoc.TerminalView
// @Failure 400 {object} map[string]interface{} "Load failure"
// @Router /api/config/terminal [get]
func getTerminals(c *gin.Context) {
	id, _ := currentLicenseID(c)
	terminals, err := configSrv.GetTerminals(id)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, terminals)
}

// updateTerminal patches one terminal in place
// @Summary Update a terminal
// @Description Rewrites the scalar fields and filters of one terminal; authorizations merge by id
// @Tags Terminals
// @Accept json
// @Produce json
// @Param terminalIndex query int true "Zero-based terminal index"
// @Param terminal body configdoc.TerminalView true "Terminal fields"
// @Success 200 {object} map[string]interface{} "Saved"
// @Failure 400 {object} map[string]interface{} "Invalid index, request body or save failure"
// @Router /api/config/terminal [patch]
func updateTerminal(c *gin.Context) {
	index, err := strconv.Atoi(c.Query("terminalIndex"))
	if err != nil {
		utils.ErrorResponse(c, fmt.Errorf("invalid terminal index: %q", c.Query("terminalIndex")))
		return
	}

	var view configdoc.TerminalView
	if err := c.ShouldBindJSON(&view); err != nil {
		utils.ErrorResponse(c, fmt.Errorf("invalid request body: %v", err))
		return
	}

	id, _ := currentLicenseID(c)
	if err := configSrv.UpdateTerminal(id, index, view); err != nil {
		if errors.Is(err, configdoc.ErrTerminalIndexOutOfRange) {
			utils.JSONResponse(c, http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{"message": "terminal updated"})
}

// RegisterTerminalRoutes registers HTTP endpoints for terminal management.
func RegisterTerminalRoutes(rg *gin.RouterGroup) {
	rg.GET("/config/terminal", getTerminals)
	rg.PATCH("/config/terminal", updateTerminal)
}
