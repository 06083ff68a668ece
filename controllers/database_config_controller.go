package controllers

import (
	"fmt"
	"net/http"

	"connectoradminapi/configdoc"
	"connectoradminapi/services"
	"connectoradminapi/utils"

	"github.com/gin-gonic/gin"
)

var configSrv services.ConfigService

// SetConfigService initializes the configuration service instance.
func SetConfigService(srv services.ConfigService) {
	configSrv = srv
}

// getSources returns the source list
// @Summary List database sources
// @Description Projects the source section out of the configuration document, padded to 4 slots
// @Tags Database Configuration
// @Produce json
// @Success 200 {array} configdoc.Source
// @Failure 400 {object} map[string]interface{} "Load failure"
// @Router /api/database/sources [get]
func getSources(c *gin.Context) {
	id, _ := currentLicenseID(c)
	sources, err := configSrv.GetSources(id)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, sources)
}

// saveSources replaces the source list
// @Summary Save database sources
// @Description Replaces the source collection with the submitted list; padding slots must be stripped by the caller
// @Tags Database Configuration
// @Accept json
// @Produce json
// @Param sources body []configdoc.Source true "Source list"
// @Success 200 {object} map[string]interface{} "Saved"
// @Failure 400 {object} map[string]interface{} "Invalid request or save failure"
// @Router /api/database/sources [post]
func saveSources(c *gin.Context) {
	var sources []configdoc.Source
	if err := c.ShouldBindJSON(&sources); err != nil {
		utils.ErrorResponse(c, fmt.Errorf("invalid request body: %v", err))
		return
	}
	id, _ := currentLicenseID(c)
	if err := configSrv.SaveSources(id, sources); err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{"message": "sources saved"})
}

// getExternalLinks returns the external link section
// @Summary Get external links
// @Tags Database Configuration
// @Produce json
// @Success 200 {object} configdoc.ExternalLinksView
// @Failure 400 {object} map[string]interface{} "Load failure"
// @Router /api/database/external-links [get]
func getExternalLinks(c *gin.Context) {
	id, _ := currentLicenseID(c)
	view, err := configSrv.GetExternalLinks(id)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, view)
}

// saveExternalLinks saves the external link section
// @Summary Save external links
// @Tags Database Configuration
// @Accept json
// @Produce json
// @Param externalLinks body configdoc.ExternalLinksView true "External links"
// @Success 200 {object} map[string]interface{} "Saved"
// @Failure 400 {object} map[string]interface{} "Invalid request or save failure"
// @Router /api/database/external-links [post]
func saveExternalLinks(c *gin.Context) {
	var view configdoc.ExternalLinksView
	if err := c.ShouldBindJSON(&view); err != nil {
		utils.ErrorResponse(c, fmt.Errorf("invalid request body: %v", err))
		return
	}
	id, _ := currentLicenseID(c)
	if err := configSrv.SaveExternalLinks(id, view); err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{"message": "external links saved"})
}

// getExternalCalendars returns the calendar section plus the employee catalog
// @Summary Get external calendars
// @Tags Database Configuration
// @Produce json
// @Success 200 {object} map[string]interface{} "Calendar section and employees"
// @Failure 400 {object} map[string]interface{} "Load failure"
// @Router /api/database/external-calendars [get]
func getExternalCalendars(c *gin.Context) {
	id, _ := currentLicenseID(c)
	view, employees, err := configSrv.GetCalendars(id)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{
		"calendars": view,
		"employees": employees,
	})
}

// saveExternalCalendars saves the calendar section
// @Summary Save external calendars
// @Tags Database Configuration
// @Accept json
// @Produce json
// @Param calendars body configdoc.CalendarsView true "Calendar section"
// @Success 200 {object} map[string]interface{} "Saved"
// @Failure 400 {object} map[string]interface{} "Invalid request or save failure"
// @Router /api/database/external-calendars [post]
func saveExternalCalendars(c *gin.Context) {
	var view configdoc.CalendarsView
	if err := c.ShouldBindJSON(&view); err != nil {
		utils.ErrorResponse(c, fmt.Errorf("invalid request body: %v", err))
		return
	}
	id, _ := currentLicenseID(c)
	if err := configSrv.SaveCalendars(id, view); err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{"message": "calendars saved"})
}

// getComplement returns the complement section
// @Summary Get complement settings
// @Tags Database Configuration
// @Produce json
// @Success 200 {object} configdoc.ComplementView
// @Failure 400 {object} map[string]interface{} "Load failure"
// @Router /api/database/complement [get]
func getComplement(c *gin.Context) {
	id, _ := currentLicenseID(c)
	view, err := configSrv.GetComplement(id)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, view)
}

// saveComplement saves the complement section
// @Summary Save complement settings
// @Tags Database Configuration
// @Accept json
// @Produce json
// @Param complement body configdoc.ComplementView true "Complement settings"
// @Success 200 {object} map[string]interface{} "Saved"
// @Failure 400 {object} map[string]interface{} "Invalid request or save failure"
// @Router /api/database/complement [post]
func saveComplement(c *gin.Context) {
	var view configdoc.ComplementView
	if err := c.ShouldBindJSON(&view); err != nil {
		utils.ErrorResponse(c, fmt.Errorf("invalid request body: %v", err))
		return
	}
	id, _ := currentLicenseID(c)
	if err := configSrv.SaveComplement(id, view); err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{"message": "complement saved"})
}

// getExclusions returns the annotated exclusion view
// @Summary Get exclusions
// @Description Merges the three catalog hierarchies with the flat exclusion list
// @Tags Database Configuration
// @Produce json
// @Success 200 {object} configdoc.ExclusionsView
// @Failure 400 {object} map[string]interface{} "Load failure"
// @Router /api/database/exclusions [get]
func getExclusions(c *gin.Context) {
	id, _ := currentLicenseID(c)
	view, err := configSrv.GetExclusions(id)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, view)
}

// saveExclusions replaces the exclusion list
// @Summary Save exclusions
// @Description Replaces the whole exclusion subtree; a family-level entry drops redundant item entries
// @Tags Database Configuration
// @Accept json
// @Produce json
// @Param exclusions body []configdoc.ExclusionEntry true "Exclusion entries"
// @Success 200 {object} map[string]interface{} "Saved"
// @Failure 400 {object} map[string]interface{} "Invalid request or save failure"
// @Router /api/database/exclusions [post]
func saveExclusions(c *gin.Context) {
	var entries []configdoc.ExclusionEntry
	if err := c.ShouldBindJSON(&entries); err != nil {
		utils.ErrorResponse(c, fmt.Errorf("invalid request body: %v", err))
		return
	}
	id, _ := currentLicenseID(c)
	if err := configSrv.SaveExclusions(id, entries); err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{"message": "exclusions saved"})
}

// RegisterDatabaseConfigRoutes registers HTTP endpoints for the document
// configuration sections.
func RegisterDatabaseConfigRoutes(rg *gin.RouterGroup) {
	database := rg.Group("/database")
	{
		database.GET("/sources", getSources)
		database.POST("/sources", saveSources)
		database.GET("/external-links", getExternalLinks)
		database.POST("/external-links", saveExternalLinks)
		database.GET("/external-calendars", getExternalCalendars)
		database.POST("/external-calendars", saveExternalCalendars)
		database.GET("/complement", getComplement)
		database.POST("/complement", saveComplement)
		database.GET("/exclusions", getExclusions)
		database.POST("/exclusions", saveExclusions)
	}
}
