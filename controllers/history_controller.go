package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"connectoradminapi/repository"
	"connectoradminapi/services"
	"connectoradminapi/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var historySrv services.HistoryService

// SetHistoryService initializes the history service instance.
func SetHistoryService(srv services.HistoryService) {
	historySrv = srv
}

// RecordUpdateRequest carries an edited record payload.
type RecordUpdateRequest struct {
	Record string `json:"record" binding:"required"`
}

// StatusUpdateRequest carries a status transition target.
type StatusUpdateRequest struct {
	Status *int `json:"status" binding:"required"`
}

// listHistory returns one page of archived sync records
// @Summary List sync history
// @Description Filters the archive by date, free-text search and error state; newest entries first
// @Tags Sync History
// @Produce json
// @Param errorsOnly query bool false "Keep failed records only"
// @Param date query string false "Day filter, YYYY-MM-DD"
// @Param search query string false "Matched against the document reference, payload and record type"
// @Param limit query int false "Page size (default 50)"
// @Param offset query int false "Page offset"
// @Success 200 {object} map[string]interface{} "Entries and total count"
// @Failure 400 {object} map[string]interface{} "Query failure"
// @Router /api/sync-history [get]
func listHistory(c *gin.Context) {
	license, err := currentLicense(c)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	filter := repository.HistoryFilter{
		IDSynchro:  license.IDSynchro,
		ErrorsOnly: c.Query("errorsOnly") == "true",
		Date:       c.Query("date"),
		Search:     c.Query("search"),
		Limit:      limit,
		Offset:     offset,
	}

	entries, total, err := historySrv.List(filter)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{
		"entries": entries,
		"total":   total,
	})
}

// getHistoryLog returns the log text of one archived record
// @Summary Get a record log
// @Tags Sync History
// @Produce json
// @Param id path int true "Archive row id"
// @Success 200 {object} map[string]interface{} "Log text"
// @Failure 404 {object} map[string]interface{} "Unknown record"
// @Router /api/sync-history/{id}/log [get]
func getHistoryLog(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.ErrorResponse(c, fmt.Errorf("invalid record id: %q", c.Param("id")))
		return
	}
	license, err := currentLicense(c)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	log, err := historySrv.GetLog(id, license.IDSynchro)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONResponse(c, http.StatusNotFound, gin.H{"error": "record not found"})
			return
		}
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{"log": log})
}

// getHistoryRecord returns one archived record by its internal id
// @Summary Get a record
// @Tags Sync History
// @Produce json
// @Param id path string true "Record internal id"
// @Success 200 {object} models.SyncHistoryEntry
// @Failure 404 {object} map[string]interface{} "Unknown record"
// @Router /api/sync-history/record/{id} [get]
func getHistoryRecord(c *gin.Context) {
	license, err := currentLicense(c)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	entry, err := historySrv.GetRecord(c.Param("id"), license.IDSynchro)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONResponse(c, http.StatusNotFound, gin.H{"error": "record not found"})
			return
		}
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, entry)
}

// updateHistoryRecord rewrites the payload of one archived record
// @Summary Update a record
// @Tags Sync History
// @Accept json
// @Produce json
// @Param id path string true "Record internal id"
// @Param record body RecordUpdateRequest true "Edited payload"
// @Success 200 {object} map[string]interface{} "Saved"
// @Failure 400 {object} map[string]interface{} "Invalid request or save failure"
// @Router /api/sync-history/record/{id} [put]
func updateHistoryRecord(c *gin.Context) {
	var req RecordUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, fmt.Errorf("invalid request body: %v", err))
		return
	}
	license, err := currentLicense(c)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	if err := historySrv.UpdateRecord(c.Param("id"), license.IDSynchro, req.Record); err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{"message": "record updated"})
}

// updateHistoryStatus moves one record between done, error and pending
// @Summary Update a record status
// @Description Setting a record back to pending re-enqueues it for the next run
// @Tags Sync History
// @Accept json
// @Produce json
// @Param id path string true "Record internal id"
// @Param status body StatusUpdateRequest true "Target status: 1 done, 0 pending, -1 error"
// @Success 200 {object} map[string]interface{} "Saved"
// @Failure 400 {object} map[string]interface{} "Invalid status or save failure"
// @Router /api/sync-history/{id}/status [patch]
func updateHistoryStatus(c *gin.Context) {
	var req StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, fmt.Errorf("invalid request body: %v", err))
		return
	}
	license, err := currentLicense(c)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	if err := historySrv.UpdateStatus(c.Param("id"), license.IDSynchro, *req.Status); err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{"message": "status updated"})
}

// downloadImportFile streams the attachment of one imported record
// @Summary Download an import attachment
// @Description Proxies the file from the customer's storage space using the licence credentials
// @Tags Sync History
// @Produce octet-stream
// @Param id path string true "Record internal id"
// @Success 200 {file} binary "Attachment content"
// @Failure 400 {object} map[string]interface{} "Missing attachment or download failure"
// @Router /api/sync-history/{id}/import-file [get]
func downloadImportFile(c *gin.Context) {
	license, err := currentLicense(c)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	file, err := historySrv.DownloadImportFile(license, c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.FileName))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}

// RegisterHistoryRoutes registers HTTP endpoints for the sync history archive.
func RegisterHistoryRoutes(rg *gin.RouterGroup) {
	history := rg.Group("/sync-history")
	{
		history.GET("", listHistory)
		history.GET("/:id/log", getHistoryLog)
		history.GET("/record/:id", getHistoryRecord)
		history.PUT("/record/:id", updateHistoryRecord)
		history.PATCH("/:id/status", updateHistoryStatus)
		history.GET("/:id/import-file", downloadImportFile)
	}
}
