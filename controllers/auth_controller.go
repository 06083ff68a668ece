package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"connectoradminapi/models"
	"connectoradminapi/pkg/logger"
	sessionsvc "connectoradminapi/services/session"
	"connectoradminapi/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const sessionLicenseKey = "licenseId"

var sessionSrv sessionsvc.SessionService

// SetSessionService initializes the session service instance.
func SetSessionService(srv sessionsvc.SessionService) {
	sessionSrv = srv
}

// LoginRequest carries the licence credentials: the sync identifier acts as
// username, the client identifier as password.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RequireLicense rejects unauthenticated requests before they reach any
// handler in the protected groups.
func RequireLicense() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if session.Get(sessionLicenseKey) == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Next()
	}
}

// currentLicenseID returns the licence bound to the request session.
func currentLicenseID(c *gin.Context) (uint, bool) {
	session := sessions.Default(c)
	raw := session.Get(sessionLicenseKey)
	id, ok := raw.(uint)
	return id, ok
}

// currentLicense reloads the session's licence row fresh.
func currentLicense(c *gin.Context) (*models.License, error) {
	id, ok := currentLicenseID(c)
	if !ok {
		return nil, fmt.Errorf("no licence in session")
	}
	return sessionSrv.License(id)
}

// login authenticates a licence
// @Summary Log in
// @Description Validates sync id / client id credentials and opens a session
// @Tags Authentication
// @Accept json
// @Produce json
// @Param loginRequest body LoginRequest true "Licence credentials"
// @Success 200 {object} map[string]interface{} "Authenticated user payload"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 401 {object} map[string]interface{} "Invalid credentials"
// @Router /api/login [post]
func login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, fmt.Errorf("invalid request body: %v", err))
		return
	}

	license, err := sessionSrv.Authenticate(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, sessionsvc.ErrInvalidCredentials) {
			utils.JSONResponse(c, http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		utils.ErrorResponse(c, err)
		return
	}

	session := sessions.Default(c)
	session.Set(sessionLicenseKey, license.ID)
	if err := session.Save(); err != nil {
		utils.ErrorResponse(c, fmt.Errorf("failed to save session: %v", err))
		return
	}

	info, err := sessionSrv.UserInfo(license.ID)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, info)
}

// logout closes the session
// @Summary Log out
// @Tags Authentication
// @Produce json
// @Success 200 {object} map[string]interface{} "Logged out"
// @Router /api/logout [post]
func logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		logger.Warnf("Failed to clear session: %v", err)
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{"message": "logged out"})
}

// user returns the authenticated user payload
// @Summary Current user
// @Description Returns the licence payload including the configuration document and planning counts
// @Tags Authentication
// @Produce json
// @Success 200 {object} map[string]interface{} "User payload"
// @Failure 401 {object} map[string]interface{} "Not authenticated"
// @Router /api/user [get]
func user(c *gin.Context) {
	id, ok := currentLicenseID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	info, err := sessionSrv.UserInfo(id)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, info)
}

// RegisterAuthRoutes registers HTTP endpoints for authentication.
func RegisterAuthRoutes(rg *gin.RouterGroup) {
	rg.POST("/login", login)
	rg.POST("/logout", logout)
	rg.GET("/user", user)
}
