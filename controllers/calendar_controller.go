package controllers

import (
	"encoding/json"
	"net/http"

	"connectoradminapi/pkg/logger"
	"connectoradminapi/services/calendar"
	"connectoradminapi/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

const (
	sessionOAuthStateKey = "googleOauthState"
	sessionGoogleToken   = "googleToken"
)

var googleSrv calendar.GoogleService

// SetGoogleService initializes the Google Calendar service instance.
func SetGoogleService(srv calendar.GoogleService) {
	googleSrv = srv
}

// googleAuth starts the OAuth consent flow
// @Summary Start Google authorization
// @Description Redirects the browser to the Google consent screen
// @Tags Google Calendar
// @Success 307 "Redirect to Google"
// @Router /api/google-calendar/auth [get]
func googleAuth(c *gin.Context) {
	state := uuid.NewString()
	session := sessions.Default(c)
	session.Set(sessionOAuthStateKey, state)
	if err := session.Save(); err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	c.Redirect(http.StatusTemporaryRedirect, googleSrv.AuthURL(state))
}

// googleCallback finishes the OAuth consent flow
// @Summary Google authorization callback
// @Description Exchanges the authorization code and stores the token in the session
// @Tags Google Calendar
// @Produce json
// @Param state query string true "Anti-forgery state"
// @Param code query string true "Authorization code"
// @Success 200 {object} map[string]interface{} "Authorized"
// @Failure 400 {object} map[string]interface{} "State mismatch or exchange failure"
// @Router /api/google-calendar/callback [get]
func googleCallback(c *gin.Context) {
	session := sessions.Default(c)
	expected, _ := session.Get(sessionOAuthStateKey).(string)
	if expected == "" || c.Query("state") != expected {
		utils.JSONResponse(c, http.StatusBadRequest, gin.H{"error": "state mismatch"})
		return
	}
	session.Delete(sessionOAuthStateKey)

	token, err := googleSrv.Exchange(c.Request.Context(), c.Query("code"))
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	// The cookie store only takes strings; the token serializes cleanly.
	raw, err := json.Marshal(token)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	session.Set(sessionGoogleToken, string(raw))
	if err := session.Save(); err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	logger.Infof("Google account authorized for session")
	utils.JSONResponse(c, http.StatusOK, gin.H{"message": "google account authorized"})
}

// googleCalendars lists the calendars of the authorized account
// @Summary List Google calendars
// @Tags Google Calendar
// @Produce json
// @Success 200 {array} calendar.CalendarInfo
// @Failure 401 {object} map[string]interface{} "No authorized account"
// @Failure 400 {object} map[string]interface{} "Listing failure"
// @Router /api/google-calendar/calendars [get]
func googleCalendars(c *gin.Context) {
	session := sessions.Default(c)
	raw, _ := session.Get(sessionGoogleToken).(string)
	if raw == "" {
		utils.JSONResponse(c, http.StatusUnauthorized, gin.H{"error": "no authorized google account"})
		return
	}

	var token oauth2.Token
	if err := json.Unmarshal([]byte(raw), &token); err != nil {
		utils.JSONResponse(c, http.StatusUnauthorized, gin.H{"error": "no authorized google account"})
		return
	}

	calendars, err := googleSrv.ListCalendars(c.Request.Context(), &token)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, calendars)
}

// RegisterCalendarRoutes registers HTTP endpoints for the Google Calendar
// authorization flow.
func RegisterCalendarRoutes(rg *gin.RouterGroup) {
	google := rg.Group("/google-calendar")
	{
		google.GET("/auth", googleAuth)
		google.GET("/callback", googleCallback)
		google.GET("/calendars", googleCalendars)
	}
}
