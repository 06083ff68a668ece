package calendar

import (
	"context"
	"fmt"

	"connectoradminapi/config"
	"connectoradminapi/pkg/logger"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// CalendarInfo is one calendar visible to the authorized Google account.
type CalendarInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// GoogleService drives the OAuth flow used to pick the external calendars
// the connector maps employees onto.
type GoogleService interface {
	AuthURL(state string) string
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)
	ListCalendars(ctx context.Context, token *oauth2.Token) ([]CalendarInfo, error)
}

type googleService struct {
	oauth *oauth2.Config
}

// NewGoogleService creates a new Google Calendar service from the loaded
// OAuth configuration.
func NewGoogleService() GoogleService {
	return &googleService{
		oauth: &oauth2.Config{
			ClientID:     config.Cfg.GoogleClientID,
			ClientSecret: config.Cfg.GoogleClientSecret,
			RedirectURL:  config.Cfg.GoogleRedirectURL,
			Scopes:       []string{gcal.CalendarReadonlyScope},
			Endpoint:     google.Endpoint,
		},
	}
}

func (s *googleService) AuthURL(state string) string {
	return s.oauth.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	)
}

func (s *googleService) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}
	return token, nil
}

func (s *googleService) ListCalendars(ctx context.Context, token *oauth2.Token) ([]CalendarInfo, error) {
	svc, err := gcal.NewService(ctx, option.WithTokenSource(s.oauth.TokenSource(ctx, token)))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar client: %w", err)
	}

	list, err := svc.CalendarList.List().Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list calendars: %w", err)
	}

	calendars := make([]CalendarInfo, 0, len(list.Items))
	for _, item := range list.Items {
		calendars = append(calendars, CalendarInfo{ID: item.Id, Name: item.Summary})
	}
	logger.Debugf("Listed %d Google calendars", len(calendars))
	return calendars, nil
}
