package session

import (
	"errors"
	"fmt"
	"strings"

	"connectoradminapi/config"
	"connectoradminapi/models"
	"connectoradminapi/pkg/logger"
	"connectoradminapi/repository"

	"gorm.io/gorm"
)

// ErrInvalidCredentials hides whether the sync id or the client id failed.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserInfo is the authenticated user payload returned to the console.
type UserInfo struct {
	models.License
	PlanningCounts  models.PlanningCounts `json:"planningCounts"`
	MobileConfigURL string                `json:"mobileConfigUrl"`
}

// SessionService authenticates licences and builds the per-user payload.
type SessionService interface {
	Authenticate(idSynchro, idClient string) (*models.License, error)
	License(licenseID uint) (*models.License, error)
	UserInfo(licenseID uint) (*UserInfo, error)
}

type sessionService struct {
	licenseRepo  repository.LicenseRepository
	planningRepo repository.PlanningRepository
}

// NewSessionService creates a new session service instance.
func NewSessionService(licenseRepo repository.LicenseRepository, planningRepo repository.PlanningRepository) SessionService {
	return &sessionService{
		licenseRepo:  licenseRepo,
		planningRepo: planningRepo,
	}
}

// Authenticate checks a sync id / client id pair against the licence table.
func (s *sessionService) Authenticate(idSynchro, idClient string) (*models.License, error) {
	license, err := s.licenseRepo.GetByCredentials(nil, idSynchro, idClient)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warnf("Login rejected for sync id %s", idSynchro)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to check credentials: %w", err)
	}
	applyDefaults(license)
	logger.Infof("Login accepted for sync id %s (licence %d)", idSynchro, license.ID)
	return license, nil
}

// License reloads one licence row fresh with defaults applied.
func (s *sessionService) License(licenseID uint) (*models.License, error) {
	license, err := s.licenseRepo.GetByID(nil, licenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to load licence %d: %w", licenseID, err)
	}
	applyDefaults(license)
	return license, nil
}

// UserInfo reloads the licence fresh and attaches planning counts and the
// mobile configuration download link.
func (s *sessionService) UserInfo(licenseID uint) (*UserInfo, error) {
	license, err := s.licenseRepo.GetByID(nil, licenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to load licence %d: %w", licenseID, err)
	}
	applyDefaults(license)

	counts, err := s.planningRepo.CountsBySyncID(nil, license.IDSynchro)
	if err != nil {
		return nil, fmt.Errorf("failed to count plannings for %s: %w", license.IDSynchro, err)
	}

	return &UserInfo{
		License:         *license,
		PlanningCounts:  counts,
		MobileConfigURL: MobileConfigURL(license.Tablets),
	}, nil
}

func applyDefaults(license *models.License) {
	if license.Tablets == "" {
		license.Tablets = models.DefaultTablets
	}
}

// MobileConfigURL derives the product configuration bundle URL from the
// tablet descriptor. Descriptor format:
// count;label;masterCode|masterName;version;mobileName.
func MobileConfigURL(tablets string) string {
	if tablets == "" {
		tablets = models.DefaultTablets
	}
	parts := strings.Split(tablets, ";")
	if len(parts) < 5 {
		return ""
	}
	masterCode := strings.Split(parts[2], "|")[0]
	mobileCode := parts[4]
	if masterCode == "" || mobileCode == "" {
		return ""
	}
	return fmt.Sprintf("%s/NuxiDev5-%s-%s.xml", config.Cfg.MobileConfigBaseURL, masterCode, mobileCode)
}
