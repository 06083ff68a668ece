package session

import (
	"errors"
	"testing"

	"connectoradminapi/config"
	"connectoradminapi/models"

	"gorm.io/gorm"
)

type stubLicenseRepo struct {
	license models.License
}

func (s *stubLicenseRepo) GetByCredentials(tx *gorm.DB, idSynchro, idClient string) (*models.License, error) {
	if idSynchro == s.license.IDSynchro && idClient == s.license.IDClient {
		l := s.license
		return &l, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubLicenseRepo) GetByID(tx *gorm.DB, id uint) (*models.License, error) {
	if id != s.license.ID {
		return nil, gorm.ErrRecordNotFound
	}
	l := s.license
	return &l, nil
}

func (s *stubLicenseRepo) UpdateConfig(tx *gorm.DB, id uint, configXML string) error {
	return nil
}

type stubPlanningRepo struct {
	counts models.PlanningCounts
}

func (s *stubPlanningRepo) ListBySyncID(tx *gorm.DB, idSynchro string) ([]models.Planning, error) {
	return nil, nil
}

func (s *stubPlanningRepo) CountsBySyncID(tx *gorm.DB, idSynchro string) (models.PlanningCounts, error) {
	return s.counts, nil
}

func (s *stubPlanningRepo) DeleteBySyncID(tx *gorm.DB, idSynchro string) error {
	return nil
}

func (s *stubPlanningRepo) Insert(tx *gorm.DB, plannings []models.Planning) error {
	return nil
}

func TestAuthenticate(t *testing.T) {
	repo := &stubLicenseRepo{license: models.License{ID: 3, IDSynchro: "SYNC01", IDClient: "secret"}}
	srv := NewSessionService(repo, &stubPlanningRepo{})

	license, err := srv.Authenticate("SYNC01", "secret")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if license.ID != 3 {
		t.Errorf("licence id = %d", license.ID)
	}
	if license.Tablets != models.DefaultTablets {
		t.Errorf("empty tablets column should default, got %q", license.Tablets)
	}
}

func TestAuthenticateInvalidCredentials(t *testing.T) {
	repo := &stubLicenseRepo{license: models.License{IDSynchro: "SYNC01", IDClient: "secret"}}
	srv := NewSessionService(repo, &stubPlanningRepo{})

	_, err := srv.Authenticate("SYNC01", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestUserInfo(t *testing.T) {
	config.Cfg.MobileConfigBaseURL = "https://downloads.example.fr/config"
	repo := &stubLicenseRepo{license: models.License{ID: 3, IDSynchro: "SYNC01"}}
	planning := &stubPlanningRepo{counts: models.PlanningCounts{Full: 2, Import: 1}}
	srv := NewSessionService(repo, planning)

	info, err := srv.UserInfo(3)
	if err != nil {
		t.Fatalf("user info: %v", err)
	}
	if info.PlanningCounts.Full != 2 || info.PlanningCounts.Import != 1 {
		t.Errorf("counts = %+v", info.PlanningCounts)
	}
	if info.MobileConfigURL != "https://downloads.example.fr/config/NuxiDev5-EBPGesComOL-GesCom.xml" {
		t.Errorf("mobile config url = %q", info.MobileConfigURL)
	}
}

func TestMobileConfigURL(t *testing.T) {
	config.Cfg.MobileConfigBaseURL = "https://downloads.example.fr/config"

	cases := []struct {
		tablets string
		want    string
	}{
		{"1;Label;ABC|Master;5;Mobile", "https://downloads.example.fr/config/NuxiDev5-ABC-Mobile.xml"},
		{"", "https://downloads.example.fr/config/NuxiDev5-EBPGesComOL-GesCom.xml"},
		{"1;Label;ABC", ""},
		{"1;Label;|Master;5;Mobile", ""},
	}
	for _, tc := range cases {
		if got := MobileConfigURL(tc.tablets); got != tc.want {
			t.Errorf("MobileConfigURL(%q) = %q, want %q", tc.tablets, got, tc.want)
		}
	}
}
