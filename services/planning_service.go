package services

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"connectoradminapi/configdoc"
	"connectoradminapi/models"
	"connectoradminapi/pkg/logger"
	"connectoradminapi/repository"
)

var planningTimePattern = regexp.MustCompile(`^([01]\d|2[0-3]):(00|15|30|45)$`)

// PlanningService manages synchronization schedules. The relational table
// is authoritative; the legacy subtree of the configuration document only
// backfills the display for customers that never saved through the console.
type PlanningService interface {
	GetPlannings(license *models.License) ([]configdoc.PlanningEntry, error)
	GetCounts(idSynchro string) (models.PlanningCounts, error)
	SavePlannings(license *models.License, entries []configdoc.PlanningEntry) error
}

type planningService struct {
	baseRepo     repository.BaseRepository
	planningRepo repository.PlanningRepository
}

// NewPlanningService creates a new planning service instance.
func NewPlanningService(baseRepo repository.BaseRepository, planningRepo repository.PlanningRepository) PlanningService {
	return &planningService{
		baseRepo:     baseRepo,
		planningRepo: planningRepo,
	}
}

func (s *planningService) GetPlannings(license *models.License) ([]configdoc.PlanningEntry, error) {
	rows, err := s.planningRepo.ListBySyncID(nil, license.IDSynchro)
	if err != nil {
		return nil, fmt.Errorf("failed to list plannings for %s: %w", license.IDSynchro, err)
	}

	if len(rows) > 0 {
		entries := make([]configdoc.PlanningEntry, 0, len(rows))
		for _, row := range rows {
			entries = append(entries, configdoc.PlanningEntry{Day: row.Day, Time: row.Time, Kind: row.Kind})
		}
		return entries, nil
	}

	doc, err := configdoc.Parse(license.ConfigConnector)
	if err != nil {
		// A broken document should not block the schedule page; the table
		// simply has nothing to show yet.
		logger.Warnf("Legacy planning fallback unavailable for %s: %v", license.IDSynchro, err)
		return []configdoc.PlanningEntry{}, nil
	}
	return configdoc.ReadLegacyPlannings(doc), nil
}

func (s *planningService) GetCounts(idSynchro string) (models.PlanningCounts, error) {
	return s.planningRepo.CountsBySyncID(nil, idSynchro)
}

// SavePlannings replaces the whole schedule of one customer: delete every
// row scoped to the sync id, then insert the new set, in one transaction.
func (s *planningService) SavePlannings(license *models.License, entries []configdoc.PlanningEntry) error {
	for _, e := range entries {
		if err := validatePlanning(e); err != nil {
			return err
		}
	}

	// Serial and Exe identify the connector build; they travel from the
	// configuration document into every schedule row.
	var serial, exe string
	if doc, err := configdoc.Parse(license.ConfigConnector); err == nil {
		serial = doc.FindAnyText("Serial")
		exe = doc.FindAnyText("Exe")
	}

	rows := make([]models.Planning, 0, len(entries))
	now := time.Now()
	for _, e := range entries {
		rows = append(rows, models.Planning{
			IDSynchro: license.IDSynchro,
			Serial:    serial,
			Day:       e.Day,
			Time:      e.Time + ":00",
			Kind:      e.Kind,
			Execution: now,
			Exe:       exe,
		})
	}

	tx := s.baseRepo.Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin planning transaction: %w", tx.Error)
	}
	committed := false
	defer func() {
		if !committed {
			tx.Rollback()
		}
	}()

	if err := s.planningRepo.DeleteBySyncID(tx, license.IDSynchro); err != nil {
		return fmt.Errorf("failed to clear plannings for %s: %w", license.IDSynchro, err)
	}
	if err := s.planningRepo.Insert(tx, rows); err != nil {
		return fmt.Errorf("failed to insert plannings for %s: %w", license.IDSynchro, err)
	}
	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit plannings for %s: %w", license.IDSynchro, err)
	}
	committed = true

	logger.Infof("Replaced plannings for %s: %d entries", license.IDSynchro, len(rows))
	return nil
}

func validatePlanning(e configdoc.PlanningEntry) error {
	day, err := strconv.Atoi(e.Day)
	if err != nil || day < 1 || day > 8 {
		return fmt.Errorf("invalid planning day: %q", e.Day)
	}
	if !planningTimePattern.MatchString(e.Time) {
		return fmt.Errorf("invalid planning time: %q", e.Time)
	}
	if !configdoc.IsValidPlanningKind(e.Kind) {
		return fmt.Errorf("invalid planning kind: %q", e.Kind)
	}
	return nil
}
