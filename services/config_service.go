package services

import (
	"fmt"

	"connectoradminapi/configdoc"
	"connectoradminapi/models"
	"connectoradminapi/pkg/logger"
	"connectoradminapi/repository"
	"connectoradminapi/utils"
)

// ConfigService projects the stored configuration document into section
// views and merges edited views back. Every operation loads the document
// fresh from the licence row; a write re-serializes the whole tree and
// replaces the stored column value (last writer wins at document level).
type ConfigService interface {
	GetSources(licenseID uint) ([]configdoc.Source, error)
	SaveSources(licenseID uint, sources []configdoc.Source) error

	GetExternalLinks(licenseID uint) (configdoc.ExternalLinksView, error)
	SaveExternalLinks(licenseID uint, view configdoc.ExternalLinksView) error

	GetCalendars(licenseID uint) (configdoc.CalendarsView, []configdoc.Employee, error)
	SaveCalendars(licenseID uint, view configdoc.CalendarsView) error

	GetComplement(licenseID uint) (configdoc.ComplementView, error)
	SaveComplement(licenseID uint, view configdoc.ComplementView) error

	GetExclusions(licenseID uint) (configdoc.ExclusionsView, error)
	SaveExclusions(licenseID uint, entries []configdoc.ExclusionEntry) error

	GetSyncData(licenseID uint) ([]configdoc.SyncDataToggle, []configdoc.SyncElement, error)
	SaveSyncData(licenseID uint, toggles []configdoc.SyncDataToggle) error

	GetTerminals(licenseID uint) ([]configdoc.TerminalView, error)
	UpdateTerminal(licenseID uint, index int, view configdoc.TerminalView) error
}

type configService struct {
	licenseRepo repository.LicenseRepository
}

// NewConfigService creates a new configuration service instance.
func NewConfigService(licenseRepo repository.LicenseRepository) ConfigService {
	return &configService{
		licenseRepo: licenseRepo,
	}
}

func (s *configService) load(licenseID uint) (*models.License, *configdoc.Document, error) {
	license, err := s.licenseRepo.GetByID(nil, licenseID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load licence %d: %w", licenseID, err)
	}
	doc, err := configdoc.Parse(license.ConfigConnector)
	if err != nil {
		return nil, nil, err
	}
	return license, doc, nil
}

// mutate runs one projector write against a freshly loaded document and
// persists the re-serialized result. A rejected mutation leaves the stored
// value untouched.
func (s *configService) mutate(licenseID uint, apply func(doc *configdoc.Document) error) error {
	license, doc, err := s.load(licenseID)
	if err != nil {
		return err
	}
	if err := apply(doc); err != nil {
		return err
	}
	out, err := doc.Serialize()
	if err != nil {
		return err
	}
	if err := s.licenseRepo.UpdateConfig(nil, license.ID, out); err != nil {
		return fmt.Errorf("failed to persist configuration for licence %d: %w", license.ID, err)
	}
	logger.Debugf("Configuration updated for licence %d (%d bytes)", license.ID, len(out))
	return nil
}

func (s *configService) GetSources(licenseID uint) ([]configdoc.Source, error) {
	_, doc, err := s.load(licenseID)
	if err != nil {
		return nil, err
	}
	return configdoc.ReadSources(doc), nil
}

func (s *configService) SaveSources(licenseID uint, sources []configdoc.Source) error {
	for i, src := range sources {
		if src.Server != "" && !utils.IsValidDatabaseHost(src.Server) {
			return fmt.Errorf("invalid server host in source %d: %q", i+1, src.Server)
		}
	}
	logger.Infof("Saving %d sources for licence %d", len(sources), licenseID)
	return s.mutate(licenseID, func(doc *configdoc.Document) error {
		configdoc.WriteSources(doc, sources)
		return nil
	})
}

func (s *configService) GetExternalLinks(licenseID uint) (configdoc.ExternalLinksView, error) {
	_, doc, err := s.load(licenseID)
	if err != nil {
		return configdoc.ExternalLinksView{}, err
	}
	return configdoc.ReadExternalLinks(doc), nil
}

func (s *configService) SaveExternalLinks(licenseID uint, view configdoc.ExternalLinksView) error {
	logger.Infof("Saving %d external links for licence %d", len(view.Links), licenseID)
	return s.mutate(licenseID, func(doc *configdoc.Document) error {
		configdoc.WriteExternalLinks(doc, view)
		return nil
	})
}

func (s *configService) GetCalendars(licenseID uint) (configdoc.CalendarsView, []configdoc.Employee, error) {
	_, doc, err := s.load(licenseID)
	if err != nil {
		return configdoc.CalendarsView{}, nil, err
	}
	return configdoc.ReadCalendars(doc), configdoc.ReadEmployees(doc), nil
}

func (s *configService) SaveCalendars(licenseID uint, view configdoc.CalendarsView) error {
	if view.AgendaType != configdoc.AgendaNone &&
		view.AgendaType != configdoc.AgendaGoogle &&
		view.AgendaType != configdoc.AgendaMicrosoft {
		return fmt.Errorf("unknown agenda type: %q", view.AgendaType)
	}
	logger.Infof("Saving calendar section for licence %d (type=%q, %d mappings)",
		licenseID, view.AgendaType, len(view.Mappings))
	return s.mutate(licenseID, func(doc *configdoc.Document) error {
		configdoc.WriteCalendars(doc, view)
		return nil
	})
}

func (s *configService) GetComplement(licenseID uint) (configdoc.ComplementView, error) {
	_, doc, err := s.load(licenseID)
	if err != nil {
		return configdoc.ComplementView{}, err
	}
	return configdoc.ReadComplement(doc), nil
}

func (s *configService) SaveComplement(licenseID uint, view configdoc.ComplementView) error {
	logger.Infof("Saving complement section for licence %d", licenseID)
	return s.mutate(licenseID, func(doc *configdoc.Document) error {
		configdoc.WriteComplement(doc, view)
		return nil
	})
}

func (s *configService) GetExclusions(licenseID uint) (configdoc.ExclusionsView, error) {
	_, doc, err := s.load(licenseID)
	if err != nil {
		return configdoc.ExclusionsView{}, err
	}
	return configdoc.ReadExclusions(doc), nil
}

func (s *configService) SaveExclusions(licenseID uint, entries []configdoc.ExclusionEntry) error {
	logger.Infof("Saving %d exclusion entries for licence %d", len(entries), licenseID)
	return s.mutate(licenseID, func(doc *configdoc.Document) error {
		configdoc.WriteExclusions(doc, entries)
		return nil
	})
}

func (s *configService) GetSyncData(licenseID uint) ([]configdoc.SyncDataToggle, []configdoc.SyncElement, error) {
	_, doc, err := s.load(licenseID)
	if err != nil {
		return nil, nil, err
	}
	return configdoc.ReadSyncData(doc), configdoc.ReadSyncElements(doc), nil
}

func (s *configService) SaveSyncData(licenseID uint, toggles []configdoc.SyncDataToggle) error {
	logger.Infof("Saving %d sync data toggles for licence %d", len(toggles), licenseID)
	return s.mutate(licenseID, func(doc *configdoc.Document) error {
		configdoc.WriteSyncData(doc, toggles)
		return nil
	})
}

func (s *configService) GetTerminals(licenseID uint) ([]configdoc.TerminalView, error) {
	_, doc, err := s.load(licenseID)
	if err != nil {
		return nil, err
	}
	return configdoc.ReadTerminals(doc), nil
}

func (s *configService) UpdateTerminal(licenseID uint, index int, view configdoc.TerminalView) error {
	logger.Infof("Updating terminal %d for licence %d", index, licenseID)
	return s.mutate(licenseID, func(doc *configdoc.Document) error {
		return configdoc.UpdateTerminal(doc, index, view)
	})
}
