package services

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"connectoradminapi/models"
	"connectoradminapi/pkg/logger"
	"connectoradminapi/repository"
)

// ImportFile is a proxied attachment downloaded from the customer's storage
// space on behalf of the browser.
type ImportFile struct {
	FileName    string
	ContentType string
	Data        []byte
}

// HistoryService exposes the synchronization history archive: listing,
// per-record log and payload access, and status transitions that feed the
// re-sync queue.
type HistoryService interface {
	List(filter repository.HistoryFilter) ([]models.SyncHistoryEntry, int64, error)
	GetLog(id int64, idSynchro string) (string, error)
	GetRecord(internalID, idSynchro string) (*models.SyncHistoryEntry, error)
	UpdateRecord(internalID, idSynchro, record string) error
	UpdateStatus(internalID, idSynchro string, status int) error
	DownloadImportFile(license *models.License, internalID string) (*ImportFile, error)
}

type historyService struct {
	historyRepo repository.HistoryRepository
	queueRepo   repository.QueueRepository
	httpClient  *http.Client
}

// NewHistoryService creates a new history service instance.
func NewHistoryService(historyRepo repository.HistoryRepository, queueRepo repository.QueueRepository) HistoryService {
	return &historyService{
		historyRepo: historyRepo,
		queueRepo:   queueRepo,
		httpClient:  &http.Client{Timeout: 60 * time.Second},
	}
}

func (s *historyService) List(filter repository.HistoryFilter) ([]models.SyncHistoryEntry, int64, error) {
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	return s.historyRepo.List(nil, filter)
}

func (s *historyService) GetLog(id int64, idSynchro string) (string, error) {
	return s.historyRepo.GetLog(nil, id, idSynchro)
}

func (s *historyService) GetRecord(internalID, idSynchro string) (*models.SyncHistoryEntry, error) {
	return s.historyRepo.GetRecord(nil, internalID, idSynchro)
}

func (s *historyService) UpdateRecord(internalID, idSynchro, record string) error {
	logger.Infof("Updating archived record %s for %s", internalID, idSynchro)
	return s.historyRepo.UpdateRecord(nil, internalID, idSynchro, record)
}

// UpdateStatus moves one record between done, error and pending. Setting a
// record back to pending re-enqueues it from the archive copy; marking it
// done or failed removes it from the queue. The archive and queue live on
// separate databases, so the two steps are sequential rather than one
// transaction; the archive status is only updated once the queue step
// succeeded.
func (s *historyService) UpdateStatus(internalID, idSynchro string, status int) error {
	switch status {
	case models.SyncStatusDone, models.SyncStatusError:
		if err := s.queueRepo.DeleteOne(nil, internalID, idSynchro); err != nil {
			return fmt.Errorf("failed to dequeue record %s: %w", internalID, err)
		}
	case models.SyncStatusPending:
		queued, err := s.queueRepo.Exists(nil, internalID, idSynchro)
		if err != nil {
			return fmt.Errorf("failed to check queue for record %s: %w", internalID, err)
		}
		if !queued {
			entry, err := s.historyRepo.GetRecord(nil, internalID, idSynchro)
			if err != nil {
				return fmt.Errorf("failed to load archived record %s: %w", internalID, err)
			}
			queueEntry := &models.SyncQueueEntry{
				IDSynchro:   entry.IDSynchro,
				RecordType:  entry.RecordType,
				EntryID:     entry.EntryID,
				LineNumber:  entry.LineNumber,
				Timestamp:   entry.Timestamp,
				Record:      entry.Record,
				DocRef:      entry.DocRef,
				ElementType: entry.ElementType,
				InternalID:  entry.InternalID,
			}
			if err := s.queueRepo.Enqueue(nil, queueEntry); err != nil {
				return fmt.Errorf("failed to enqueue record %s: %w", internalID, err)
			}
		}
	default:
		return fmt.Errorf("invalid status value: %d", status)
	}

	if err := s.historyRepo.UpdateStatus(nil, internalID, idSynchro, status); err != nil {
		return fmt.Errorf("failed to update status of record %s: %w", internalID, err)
	}
	logger.Infof("Record %s of %s moved to status %d", internalID, idSynchro, status)
	return nil
}

// DownloadImportFile fetches the attachment referenced by the record's
// Import column, authenticating with the customer's storage credentials.
func (s *historyService) DownloadImportFile(license *models.License, internalID string) (*ImportFile, error) {
	entry, err := s.historyRepo.GetRecord(nil, internalID, license.IDSynchro)
	if err != nil {
		return nil, fmt.Errorf("failed to load archived record %s: %w", internalID, err)
	}
	if entry.ImportURL == "" {
		return nil, fmt.Errorf("record %s has no attached file", internalID)
	}

	req, err := http.NewRequest(http.MethodGet, entry.ImportURL, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid attachment URL: %w", err)
	}
	req.SetBasicAuth(license.IDSynchro, license.FTPPassword)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download attachment: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("attachment server returned status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read attachment: %w", err)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return &ImportFile{
		FileName:    fileNameFromURL(entry.ImportURL),
		ContentType: contentType,
		Data:        data,
	}, nil
}

func fileNameFromURL(url string) string {
	name := url
	for i := len(url) - 1; i >= 0; i-- {
		if url[i] == '/' {
			name = url[i+1:]
			break
		}
	}
	if name == "" {
		return "attachment"
	}
	return name
}
