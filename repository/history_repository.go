package repository

import (
	"connectoradminapi/models"

	"gorm.io/gorm"
)

// HistoryFilter narrows a history listing. IDSynchro always scopes the
// query to one customer; the remaining fields are optional.
type HistoryFilter struct {
	IDSynchro  string
	ErrorsOnly bool
	Date       string // YYYY-MM-DD, matches the day of DateHeure
	Search     string // matched against RefDoc, Enreg and TypeEnreg
	Limit      int
	Offset     int
}

// HistoryRepository provides data access operations for archived sync records.
type HistoryRepository interface {
	List(tx *gorm.DB, filter HistoryFilter) ([]models.SyncHistoryEntry, int64, error)
	GetLog(tx *gorm.DB, id int64, idSynchro string) (string, error)
	GetRecord(tx *gorm.DB, internalID, idSynchro string) (*models.SyncHistoryEntry, error)
	UpdateRecord(tx *gorm.DB, internalID, idSynchro, record string) error
	UpdateStatus(tx *gorm.DB, internalID, idSynchro string, status int) error
}

type historyRepository struct {
	db *gorm.DB
}

// NewHistoryRepository creates a new history repository over the history database.
func NewHistoryRepository(db *gorm.DB) HistoryRepository {
	return &historyRepository{
		db: db,
	}
}

func (r *historyRepository) scope(db *gorm.DB, filter HistoryFilter) *gorm.DB {
	q := db.Model(&models.SyncHistoryEntry{}).Where("IDSynchro = ?", filter.IDSynchro)
	if filter.ErrorsOnly {
		q = q.Where("Etat = ?", models.SyncStatusError)
	}
	if filter.Date != "" {
		q = q.Where("DATE(DateHeure) = DATE(?)", filter.Date)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("RefDoc LIKE ? OR Enreg LIKE ? OR TypeEnreg LIKE ?", like, like, like)
	}
	return q
}

// List returns one page of history entries, newest first, plus the total
// row count under the same filter.
func (r *historyRepository) List(tx *gorm.DB, filter HistoryFilter) ([]models.SyncHistoryEntry, int64, error) {
	db := tx
	if db == nil {
		db = r.db
	}

	var total int64
	if err := r.scope(db, filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entries []models.SyncHistoryEntry
	if err := r.scope(db, filter).
		Order("IDSyncNuxiDev DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&entries).Error; err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

func (r *historyRepository) GetLog(tx *gorm.DB, id int64, idSynchro string) (string, error) {
	db := tx
	if db == nil {
		db = r.db
	}

	var entry models.SyncHistoryEntry
	if err := db.Select("Log").
		Where("IDSyncNuxiDev = ? AND IDSynchro = ?", id, idSynchro).
		First(&entry).Error; err != nil {
		return "", err
	}
	return entry.Log, nil
}

func (r *historyRepository) GetRecord(tx *gorm.DB, internalID, idSynchro string) (*models.SyncHistoryEntry, error) {
	db := tx
	if db == nil {
		db = r.db
	}

	var entry models.SyncHistoryEntry
	if err := db.Where("IDInterne = ? AND IDSynchro = ?", internalID, idSynchro).
		First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *historyRepository) UpdateRecord(tx *gorm.DB, internalID, idSynchro, record string) error {
	db := tx
	if db == nil {
		db = r.db
	}
	return db.Model(&models.SyncHistoryEntry{}).
		Where("IDInterne = ? AND IDSynchro = ?", internalID, idSynchro).
		Update("Enreg", record).Error
}

func (r *historyRepository) UpdateStatus(tx *gorm.DB, internalID, idSynchro string, status int) error {
	db := tx
	if db == nil {
		db = r.db
	}
	return db.Model(&models.SyncHistoryEntry{}).
		Where("IDInterne = ? AND IDSynchro = ?", internalID, idSynchro).
		Update("Etat", status).Error
}
