package repository

import (
	"connectoradminapi/models"

	"gorm.io/gorm"
)

// QueueRepository provides data access operations for the re-sync queue and
// agent endpoint registrations, both hosted on the queue database.
type QueueRepository interface {
	Exists(tx *gorm.DB, internalID, idSynchro string) (bool, error)
	Enqueue(tx *gorm.DB, entry *models.SyncQueueEntry) error
	DeleteOne(tx *gorm.DB, internalID, idSynchro string) error
	LatestEndpoint(tx *gorm.DB, idSynchro string) (*models.AgentEndpoint, error)
}

type queueRepository struct {
	db *gorm.DB
}

// NewQueueRepository creates a new queue repository over the queue database.
func NewQueueRepository(db *gorm.DB) QueueRepository {
	return &queueRepository{
		db: db,
	}
}

func (r *queueRepository) Exists(tx *gorm.DB, internalID, idSynchro string) (bool, error) {
	db := tx
	if db == nil {
		db = r.db
	}

	var count int64
	if err := db.Model(&models.SyncQueueEntry{}).
		Where("IDInterne = ? AND IDSynchro = ?", internalID, idSynchro).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *queueRepository) Enqueue(tx *gorm.DB, entry *models.SyncQueueEntry) error {
	db := tx
	if db == nil {
		db = r.db
	}
	return db.Create(entry).Error
}

// DeleteOne removes a single queue row for the record. The LIMIT guards
// against historical duplicate rows being wiped together.
func (r *queueRepository) DeleteOne(tx *gorm.DB, internalID, idSynchro string) error {
	db := tx
	if db == nil {
		db = r.db
	}
	return db.Exec("DELETE FROM syncnuxidev WHERE IDInterne = ? AND IDSynchro = ? LIMIT 1",
		internalID, idSynchro).Error
}

// LatestEndpoint returns the most recent agent registration of one customer,
// or nil when the agent never registered.
func (r *queueRepository) LatestEndpoint(tx *gorm.DB, idSynchro string) (*models.AgentEndpoint, error) {
	db := tx
	if db == nil {
		db = r.db
	}

	var endpoints []models.AgentEndpoint
	if err := db.Where("IDSynchro = ?", idSynchro).
		Order("DateHeure DESC").
		Limit(1).
		Find(&endpoints).Error; err != nil {
		return nil, err
	}
	if len(endpoints) == 0 {
		return nil, nil
	}
	return &endpoints[0], nil
}
