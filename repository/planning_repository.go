package repository

import (
	"connectoradminapi/models"

	"gorm.io/gorm"
)

// PlanningRepository provides data access operations for planning schedules.
type PlanningRepository interface {
	ListBySyncID(tx *gorm.DB, idSynchro string) ([]models.Planning, error)
	CountsBySyncID(tx *gorm.DB, idSynchro string) (models.PlanningCounts, error)
	DeleteBySyncID(tx *gorm.DB, idSynchro string) error
	Insert(tx *gorm.DB, plannings []models.Planning) error
}

type planningRepository struct {
	db *gorm.DB
}

// NewPlanningRepository creates a new planning repository over the sync database.
func NewPlanningRepository(db *gorm.DB) PlanningRepository {
	return &planningRepository{
		db: db,
	}
}

// ListBySyncID returns every planning row of one customer ordered by time
// then day, with the time column normalized to HH:MM.
func (r *planningRepository) ListBySyncID(tx *gorm.DB, idSynchro string) ([]models.Planning, error) {
	db := tx
	if db == nil {
		db = r.db
	}

	var plannings []models.Planning
	if err := db.Model(&models.Planning{}).
		Select(`IDSynchro, Jour, TIME_FORMAT(Heure, "%H:%i") as Heure, Ordre`).
		Where("IDSynchro = ?", idSynchro).
		Order("Heure, Jour").
		Find(&plannings).Error; err != nil {
		return nil, err
	}
	return plannings, nil
}

func (r *planningRepository) CountsBySyncID(tx *gorm.DB, idSynchro string) (models.PlanningCounts, error) {
	db := tx
	if db == nil {
		db = r.db
	}

	var rows []struct {
		Ordre string
		Total int64
	}
	if err := db.Model(&models.Planning{}).
		Select("Ordre, COUNT(*) as total").
		Where("IDSynchro = ?", idSynchro).
		Group("Ordre").
		Find(&rows).Error; err != nil {
		return models.PlanningCounts{}, err
	}

	var counts models.PlanningCounts
	for _, row := range rows {
		switch row.Ordre {
		case "C":
			counts.Full = row.Total
		case "R":
			counts.Incremental = row.Total
		case "I":
			counts.Import = row.Total
		}
	}
	return counts, nil
}

func (r *planningRepository) DeleteBySyncID(tx *gorm.DB, idSynchro string) error {
	db := tx
	if db == nil {
		db = r.db
	}
	return db.Where("IDSynchro = ?", idSynchro).Delete(&models.Planning{}).Error
}

func (r *planningRepository) Insert(tx *gorm.DB, plannings []models.Planning) error {
	if len(plannings) == 0 {
		return nil
	}
	db := tx
	if db == nil {
		db = r.db
	}
	return db.Create(&plannings).Error
}
