package repository

import (
	"gorm.io/gorm"
)

// BaseRepository provides transaction management capabilities for one
// logical database.
type BaseRepository interface {
	Begin() *gorm.DB
}

type baseRepository struct {
	db *gorm.DB
}

// NewBaseRepository creates a base repository over the given database handle.
func NewBaseRepository(db *gorm.DB) BaseRepository {
	return &baseRepository{
		db: db,
	}
}

func (r *baseRepository) Begin() *gorm.DB {
	return r.db.Begin()
}
