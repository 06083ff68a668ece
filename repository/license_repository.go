package repository

import (
	"fmt"

	"connectoradminapi/models"

	"gorm.io/gorm"
)

// LicenseRepository provides data access operations for licence rows.
type LicenseRepository interface {
	GetByCredentials(tx *gorm.DB, idSynchro, idClient string) (*models.License, error)
	GetByID(tx *gorm.DB, id uint) (*models.License, error)
	UpdateConfig(tx *gorm.DB, id uint, configXML string) error
}

type licenseRepository struct {
	db *gorm.DB
}

// NewLicenseRepository creates a new licence repository over the auth database.
func NewLicenseRepository(db *gorm.DB) LicenseRepository {
	return &licenseRepository{
		db: db,
	}
}

func (r *licenseRepository) GetByCredentials(tx *gorm.DB, idSynchro, idClient string) (*models.License, error) {
	db := tx
	if db == nil {
		db = r.db
	}

	var license models.License
	if err := db.Where("IDSynchro = ? AND IDClient = ?", idSynchro, idClient).First(&license).Error; err != nil {
		return nil, err
	}
	return &license, nil
}

func (r *licenseRepository) GetByID(tx *gorm.DB, id uint) (*models.License, error) {
	db := tx
	if db == nil {
		db = r.db
	}

	var license models.License
	if err := db.Where("ID = ?", id).First(&license).Error; err != nil {
		return nil, err
	}
	return &license, nil
}

// UpdateConfig replaces the stored configuration document of one licence.
// The whole column value is swapped; a zero-row update means the licence
// disappeared and is reported as an error.
func (r *licenseRepository) UpdateConfig(tx *gorm.DB, id uint, configXML string) error {
	db := tx
	if db == nil {
		db = r.db
	}

	res := db.Model(&models.License{}).Where("ID = ?", id).Update("ConfigConnecteur", configXML)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("licence %d not found", id)
	}
	return nil
}
