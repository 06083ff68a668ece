package bootstrap

import (
	"fmt"

	"connectoradminapi/config"
	"connectoradminapi/models"
	"connectoradminapi/pkg/logger"

	"gorm.io/gorm"
)

// VerifyDatabases pings every configured database connection and logs the
// licence count so a misconfigured environment fails at startup instead of
// on the first request.
func VerifyDatabases(dbs *config.Databases) error {
	logger.Infof("Verifying database connections...")

	checks := []struct {
		name string
		db   *gorm.DB
	}{
		{"auth", dbs.Auth},
		{"sync", dbs.Sync},
		{"history", dbs.History},
		{"queue", dbs.Queue},
	}
	for _, check := range checks {
		if err := ping(check.name, check.db); err != nil {
			return err
		}
	}

	var licenceCount int64
	if err := dbs.Auth.Model(&models.License{}).Count(&licenceCount).Error; err != nil {
		logger.Errorf("Failed to count licences: %v", err)
		return fmt.Errorf("failed to count licences: %v", err)
	}
	logger.Infof("Database verification completed, %d licences available", licenceCount)
	return nil
}

func ping(name string, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		logger.Errorf("Failed to access %s database handle: %v", name, err)
		return fmt.Errorf("failed to access %s database handle: %v", name, err)
	}
	if err := sqlDB.Ping(); err != nil {
		logger.Errorf("Failed to ping %s database: %v", name, err)
		return fmt.Errorf("failed to ping %s database: %v", name, err)
	}
	logger.Infof("Connected to %s database", name)
	return nil
}
