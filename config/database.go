package config

import (
	"fmt"

	"connectoradminapi/pkg/logger"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Databases bundles the GORM handles for every logical store. Handles are
// opened once at startup and passed into repositories explicitly; there is
// no lazy per-request pool creation.
type Databases struct {
	Auth    *gorm.DB // licences2: credentials, options, connector XML column
	Sync    *gorm.DB // Synchro: planning schedules
	History *gorm.DB // syncsav: per-record sync results and logs
	Queue   *gorm.DB // syncnuxidev + DynDNS: pending records, agent endpoints
}

// ConnectDatabases opens every logical database from the loaded configuration.
// Any single failure aborts startup.
func ConnectDatabases() (*Databases, error) {
	auth, err := openMySQL(Cfg.AuthDB)
	if err != nil {
		return nil, fmt.Errorf("auth database: %w", err)
	}
	sync, err := openMySQL(Cfg.SyncDB)
	if err != nil {
		return nil, fmt.Errorf("sync database: %w", err)
	}
	history, err := openMySQL(Cfg.HistoryDB)
	if err != nil {
		return nil, fmt.Errorf("history database: %w", err)
	}
	queue, err := openMySQL(Cfg.QueueDB)
	if err != nil {
		return nil, fmt.Errorf("queue database: %w", err)
	}

	return &Databases{Auth: auth, Sync: sync, History: history, Queue: queue}, nil
}

// Close releases every underlying connection pool.
func (d *Databases) Close() {
	for _, db := range []*gorm.DB{d.Auth, d.Sync, d.History, d.Queue} {
		if db == nil {
			continue
		}
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}
}

func openMySQL(c MySQLConfig) (*gorm.DB, error) {
	logger.Infof("Connecting to database %s@%s:%d/%s", c.User, c.Host, c.Port, c.Name)

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.User,
		c.Pass,
		c.Host,
		c.Port,
		c.Name,
	)
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Errorf("GORM connection failed: %v", err)
		return nil, err
	}
	logger.Infof("GORM connected successfully to database %s", c.Name)

	return db, nil
}
