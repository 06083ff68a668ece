package models

import "time"

// Planning is one scheduled synchronization slot for a customer. The table
// is the authoritative schedule store; saving replaces every row of the
// customer in one transaction.
type Planning struct {
	IDSynchro string    `gorm:"column:IDSynchro" json:"IDSynchro"`
	Serial    string    `gorm:"column:Serial" json:"-"`    // Connector licence serial, copied from the config document
	Day       string    `gorm:"column:Jour" json:"Jour"`   // "1".."7", "8" = every day
	Time      string    `gorm:"column:Heure" json:"Heure"` // HH:MM:SS, 15-minute granularity
	Kind      string    `gorm:"column:Ordre" json:"Ordre"` // C = full, R = incremental, I = import
	Execution time.Time `gorm:"column:Execution" json:"-"`
	Exe       string    `gorm:"column:Exe" json:"-"` // Connector executable name, copied from the config document
	IP        *string   `gorm:"column:ip" json:"-"`
}

// TableName specifies the static table name for GORM.
func (Planning) TableName() string {
	return "Synchro"
}

// PlanningCounts groups a customer's planning rows by sync kind.
type PlanningCounts struct {
	Full        int64 `json:"C"`
	Incremental int64 `json:"R"`
	Import      int64 `json:"I"`
}
