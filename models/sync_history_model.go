package models

import "time"

// Sync record status values stored in the Etat column.
const (
	SyncStatusError   = -1
	SyncStatusPending = 0
	SyncStatusDone    = 1
)

// SyncHistoryEntry is one synchronized record's outcome as archived by the
// connector. Enreg carries the record's raw XML payload; Import optionally
// carries a URL to an attached file on the customer's FTP space.
type SyncHistoryEntry struct {
	IDSyncNuxiDev int64     `gorm:"primaryKey;column:IDSyncNuxiDev" json:"IDSyncNuxiDev"`
	IDSynchro     string    `gorm:"column:IDSynchro" json:"IDSynchro"`
	RecordType    string    `gorm:"column:TypeEnreg" json:"TypeEnreg"`
	EntryID       string    `gorm:"column:IDiSaisie" json:"IDiSaisie"`
	LineNumber    int       `gorm:"column:NumLigne" json:"NumLigne"`
	Timestamp     time.Time `gorm:"column:DateHeure" json:"DateHeure"`
	Record        string    `gorm:"column:Enreg" json:"Enreg"`
	DocRef        string    `gorm:"column:RefDoc" json:"RefDoc"`
	ElementType   string    `gorm:"column:TypeElement" json:"TypeElement"`
	InternalID    string    `gorm:"column:IDInterne" json:"IDInterne"`
	Status        int       `gorm:"column:Etat" json:"Etat"`
	Log           string    `gorm:"column:Log" json:"-"`
	ImportURL     string    `gorm:"column:Import" json:"Import"`
}

// TableName specifies the static table name for GORM.
func (SyncHistoryEntry) TableName() string {
	return "syncsav"
}
