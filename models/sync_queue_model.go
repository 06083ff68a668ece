package models

import "time"

// SyncQueueEntry is one record waiting to be re-synchronized. Rows are
// copied back from the history archive when a record's status is reset to
// pending, and removed when the record completes or fails.
type SyncQueueEntry struct {
	IDSynchro   string    `gorm:"column:IDSynchro" json:"IDSynchro"`
	RecordType  string    `gorm:"column:TypeEnreg" json:"TypeEnreg"`
	EntryID     string    `gorm:"column:IDiSaisie" json:"IDiSaisie"`
	LineNumber  int       `gorm:"column:NumLigne" json:"NumLigne"`
	Timestamp   time.Time `gorm:"column:DateHeure" json:"DateHeure"`
	Record      string    `gorm:"column:Enreg" json:"Enreg"`
	DocRef      string    `gorm:"column:RefDoc" json:"RefDoc"`
	ElementType string    `gorm:"column:TypeElement" json:"TypeElement"`
	InternalID  string    `gorm:"column:IDInterne" json:"IDInterne"`
}

// TableName specifies the static table name for GORM.
func (SyncQueueEntry) TableName() string {
	return "syncnuxidev"
}
