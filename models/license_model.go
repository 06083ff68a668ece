package models

// License represents one customer licence row. The ConfigConnector column
// holds the whole connector configuration XML document; every configuration
// read or write goes through this single opaque value.
type License struct {
	ID              uint   `gorm:"primaryKey;column:ID" json:"id"`
	IDSynchro       string `gorm:"column:IDSynchro" json:"IDSynchro"` // Customer sync identifier, doubles as login username
	IDClient        string `gorm:"column:IDClient" json:"-"`          // Client identifier, doubles as login password
	ConfigConnector string `gorm:"column:ConfigConnecteur" json:"ConfigConnecteur"`
	Premium         int    `gorm:"column:Premium" json:"Premium"`   // Premium licences may trigger remote agent syncs
	Options         string `gorm:"column:Options" json:"Options"`   // Feature option flags
	Tablets         string `gorm:"column:Tablettes" json:"Tablettes"`
	FTPPassword     string `gorm:"column:FTP1_Mdp" json:"-"` // Basic-auth secret for history file downloads
}

// DefaultTablets is the tablet descriptor applied when a licence row has
// none. Format: count;label;masterCode|masterName;version;mobileName.
const DefaultTablets = "1;Indéfini;EBPGesComOL|GesCom;5;GesCom"

// TableName specifies the static table name for GORM.
func (License) TableName() string {
	return "licences2"
}
