package models

import "time"

// AgentEndpoint is one heartbeat registration of a customer-operated agent.
// The agent re-registers its reachable address periodically; the most recent
// row is the current endpoint and a row older than the staleness window
// means the agent is presumed offline.
type AgentEndpoint struct {
	IDSynchro string    `gorm:"column:IDSynchro" json:"IDSynchro"`
	IP        string    `gorm:"column:IP_NuxiAutomate" json:"IP_NuxiAutomate"`
	Port      int       `gorm:"column:Port" json:"Port"`
	SeenAt    time.Time `gorm:"column:DateHeure" json:"DateHeure"`
}

// TableName specifies the static table name for GORM.
func (AgentEndpoint) TableName() string {
	return "DynDNS"
}
