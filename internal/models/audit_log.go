package models

import "time"

// AuditLog is one entry in the append-only account activity trail. UserID
// is not a foreign key, so entries outlive the account.
type AuditLog struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;index" json:"user_id"`
	Action       string    `gorm:"size:50;not null" json:"action"`
	ResourceType string    `gorm:"size:50;not null" json:"resource_type"`
	ResourceID   uint      `json:"resource_id"`
	IPAddress    string    `gorm:"size:45" json:"ip_address"`
	Changes      string    `json:"changes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
