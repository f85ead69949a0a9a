// internal/models/audit.go
package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AuditLog struct {
	BaseModel
	UserID       *uuid.UUID     `json:"user_id" gorm:"type:uuid;index"`
	Action       string         `json:"action" gorm:"size:255;not null"`
	ResourceType string         `json:"resource_type" gorm:"size:100;index"`
	ResourceID   *uuid.UUID     `json:"resource_id" gorm:"type:uuid"`
	IPAddress    string         `json:"ip_address" gorm:"size:45"`
	UserAgent    string         `json:"user_agent" gorm:"size:500"`
	NewValues    datatypes.JSON `json:"new_values"`
}
