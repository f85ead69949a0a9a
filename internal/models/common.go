// internal/models/common.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primary_key"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// FacetBase carries the fields shared by every facet row. A facet row is
// owned 1:1 by a product (unique product_id) and is never soft-deleted:
// per product and facet kind it is either absent or present.
type FacetBase struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null;uniqueIndex"`
	CreatedBy uuid.UUID `json:"created_by" gorm:"type:uuid"`
	UpdatedBy uuid.UUID `json:"updated_by" gorm:"type:uuid"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Enums
type UserType string

const (
	UserTypeAdmin  UserType = "admin"
	UserTypeEditor UserType = "editor"
	UserTypeViewer UserType = "viewer"
)

type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
)

// StatName identifies the read-only product statistics that may only be
// mutated through the dedicated statistic operation.
type StatName string

const (
	StatRating       StatName = "rating"
	StatReviewsCount StatName = "reviewsCount"
	StatViews        StatName = "views"
)
