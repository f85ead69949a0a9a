// internal/models/product.go
package models

import (
	"github.com/google/uuid"
)

// Product is the aggregate root. Its id is generated once at creation and
// never changes. The three statistics columns are read-only for general
// writes: they start at zero and move only through the statistic operation.
type Product struct {
	BaseModel
	Name             string    `json:"name" gorm:"size:255;not null;index"`
	ShortDescription string    `json:"short_description" gorm:"size:500"`
	Price            *string   `json:"price" gorm:"size:40"`
	Image            string    `json:"image" gorm:"size:500"`
	Rating           float64   `json:"rating" gorm:"type:decimal(3,2);default:0"`
	ReviewsCount     int64     `json:"reviews_count" gorm:"default:0"`
	Views            int64     `json:"views" gorm:"default:0"`
	CreatedBy        uuid.UUID `json:"created_by" gorm:"type:uuid"`
	UpdatedBy        uuid.UUID `json:"updated_by" gorm:"type:uuid"`
}
