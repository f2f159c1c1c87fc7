// internal/models/promotion.go
package models

import "time"

// DiscountCode is a time-windowed, togglable promotional identifier.
// Codes are listed to users; no redemption logic applies them to a
// cart or order total.
type DiscountCode struct {
	BaseModel
	Code               string    `json:"code" gorm:"uniqueIndex;size:50;not null"`
	Description        string    `json:"description" gorm:"type:text"`
	DiscountPercentage float64   `json:"discount_percentage" gorm:"type:decimal(5,2);not null"`
	ValidFrom          time.Time `json:"valid_from" gorm:"not null"`
	ValidTo            time.Time `json:"valid_to" gorm:"not null"`
	IsActive           bool      `json:"is_active" gorm:"default:true"`
}

// IsValid reports whether the code is active and inside its validity
// window at the given instant.
func (d *DiscountCode) IsValid(now time.Time) bool {
	return d.IsActive && !now.Before(d.ValidFrom) && !now.After(d.ValidTo)
}
