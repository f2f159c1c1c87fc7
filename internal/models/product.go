// internal/models/product.go
package models

import (
	"github.com/lib/pq"
)

type Product struct {
	BaseModel
	Name              string         `json:"name" gorm:"size:255;not null;index"`
	Brand             string         `json:"brand" gorm:"size:255;not null;index"`
	ProductType       string         `json:"product_type" gorm:"size:100;index"`
	Size              string         `json:"size" gorm:"size:50"`
	Color             string         `json:"color" gorm:"size:50"`
	YearOfManufacture int            `json:"year_of_manufacture"`
	Price             float64        `json:"price" gorm:"type:decimal(10,2);not null"`
	Rating            float64        `json:"rating" gorm:"type:decimal(3,2);default:0"`
	ImageURL          string         `json:"image_url" gorm:"size:512"`
	Images            pq.StringArray `json:"images" gorm:"type:text[]"`

	// Relationships
	Reviews []Review `json:"reviews,omitempty" gorm:"foreignKey:ProductID"`
}
