// internal/models/shipping.go
package models

type ShippingMethod struct {
	BaseModel
	Method                ShippingMethodType `json:"method" gorm:"type:varchar(20);uniqueIndex;not null"`
	Charge                float64            `json:"charge" gorm:"type:decimal(10,2);not null"`
	EstimatedDeliveryTime string             `json:"estimated_delivery_time" gorm:"size:100"`
	IsActive              bool               `json:"is_active" gorm:"default:true"`
}
