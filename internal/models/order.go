// internal/models/order.go
package models

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	BaseModel
	UserID        uuid.UUID     `json:"user_id" gorm:"type:uuid;not null;index"`
	OrderDate     time.Time     `json:"order_date" gorm:"not null;index"`
	Status        OrderStatus   `json:"status" gorm:"type:varchar(20);default:'pending'"`
	TotalAmount   float64       `json:"total_amount" gorm:"type:decimal(10,2);not null"`
	PaymentStatus PaymentStatus `json:"payment_status" gorm:"type:varchar(20);default:'pending'"`

	User  User        `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Items []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID"`
}

type OrderItem struct {
	BaseModel
	OrderID   uuid.UUID `json:"order_id" gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null"`
	Quantity  int       `json:"quantity" gorm:"not null"`
	// Price is the unit price at order time, frozen independent of the
	// catalog so later catalog edits don't rewrite order history.
	Price float64 `json:"price" gorm:"type:decimal(10,2);not null"`

	Order   Order   `json:"order,omitempty" gorm:"foreignKey:OrderID"`
	Product Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}
