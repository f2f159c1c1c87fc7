// internal/models/payment.go
package models

import (
	"time"

	"github.com/google/uuid"
)

type Payment struct {
	BaseModel
	UserID        uuid.UUID     `json:"user_id" gorm:"type:uuid;not null;index"`
	OrderID       uuid.UUID     `json:"order_id" gorm:"type:uuid;not null;uniqueIndex"`
	PaymentDate   time.Time     `json:"payment_date" gorm:"not null"`
	Amount        float64       `json:"amount" gorm:"type:decimal(10,2);not null"`
	Method        PaymentMethod `json:"method" gorm:"type:varchar(50);default:'credit_card'"`
	Status        PaymentStatus `json:"status" gorm:"type:varchar(20);default:'pending';index"`
	TransactionID *string       `json:"transaction_id" gorm:"size:255;uniqueIndex"`

	User  User  `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Order Order `json:"order,omitempty" gorm:"foreignKey:OrderID"`
}
