// internal/services/shipping_service.go
package services

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Adittooo01/SneakPick/internal/models"
)

type ShippingService struct {
	db             *gorm.DB
	paymentService *PaymentService
}

func NewShippingService(db *gorm.DB, paymentService *PaymentService) *ShippingService {
	return &ShippingService{db: db, paymentService: paymentService}
}

// ShippingPreview pairs the selectable methods with an order total preview
// for the checkout page.
type ShippingPreview struct {
	Methods       []models.ShippingMethod `json:"methods"`
	PaymentAmount float64                 `json:"payment_amount"`
	DefaultCharge float64                 `json:"default_charge"`
	TotalPreview  float64                 `json:"total_preview"`
}

// GetActiveMethods returns the enabled shipping methods, cheapest first.
func (s *ShippingService) GetActiveMethods() ([]models.ShippingMethod, error) {
	var methods []models.ShippingMethod
	if err := s.db.Where("is_active = ?", true).
		Order("charge ASC").
		Find(&methods).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch shipping methods: %w", err)
	}
	return methods, nil
}

// GetShippingPreview combines the user's latest completed payment with the
// cheapest active method. A user with no completed payment previews the
// shipping charge alone.
func (s *ShippingService) GetShippingPreview(userID uuid.UUID) (*ShippingPreview, error) {
	methods, err := s.GetActiveMethods()
	if err != nil {
		return nil, err
	}

	preview := &ShippingPreview{Methods: methods}
	if len(methods) > 0 {
		preview.DefaultCharge = methods[0].Charge
	}

	payment, err := s.paymentService.GetLatestCompletedPayment(userID)
	if err != nil {
		return nil, err
	}
	if payment != nil {
		preview.PaymentAmount = payment.Amount
	}

	preview.TotalPreview = preview.PaymentAmount + preview.DefaultCharge
	return preview, nil
}
