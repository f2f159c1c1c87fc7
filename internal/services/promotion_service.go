// internal/services/promotion_service.go
package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Adittooo01/SneakPick/internal/models"
)

type PromotionService struct {
	db *gorm.DB
}

func NewPromotionService(db *gorm.DB) *PromotionService {
	return &PromotionService{db: db}
}

// DiscountCodeView decorates a stored code with its validity at read time.
type DiscountCodeView struct {
	models.DiscountCode
	IsValidNow bool `json:"is_valid_now"`
}

// GetDiscountCodes lists every code with a validity flag evaluated against
// the current clock. Disabled and expired codes are included; the flag is
// what tells them apart.
func (s *PromotionService) GetDiscountCodes() ([]DiscountCodeView, error) {
	var codes []models.DiscountCode
	if err := s.db.Order("valid_to ASC").
		Find(&codes).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch discount codes: %w", err)
	}

	now := time.Now()
	views := make([]DiscountCodeView, 0, len(codes))
	for _, code := range codes {
		views = append(views, DiscountCodeView{
			DiscountCode: code,
			IsValidNow:   code.IsValid(now),
		})
	}
	return views, nil
}

// ValidateCode looks up a code by its string and checks the validity window.
func (s *PromotionService) ValidateCode(code string) (*models.DiscountCode, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, errors.New("discount code not found")
	}

	var discount models.DiscountCode
	if err := s.db.Where("UPPER(code) = UPPER(?)", code).First(&discount).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("discount code not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if !discount.IsValid(time.Now()) {
		return nil, errors.New("discount code is not valid")
	}
	return &discount, nil
}
