// internal/services/payment_service.go
package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Adittooo01/SneakPick/internal/models"
	"github.com/Adittooo01/SneakPick/internal/utils"
)

type PaymentService struct {
	db *gorm.DB
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{db: db}
}

// PaymentDetailsInput carries the fields captured from the checkout form.
// Raw values are never persisted or written to logs.
type PaymentDetailsInput struct {
	Method        string
	AccountNumber string
	Password      string
}

// CapturePaymentDetails acknowledges a submission without charging anything.
// No gateway is involved; the reference it returns only proves the details
// passed validation.
func (s *PaymentService) CapturePaymentDetails(userID uuid.UUID, input PaymentDetailsInput) (string, error) {
	method := strings.TrimSpace(input.Method)
	account := strings.TrimSpace(input.AccountNumber)
	if method == "" || account == "" || input.Password == "" {
		return "", errors.New("invalid or missing payment details")
	}

	ref, err := utils.GenerateTransactionRef()
	if err != nil {
		return "", fmt.Errorf("failed to generate reference: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"user_id":             userID,
		"method":              method,
		"reference":           ref,
		"account_fingerprint": utils.HashString(account),
	}).Info("Payment details captured")

	return ref, nil
}

// GetLatestCompletedPayment returns the user's most recent completed
// payment, or nil when they have none.
func (s *PaymentService) GetLatestCompletedPayment(userID uuid.UUID) (*models.Payment, error) {
	var payment models.Payment
	err := s.db.Where("user_id = ? AND status = ?", userID, models.PaymentStatusCompleted).
		Order("payment_date DESC").
		First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &payment, nil
}

// GetPaymentHistory returns the user's payments newest first.
func (s *PaymentService) GetPaymentHistory(userID uuid.UUID, params utils.PaginationParams) ([]models.Payment, int64, error) {
	var payments []models.Payment
	var total int64

	query := s.db.Model(&models.Payment{}).Where("user_id = ?", userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count payments: %w", err)
	}

	if err := utils.ApplyPagination(query.Order("payment_date DESC"), params).
		Find(&payments).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch payments: %w", err)
	}

	return payments, total, nil
}

// RecordPayment stores a payment row tied to an order. Used by seeding and
// by admin tooling; the storefront itself never charges.
func (s *PaymentService) RecordPayment(userID, orderID uuid.UUID, amount float64, method models.PaymentMethod, status models.PaymentStatus) (*models.Payment, error) {
	payment := models.Payment{
		UserID:      userID,
		OrderID:     orderID,
		PaymentDate: time.Now(),
		Amount:      amount,
		Method:      method,
		Status:      status,
	}
	if status == models.PaymentStatusCompleted {
		ref, err := utils.GenerateTransactionRef()
		if err != nil {
			return nil, fmt.Errorf("failed to generate reference: %w", err)
		}
		payment.TransactionID = &ref
	}
	if err := s.db.Create(&payment).Error; err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}
	return &payment, nil
}
