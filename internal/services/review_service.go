// internal/services/review_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Adittooo01/SneakPick/internal/models"
)

type ReviewService struct {
	db *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

// CreateReview validates and persists a review, then recomputes the
// product's stored rating as the arithmetic mean over its complete
// review set, new review included. Persist and recompute share one
// transaction so the stored average never drifts from the ledger.
func (s *ReviewService) CreateReview(userID, productID uuid.UUID, body string, rating int) (*models.Review, error) {
	if strings.TrimSpace(body) == "" {
		return nil, errors.New("review and rating cannot be empty")
	}
	if rating < 1 || rating > 5 {
		return nil, errors.New("rating must be between 1 and 5")
	}

	var review *models.Review
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, "id = ?", productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("product not found")
			}
			return fmt.Errorf("database error: %w", err)
		}

		review = &models.Review{
			UserID:    userID,
			ProductID: productID,
			Body:      body,
			Rating:    rating,
		}
		if err := tx.Create(review).Error; err != nil {
			return fmt.Errorf("failed to create review: %w", err)
		}

		// Full recompute over the review set. O(review count), fine at
		// this volume; a running sum/count would make it O(1) if review
		// traffic ever warrants it.
		var average float64
		if err := tx.Model(&models.Review{}).
			Where("product_id = ?", productID).
			Select("AVG(rating)").
			Scan(&average).Error; err != nil {
			return fmt.Errorf("failed to compute rating: %w", err)
		}

		if err := tx.Model(&product).UpdateColumn("rating", average).Error; err != nil {
			return fmt.Errorf("failed to update product rating: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return review, nil
}

func (s *ReviewService) GetProductReviews(productID uuid.UUID) ([]models.Review, error) {
	var product models.Product
	if err := s.db.First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("product not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	var reviews []models.Review
	if err := s.db.Preload("User").
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch reviews: %w", err)
	}

	return reviews, nil
}
