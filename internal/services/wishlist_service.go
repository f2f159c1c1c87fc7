// internal/services/wishlist_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Adittooo01/SneakPick/internal/models"
)

type WishlistService struct {
	db *gorm.DB
}

func NewWishlistService(db *gorm.DB) *WishlistService {
	return &WishlistService{db: db}
}

// AddProduct saves a product to the user's wishlist. Repeat adds are
// idempotent via the (user, product) uniqueness.
func (s *WishlistService) AddProduct(userID, productID uuid.UUID) error {
	var product models.Product
	if err := s.db.First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("product not found")
		}
		return fmt.Errorf("database error: %w", err)
	}

	var entry models.Wishlist
	if err := s.db.Where(models.Wishlist{UserID: userID, ProductID: productID}).
		FirstOrCreate(&entry).Error; err != nil {
		return fmt.Errorf("failed to add to wishlist: %w", err)
	}

	return nil
}

// RemoveProduct deletes the wishlist entry if present; removing an
// absent entry is not an error.
func (s *WishlistService) RemoveProduct(userID, productID uuid.UUID) error {
	if err := s.db.Unscoped().
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.Wishlist{}).Error; err != nil {
		return fmt.Errorf("failed to remove from wishlist: %w", err)
	}
	return nil
}

func (s *WishlistService) GetWishlist(userID uuid.UUID) ([]models.Wishlist, error) {
	var entries []models.Wishlist
	if err := s.db.Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch wishlist: %w", err)
	}
	return entries, nil
}
