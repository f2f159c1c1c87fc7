// internal/services/cart_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Adittooo01/SneakPick/internal/models"
)

type CartService struct {
	db *gorm.DB
}

// Cart update actions accepted by UpdateItem.
const (
	CartActionIncrease = "increase"
	CartActionDecrease = "decrease"
	CartActionRemove   = "remove"
)

type CartItemView struct {
	ID          uuid.UUID `json:"id"`
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	TotalPrice  float64   `json:"total_price"`
}

type CartView struct {
	Items []CartItemView `json:"items"`
	Total float64        `json:"total"`
}

func NewCartService(db *gorm.DB) *CartService {
	return &CartService{db: db}
}

// AddItem puts quantity units of a product into the user's cart. The
// cart is created lazily, and a repeat add folds into the existing line
// item instead of creating a duplicate. The whole get-or-create plus
// increment sequence runs in one transaction so two concurrent adds for
// the same user cannot lose an update.
func (s *CartService) AddItem(userID, productID uuid.UUID, quantity int) error {
	if quantity < 1 {
		return errors.New("quantity must be a positive integer")
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, "id = ?", productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("product not found")
			}
			return fmt.Errorf("database error: %w", err)
		}

		cart, err := getOrCreateCart(tx, userID)
		if err != nil {
			return err
		}

		var item models.CartItem
		err = tx.Where("cart_id = ? AND product_id = ?", cart.ID, productID).First(&item).Error
		switch {
		case err == nil:
			if err := tx.Model(&item).
				UpdateColumn("quantity", gorm.Expr("quantity + ?", quantity)).Error; err != nil {
				return fmt.Errorf("failed to update cart item: %w", err)
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			item = models.CartItem{
				CartID:    cart.ID,
				ProductID: productID,
				Quantity:  quantity,
			}
			if err := tx.Create(&item).Error; err != nil {
				return fmt.Errorf("failed to create cart item: %w", err)
			}
		default:
			return fmt.Errorf("database error: %w", err)
		}

		return nil
	})
}

// GetCart renders the user's cart with derived line and grand totals.
// An empty cart is a valid zero-total state; one is created on first
// access if the user has none yet.
func (s *CartService) GetCart(userID uuid.UUID) (*CartView, error) {
	cart, err := getOrCreateCart(s.db, userID)
	if err != nil {
		return nil, err
	}

	var items []models.CartItem
	if err := s.db.Preload("Product").
		Where("cart_id = ?", cart.ID).
		Order("created_at").
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch cart items: %w", err)
	}

	view := &CartView{Items: make([]CartItemView, 0, len(items))}
	for _, item := range items {
		lineTotal := item.TotalPrice()
		view.Items = append(view.Items, CartItemView{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.Product.Name,
			Price:       item.Product.Price,
			Quantity:    item.Quantity,
			TotalPrice:  lineTotal,
		})
		view.Total += lineTotal
	}

	return view, nil
}

// UpdateItem applies one of increase/decrease/remove to a line item the
// caller owns. Decrease refuses to go below one unit; at the floor it is
// a silent no-op, not an error. An item belonging to another user's cart
// is reported as not found so existence never leaks across users.
func (s *CartService) UpdateItem(userID, itemID uuid.UUID, action string) error {
	var item models.CartItem
	err := s.db.Joins("JOIN carts ON carts.id = cart_items.cart_id").
		Where("cart_items.id = ? AND carts.user_id = ?", itemID, userID).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("cart item not found")
		}
		return fmt.Errorf("database error: %w", err)
	}

	switch action {
	case CartActionIncrease:
		if err := s.db.Model(&item).
			UpdateColumn("quantity", gorm.Expr("quantity + 1")).Error; err != nil {
			return fmt.Errorf("failed to update cart item: %w", err)
		}
	case CartActionDecrease:
		if item.Quantity > 1 {
			if err := s.db.Model(&item).
				UpdateColumn("quantity", gorm.Expr("quantity - 1")).Error; err != nil {
				return fmt.Errorf("failed to update cart item: %w", err)
			}
		}
	case CartActionRemove:
		// Hard delete so the (cart, product) unique index doesn't trip
		// over a soft-deleted row when the product is added again.
		if err := s.db.Unscoped().Delete(&item).Error; err != nil {
			return fmt.Errorf("failed to remove cart item: %w", err)
		}
	default:
		return errors.New("invalid action")
	}

	return nil
}

// getOrCreateCart enforces the one-cart-per-user invariant together
// with the unique index on carts.user_id.
func getOrCreateCart(db *gorm.DB, userID uuid.UUID) (*models.Cart, error) {
	var cart models.Cart
	if err := db.Where(models.Cart{UserID: userID}).FirstOrCreate(&cart).Error; err != nil {
		return nil, fmt.Errorf("failed to resolve cart: %w", err)
	}
	return &cart, nil
}
