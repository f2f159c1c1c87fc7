// internal/models/cart.go
package models

import (
	"github.com/google/uuid"
)

// Cart is the per-user line item container. The uniqueIndex on UserID
// enforces the one-cart-per-user invariant at the schema level; carts
// are created lazily via FirstOrCreate and never deleted.
type Cart struct {
	BaseModel
	UserID uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex"`

	User  User       `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Items []CartItem `json:"items,omitempty" gorm:"foreignKey:CartID"`
}

// CartItem is a (cart, product, quantity) tuple. The composite unique
// index guarantees at most one line per product per cart; repeat adds
// increment the quantity instead of inserting a second row.
type CartItem struct {
	BaseModel
	CartID    uuid.UUID `json:"cart_id" gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_cart_product"`
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_cart_product"`
	Quantity  int       `json:"quantity" gorm:"not null;default:1"`

	Cart    Cart    `json:"cart,omitempty" gorm:"foreignKey:CartID"`
	Product Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

// TotalPrice is derived on every read; it is never persisted so price
// or quantity changes can't leave a stale cached total behind.
func (i *CartItem) TotalPrice() float64 {
	return i.Product.Price * float64(i.Quantity)
}
