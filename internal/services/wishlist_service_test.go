package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Adittooo01/SneakPick/internal/models"
)

func TestWishlistAddIsIdempotent(t *testing.T) {
	db := freshDB()
	svc := NewWishlistService(db)

	user := seedUser(db, "wisher", "wisher@test.com")
	product := seedProduct(db, "Air Runner", "BrandA", 100)

	require.NoError(t, svc.AddProduct(user.ID, product.ID))
	require.NoError(t, svc.AddProduct(user.ID, product.ID))

	var count int64
	db.Model(&models.Wishlist{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestWishlistAddUnknownProduct(t *testing.T) {
	db := freshDB()
	svc := NewWishlistService(db)

	user := seedUser(db, "wisher", "wisher@test.com")

	err := svc.AddProduct(user.ID, uuid.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestWishlistRemove(t *testing.T) {
	db := freshDB()
	svc := NewWishlistService(db)

	user := seedUser(db, "wisher", "wisher@test.com")
	product := seedProduct(db, "Air Runner", "BrandA", 100)
	require.NoError(t, svc.AddProduct(user.ID, product.ID))

	require.NoError(t, svc.RemoveProduct(user.ID, product.ID))

	var count int64
	db.Model(&models.Wishlist{}).Count(&count)
	assert.Equal(t, int64(0), count)

	// Removing again, or removing something never saved, is not an error.
	require.NoError(t, svc.RemoveProduct(user.ID, product.ID))

	// And a removed product can be saved again.
	require.NoError(t, svc.AddProduct(user.ID, product.ID))
}

func TestGetWishlistScopedToUser(t *testing.T) {
	db := freshDB()
	svc := NewWishlistService(db)

	user := seedUser(db, "wisher", "wisher@test.com")
	other := seedUser(db, "other", "other@test.com")
	p1 := seedProduct(db, "Air Runner", "BrandA", 100)
	p2 := seedProduct(db, "Court Classic", "BrandB", 200)

	require.NoError(t, svc.AddProduct(user.ID, p1.ID))
	require.NoError(t, svc.AddProduct(other.ID, p2.ID))

	entries, err := svc.GetWishlist(user.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Air Runner", entries[0].Product.Name)
}
