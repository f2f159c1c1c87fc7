package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrderHistoryOldestFirst(t *testing.T) {
	db := freshDB()
	svc := NewOrderService(db)

	user := seedUser(db, "buyer", "buyer@test.com")
	product := seedProduct(db, "Air Runner", "BrandA", 100)

	now := time.Now()
	seedOrder(db, user.ID, product.ID, 200, now)
	seedOrder(db, user.ID, product.ID, 100, now.Add(-48*time.Hour))

	orders, err := svc.GetOrderHistory(user.ID)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, 100.0, orders[0].TotalAmount)
	assert.Equal(t, 200.0, orders[1].TotalAmount)
	require.Len(t, orders[0].Items, 1)
	assert.Equal(t, "Air Runner", orders[0].Items[0].Product.Name)
}

func TestGetOrderHistoryScopedToUser(t *testing.T) {
	db := freshDB()
	svc := NewOrderService(db)

	buyer := seedUser(db, "buyer", "buyer@test.com")
	other := seedUser(db, "other", "other@test.com")
	product := seedProduct(db, "Air Runner", "BrandA", 100)

	seedOrder(db, buyer.ID, product.ID, 100, time.Now())
	seedOrder(db, other.ID, product.ID, 500, time.Now())

	orders, err := svc.GetOrderHistory(buyer.ID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, 100.0, orders[0].TotalAmount)
}

func TestGetOrderDetail(t *testing.T) {
	db := freshDB()
	svc := NewOrderService(db)

	user := seedUser(db, "buyer", "buyer@test.com")
	product := seedProduct(db, "Air Runner", "BrandA", 100)
	placed := seedOrder(db, user.ID, product.ID, 100, time.Now())

	order, err := svc.GetOrder(placed.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, placed.ID, order.ID)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 1, order.Items[0].Quantity)
}

func TestGetOrderOtherUsersOrderNotFound(t *testing.T) {
	db := freshDB()
	svc := NewOrderService(db)

	owner := seedUser(db, "owner", "owner@test.com")
	intruder := seedUser(db, "intruder", "intruder@test.com")
	product := seedProduct(db, "Air Runner", "BrandA", 100)
	placed := seedOrder(db, owner.ID, product.ID, 100, time.Now())

	_, err := svc.GetOrder(placed.ID, intruder.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestGetOrderUnknownID(t *testing.T) {
	db := freshDB()
	svc := NewOrderService(db)

	user := seedUser(db, "buyer", "buyer@test.com")

	_, err := svc.GetOrder(uuid.New(), user.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
