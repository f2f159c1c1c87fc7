package services

import (
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Adittooo01/SneakPick/internal/models"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	var err error
	testDB, err = gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to connect to test database: " + err.Error())
	}
	// Limit to 1 open connection to prevent SQLite concurrent access issues
	// with in-memory databases.
	sqlDB, _ := testDB.DB()
	sqlDB.SetMaxOpenConns(1)

	// Create tables using raw SQLite-compatible SQL instead of AutoMigrate,
	// because the GORM model tags carry PostgreSQL-specific defaults like
	// gen_random_uuid().
	if err := createSQLiteTables(testDB); err != nil {
		panic("failed to migrate test database: " + err.Error())
	}

	code := m.Run()
	os.Exit(code)
}

// freshDB returns a clean database for each test by deleting all rows.
func freshDB() *gorm.DB {
	testDB.Exec("DELETE FROM order_items")
	testDB.Exec("DELETE FROM payments")
	testDB.Exec("DELETE FROM orders")
	testDB.Exec("DELETE FROM cart_items")
	testDB.Exec("DELETE FROM carts")
	testDB.Exec("DELETE FROM wishlists")
	testDB.Exec("DELETE FROM reviews")
	testDB.Exec("DELETE FROM products")
	testDB.Exec("DELETE FROM shipping_methods")
	testDB.Exec("DELETE FROM discount_codes")
	testDB.Exec("DELETE FROM users")
	return testDB
}

func createSQLiteTables(db *gorm.DB) error {
	tables := []string{
		`CREATE TABLE IF NOT EXISTS "users" (
			"id" TEXT PRIMARY KEY,
			"username" TEXT NOT NULL UNIQUE,
			"email" TEXT NOT NULL UNIQUE,
			"password_hash" TEXT NOT NULL,
			"address" TEXT,
			"avatar_url" TEXT,
			"is_admin" INTEGER DEFAULT 0,
			"last_login_at" DATETIME,
			"created_at" DATETIME,
			"updated_at" DATETIME,
			"deleted_at" DATETIME
		)`,
		`CREATE INDEX IF NOT EXISTS idx_users_deleted_at ON "users"("deleted_at")`,

		`CREATE TABLE IF NOT EXISTS "products" (
			"id" TEXT PRIMARY KEY,
			"name" TEXT NOT NULL,
			"brand" TEXT NOT NULL,
			"product_type" TEXT,
			"size" TEXT,
			"color" TEXT,
			"year_of_manufacture" INTEGER,
			"price" REAL NOT NULL,
			"rating" REAL DEFAULT 0,
			"image_url" TEXT,
			"images" TEXT,
			"created_at" DATETIME,
			"updated_at" DATETIME,
			"deleted_at" DATETIME
		)`,
		`CREATE INDEX IF NOT EXISTS idx_products_deleted_at ON "products"("deleted_at")`,
		`CREATE INDEX IF NOT EXISTS idx_products_name ON "products"("name")`,
		`CREATE INDEX IF NOT EXISTS idx_products_brand ON "products"("brand")`,

		`CREATE TABLE IF NOT EXISTS "carts" (
			"id" TEXT PRIMARY KEY,
			"user_id" TEXT NOT NULL UNIQUE,
			"created_at" DATETIME,
			"updated_at" DATETIME,
			"deleted_at" DATETIME,
			CONSTRAINT fk_carts_user FOREIGN KEY ("user_id") REFERENCES "users"("id")
		)`,
		`CREATE INDEX IF NOT EXISTS idx_carts_deleted_at ON "carts"("deleted_at")`,

		`CREATE TABLE IF NOT EXISTS "cart_items" (
			"id" TEXT PRIMARY KEY,
			"cart_id" TEXT NOT NULL,
			"product_id" TEXT NOT NULL,
			"quantity" INTEGER NOT NULL DEFAULT 1,
			"created_at" DATETIME,
			"updated_at" DATETIME,
			"deleted_at" DATETIME,
			CONSTRAINT fk_cart_items_cart FOREIGN KEY ("cart_id") REFERENCES "carts"("id"),
			CONSTRAINT fk_cart_items_product FOREIGN KEY ("product_id") REFERENCES "products"("id")
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_cart_items_cart_product ON "cart_items"("cart_id","product_id")`,
		`CREATE INDEX IF NOT EXISTS idx_cart_items_deleted_at ON "cart_items"("deleted_at")`,

		`CREATE TABLE IF NOT EXISTS "wishlists" (
			"id" TEXT PRIMARY KEY,
			"user_id" TEXT NOT NULL,
			"product_id" TEXT NOT NULL,
			"created_at" DATETIME,
			"updated_at" DATETIME,
			"deleted_at" DATETIME,
			CONSTRAINT fk_wishlists_user FOREIGN KEY ("user_id") REFERENCES "users"("id"),
			CONSTRAINT fk_wishlists_product FOREIGN KEY ("product_id") REFERENCES "products"("id")
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_wishlist_user_product ON "wishlists"("user_id","product_id")`,

		`CREATE TABLE IF NOT EXISTS "reviews" (
			"id" TEXT PRIMARY KEY,
			"user_id" TEXT NOT NULL,
			"product_id" TEXT NOT NULL,
			"body" TEXT NOT NULL,
			"rating" INTEGER NOT NULL,
			"created_at" DATETIME,
			"updated_at" DATETIME,
			"deleted_at" DATETIME,
			CONSTRAINT fk_reviews_user FOREIGN KEY ("user_id") REFERENCES "users"("id"),
			CONSTRAINT fk_reviews_product FOREIGN KEY ("product_id") REFERENCES "products"("id")
		)`,
		`CREATE INDEX IF NOT EXISTS idx_reviews_product_id ON "reviews"("product_id")`,

		`CREATE TABLE IF NOT EXISTS "orders" (
			"id" TEXT PRIMARY KEY,
			"user_id" TEXT NOT NULL,
			"order_date" DATETIME NOT NULL,
			"status" TEXT DEFAULT 'pending',
			"total_amount" REAL NOT NULL,
			"payment_status" TEXT DEFAULT 'pending',
			"created_at" DATETIME,
			"updated_at" DATETIME,
			"deleted_at" DATETIME,
			CONSTRAINT fk_orders_user FOREIGN KEY ("user_id") REFERENCES "users"("id")
		)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_user_id ON "orders"("user_id")`,

		`CREATE TABLE IF NOT EXISTS "order_items" (
			"id" TEXT PRIMARY KEY,
			"order_id" TEXT NOT NULL,
			"product_id" TEXT NOT NULL,
			"quantity" INTEGER NOT NULL,
			"price" REAL NOT NULL,
			"created_at" DATETIME,
			"updated_at" DATETIME,
			"deleted_at" DATETIME,
			CONSTRAINT fk_order_items_order FOREIGN KEY ("order_id") REFERENCES "orders"("id"),
			CONSTRAINT fk_order_items_product FOREIGN KEY ("product_id") REFERENCES "products"("id")
		)`,
		`CREATE INDEX IF NOT EXISTS idx_order_items_order_id ON "order_items"("order_id")`,

		`CREATE TABLE IF NOT EXISTS "payments" (
			"id" TEXT PRIMARY KEY,
			"user_id" TEXT NOT NULL,
			"order_id" TEXT NOT NULL UNIQUE,
			"payment_date" DATETIME NOT NULL,
			"amount" REAL NOT NULL,
			"method" TEXT DEFAULT 'credit_card',
			"status" TEXT DEFAULT 'pending',
			"transaction_id" TEXT UNIQUE,
			"created_at" DATETIME,
			"updated_at" DATETIME,
			"deleted_at" DATETIME,
			CONSTRAINT fk_payments_user FOREIGN KEY ("user_id") REFERENCES "users"("id"),
			CONSTRAINT fk_payments_order FOREIGN KEY ("order_id") REFERENCES "orders"("id")
		)`,
		`CREATE INDEX IF NOT EXISTS idx_payments_user_id ON "payments"("user_id")`,

		`CREATE TABLE IF NOT EXISTS "shipping_methods" (
			"id" TEXT PRIMARY KEY,
			"method" TEXT NOT NULL UNIQUE,
			"charge" REAL NOT NULL,
			"estimated_delivery_time" TEXT,
			"is_active" INTEGER DEFAULT 1,
			"created_at" DATETIME,
			"updated_at" DATETIME,
			"deleted_at" DATETIME
		)`,

		`CREATE TABLE IF NOT EXISTS "discount_codes" (
			"id" TEXT PRIMARY KEY,
			"code" TEXT NOT NULL UNIQUE,
			"description" TEXT,
			"discount_percentage" REAL NOT NULL,
			"valid_from" DATETIME NOT NULL,
			"valid_to" DATETIME NOT NULL,
			"is_active" INTEGER DEFAULT 1,
			"created_at" DATETIME,
			"updated_at" DATETIME,
			"deleted_at" DATETIME
		)`,
	}

	for _, sql := range tables {
		if err := db.Exec(sql).Error; err != nil {
			return err
		}
	}
	return nil
}

// seedUser creates a user with a known password.
func seedUser(db *gorm.DB, username, email string) models.User {
	user := models.User{
		Username: username,
		Email:    email,
	}
	user.SetPassword("Password123!")
	db.Create(&user)
	return user
}

// seedProduct creates a catalog product.
func seedProduct(db *gorm.DB, name, brand string, price float64) models.Product {
	product := models.Product{
		Name:        name,
		Brand:       brand,
		ProductType: "sneaker",
		Price:       price,
	}
	db.Create(&product)
	return product
}

// seedOrder creates an order with a single line item.
func seedOrder(db *gorm.DB, userID uuid.UUID, productID uuid.UUID, total float64, placedAt time.Time) models.Order {
	order := models.Order{
		UserID:      userID,
		OrderDate:   placedAt,
		Status:      models.OrderStatusPending,
		TotalAmount: total,
	}
	db.Create(&order)
	item := models.OrderItem{
		OrderID:   order.ID,
		ProductID: productID,
		Quantity:  1,
		Price:     total,
	}
	db.Create(&item)
	return order
}

// seedPayment creates a payment row tied to an order.
func seedPayment(db *gorm.DB, userID, orderID uuid.UUID, amount float64, status models.PaymentStatus, at time.Time) models.Payment {
	payment := models.Payment{
		UserID:      userID,
		OrderID:     orderID,
		PaymentDate: at,
		Amount:      amount,
		Method:      models.PaymentMethodCreditCard,
		Status:      status,
	}
	db.Create(&payment)
	return payment
}

// seedShippingMethod creates a shipping method. is_active is written
// explicitly because GORM skips zero-value bools during Create and the
// column default would win.
func seedShippingMethod(db *gorm.DB, method models.ShippingMethodType, charge float64, active bool) models.ShippingMethod {
	sm := models.ShippingMethod{
		Method:   method,
		Charge:   charge,
		IsActive: active,
	}
	db.Create(&sm)
	db.Model(&sm).Update("is_active", active)
	return sm
}

// seedDiscountCode creates a discount code with the given window.
func seedDiscountCode(db *gorm.DB, code string, from, to time.Time, active bool) models.DiscountCode {
	dc := models.DiscountCode{
		Code:               code,
		DiscountPercentage: 10,
		ValidFrom:          from,
		ValidTo:            to,
		IsActive:           active,
	}
	db.Create(&dc)
	db.Model(&dc).Update("is_active", active)
	return dc
}
