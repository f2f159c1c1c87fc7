package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Adittooo01/SneakPick/internal/middleware"
	"github.com/Adittooo01/SneakPick/internal/models"
	"github.com/Adittooo01/SneakPick/internal/services"
	"github.com/Adittooo01/SneakPick/internal/utils"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	utils.SetJWTSecret("test-secret-key-for-unit-tests")

	var err error
	testDB, err = gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to connect to test database: " + err.Error())
	}
	sqlDB, _ := testDB.DB()
	sqlDB.SetMaxOpenConns(1)

	// Raw SQLite-compatible DDL; the GORM model tags carry PostgreSQL
	// defaults like gen_random_uuid() that AutoMigrate would emit.
	if err := createSQLiteTables(testDB); err != nil {
		panic("failed to migrate test database: " + err.Error())
	}

	code := m.Run()
	os.Exit(code)
}

func freshDB() *gorm.DB {
	testDB.Exec("DELETE FROM payments")
	testDB.Exec("DELETE FROM cart_items")
	testDB.Exec("DELETE FROM carts")
	testDB.Exec("DELETE FROM wishlists")
	testDB.Exec("DELETE FROM reviews")
	testDB.Exec("DELETE FROM products")
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

		`CREATE TABLE IF NOT EXISTS "carts" (
			"id" TEXT PRIMARY KEY,
			"user_id" TEXT NOT NULL UNIQUE,
			"created_at" DATETIME,
			"updated_at" DATETIME,
			"deleted_at" DATETIME
		)`,

		`CREATE TABLE IF NOT EXISTS "cart_items" (
			"id" TEXT PRIMARY KEY,
			"cart_id" TEXT NOT NULL,
			"product_id" TEXT NOT NULL,
			"quantity" INTEGER NOT NULL DEFAULT 1,
			"created_at" DATETIME,
			"updated_at" DATETIME,
			"deleted_at" DATETIME
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_cart_items_cart_product ON "cart_items"("cart_id","product_id")`,

		`CREATE TABLE IF NOT EXISTS "wishlists" (
			"id" TEXT PRIMARY KEY,
			"user_id" TEXT NOT NULL,
			"product_id" TEXT NOT NULL,
			"created_at" DATETIME,
			"updated_at" DATETIME,
			"deleted_at" DATETIME
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
			"deleted_at" DATETIME
		)`,

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

// seedUserWithToken creates a user and returns it with a valid JWT.
func seedUserWithToken(db *gorm.DB, username, email string) (models.User, string) {
	user := models.User{
		Username: username,
		Email:    email,
	}
	user.SetPassword("Str0ng!Pass")
	db.Create(&user)

	token, _ := utils.GenerateJWT(user.ID, user.Username, user.IsAdmin, 1)
	return user, token
}

func seedAdminWithToken(db *gorm.DB, username, email string) (models.User, string) {
	user := models.User{
		Username: username,
		Email:    email,
		IsAdmin:  true,
	}
	user.SetPassword("Str0ng!Pass")
	db.Create(&user)

	token, _ := utils.GenerateJWT(user.ID, user.Username, user.IsAdmin, 1)
	return user, token
}

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

// setupCartRouter wires the cart endpoints the way the main router does,
// minus rate limiting so tests don't trip the per-IP limiters.
func setupCartRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	cartHandler := NewCartHandler(services.NewCartService(db))

	cart := r.Group("/v1/cart")
	cart.Use(middleware.AuthRequired())
	cart.POST("", cartHandler.AddItem)
	cart.GET("", cartHandler.GetCart)
	cart.POST("/update", cartHandler.UpdateItem)

	return r
}

func setupProductRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	productHandler := NewProductHandler(services.NewCatalogService(db), services.NewReviewService(db))

	products := r.Group("/v1/products")
	products.Use(middleware.OptionalAuth())
	products.GET("", productHandler.FilterProducts)
	products.GET("/search", productHandler.SearchProducts)
	products.GET("/featured", productHandler.GetFeaturedProducts)
	products.GET("/:id", productHandler.GetProduct)
	products.GET("/:id/reviews", productHandler.GetProductReviews)
	products.POST("/:id/reviews", middleware.AuthRequired(), productHandler.CreateReview)

	return r
}

func setupAdminRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	paymentHandler := NewPaymentHandler(services.NewPaymentService(db))

	admin := r.Group("/v1/admin")
	admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
	admin.POST("/payments", paymentHandler.RecordPayment)

	return r
}

func setupWishlistRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	wishlistHandler := NewWishlistHandler(services.NewWishlistService(db))

	wishlist := r.Group("/v1/wishlist")
	wishlist.Use(middleware.AuthRequired())
	wishlist.POST("", wishlistHandler.AddProduct)
	wishlist.DELETE("", wishlistHandler.RemoveProduct)
	wishlist.GET("", wishlistHandler.GetWishlist)

	return r
}

// formRequest creates a form-encoded request like the storefront's
// plain form submissions.
func formRequest(method, target string, fields map[string]string, token string) *http.Request {
	form := url.Values{}
	for key, val := range fields {
		form.Set(key, val)
	}
	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func jsonRequest(method, target string, body interface{}, token string) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func parseResponse(w *httptest.ResponseRecorder) map[string]interface{} {
	var result map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &result)
	return result
}
