// internal/database/connection.go
package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Adittooo01/SneakPick/internal/config"
	"github.com/Adittooo01/SneakPick/internal/models"
)

var DB *gorm.DB

func Initialize(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var err error
	var gormConfig *gorm.Config

	// Configure GORM logger
	if cfg.LogLevel == "silent" {
		gormConfig = &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		}
	} else {
		gormConfig = &gorm.Config{
			Logger: logger.Default.LogMode(logger.Info),
		}
	}

	// Connect to database
	DB, err = gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying sql.DB
	sqlDB, err := DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxLifetime) * time.Second)

	// Test connection
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("Database connection established successfully")
	return DB, nil
}

func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting underlying sql.DB: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("Database connection closed successfully")
	}
}

func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	// Enable UUID extension
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\"").Error; err != nil {
		return fmt.Errorf("failed to create UUID extension: %w", err)
	}

	// Run auto-migrations
	err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Review{},
		&models.Wishlist{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
		&models.ShippingMethod{},
		&models.DiscountCode{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Create indexes
	if err := createIndexes(db); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func createIndexes(db *gorm.DB) error {
	indexes := []string{
		// User indexes
		"CREATE INDEX IF NOT EXISTS idx_users_email ON users(email)",
		"CREATE INDEX IF NOT EXISTS idx_users_username ON users(username)",

		// Product indexes
		"CREATE INDEX IF NOT EXISTS idx_products_brand ON products(brand)",
		"CREATE INDEX IF NOT EXISTS idx_products_type ON products(product_type)",
		"CREATE INDEX IF NOT EXISTS idx_products_price ON products(price)",
		"CREATE INDEX IF NOT EXISTS idx_products_rating ON products(rating DESC)",

		// Review indexes
		"CREATE INDEX IF NOT EXISTS idx_reviews_product ON reviews(product_id)",
		"CREATE INDEX IF NOT EXISTS idx_reviews_user ON reviews(user_id)",

		// Cart indexes
		"CREATE INDEX IF NOT EXISTS idx_cart_items_cart ON cart_items(cart_id)",

		// Order indexes
		"CREATE INDEX IF NOT EXISTS idx_orders_user_date ON orders(user_id, order_date)",
		"CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id)",

		// Payment indexes
		"CREATE INDEX IF NOT EXISTS idx_payments_user_status ON payments(user_id, status)",
		"CREATE INDEX IF NOT EXISTS idx_payments_date ON payments(payment_date DESC)",

		// Promotion indexes
		"CREATE INDEX IF NOT EXISTS idx_discount_codes_window ON discount_codes(valid_from, valid_to)",

		// Full-text search index
		"CREATE INDEX IF NOT EXISTS idx_products_search ON products USING GIN(to_tsvector('english', name || ' ' || brand || ' ' || product_type))",
	}

	for _, index := range indexes {
		if err := db.Exec(index).Error; err != nil {
			log.Printf("Warning: Failed to create index: %s, Error: %v", index, err)
			// Continue with other indexes instead of failing completely
		}
	}

	return nil
}

// Seed initial data. Runs inside one transaction so a partial seed never
// survives a failed boot.
func SeedInitialData(db *gorm.DB) error {
	log.Println("Seeding initial data...")

	err := WithTransaction(db, func(tx *gorm.DB) error {
		// Create default admin user
		var adminCount int64
		tx.Model(&models.User{}).Where("is_admin = ?", true).Count(&adminCount)

		if adminCount == 0 {
			admin := &models.User{
				Username: "admin",
				Email:    "admin@sneakpick.com",
				IsAdmin:  true,
			}

			if err := admin.SetPassword("admin123!@#"); err != nil {
				return fmt.Errorf("failed to set admin password: %w", err)
			}

			if err := tx.Create(admin).Error; err != nil {
				return fmt.Errorf("failed to create admin user: %w", err)
			}

			log.Println("Default admin user created successfully")
		}

		// Create default shipping methods
		defaultMethods := []models.ShippingMethod{
			{Method: models.ShippingStandard, Charge: 5.00, EstimatedDeliveryTime: "5-7 Business Days", IsActive: true},
			{Method: models.ShippingExpress, Charge: 15.00, EstimatedDeliveryTime: "1-2 Business Days", IsActive: true},
			{Method: models.ShippingOvernight, Charge: 30.00, EstimatedDeliveryTime: "Next Day", IsActive: true},
			{Method: models.ShippingTwoDay, Charge: 12.00, EstimatedDeliveryTime: "2 Business Days", IsActive: true},
			{Method: models.ShippingInternational, Charge: 45.00, EstimatedDeliveryTime: "7-14 Business Days", IsActive: false},
		}

		for _, method := range defaultMethods {
			var count int64
			tx.Model(&models.ShippingMethod{}).Where("method = ?", method.Method).Count(&count)

			if count == 0 {
				if err := tx.Create(&method).Error; err != nil {
					log.Printf("Warning: Failed to create shipping method %s: %v", method.Method, err)
				}
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	log.Println("Initial data seeding completed")
	return nil
}

// Transaction helper
func WithTransaction(db *gorm.DB, fn func(*gorm.DB) error) error {
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
