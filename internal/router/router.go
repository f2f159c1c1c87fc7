// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Adittooo01/SneakPick/internal/config"
	"github.com/Adittooo01/SneakPick/internal/handlers"
	"github.com/Adittooo01/SneakPick/internal/middleware"
	"github.com/Adittooo01/SneakPick/internal/services"
	"github.com/Adittooo01/SneakPick/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	storageService, _ := services.NewStorageService(cfg)

	authService := services.NewAuthService(db, cfg)
	userService := services.NewUserService(db, storageService)
	catalogService := services.NewCatalogService(db)
	reviewService := services.NewReviewService(db)
	cartService := services.NewCartService(db)
	wishlistService := services.NewWishlistService(db)
	orderService := services.NewOrderService(db)
	paymentService := services.NewPaymentService(db)
	shippingService := services.NewShippingService(db, paymentService)
	promotionService := services.NewPromotionService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	productHandler := handlers.NewProductHandler(catalogService, reviewService)
	cartHandler := handlers.NewCartHandler(cartService)
	wishlistHandler := handlers.NewWishlistHandler(wishlistService)
	orderHandler := handlers.NewOrderHandler(orderService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	shippingHandler := handlers.NewShippingHandler(shippingService)
	promotionHandler := handlers.NewPromotionHandler(promotionService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Authentication routes
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.GET("/me", middleware.AuthRequired(), authHandler.GetCurrentUser)
		}

		// User routes
		users := v1.Group("/users")
		users.Use(middleware.AuthRequired())
		{
			users.GET("/profile", userHandler.GetProfile)
			users.PUT("/profile", userHandler.UpdateProfile)
			users.POST("/upload-avatar", middleware.UploadRateLimit(), userHandler.UploadAvatar)
		}

		// Catalog routes (public; OptionalAuth lets the request logger
		// attribute browsing to signed-in users)
		products := v1.Group("/products")
		products.Use(middleware.OptionalAuth())
		{
			products.GET("", productHandler.FilterProducts)
			products.GET("/search", productHandler.SearchProducts)
			products.GET("/featured", productHandler.GetFeaturedProducts)
			products.GET("/:id", productHandler.GetProduct)
			products.GET("/:id/reviews", productHandler.GetProductReviews)
			products.POST("/:id/reviews", middleware.AuthRequired(), productHandler.CreateReview)
		}

		// Cart routes
		cart := v1.Group("/cart")
		cart.Use(middleware.AuthRequired())
		{
			cart.POST("", cartHandler.AddItem)
			cart.GET("", cartHandler.GetCart)
			cart.POST("/update", cartHandler.UpdateItem)
		}

		// Wishlist routes
		wishlist := v1.Group("/wishlist")
		wishlist.Use(middleware.AuthRequired())
		{
			wishlist.POST("", wishlistHandler.AddProduct)
			wishlist.DELETE("", wishlistHandler.RemoveProduct)
			wishlist.GET("", wishlistHandler.GetWishlist)
		}

		// Order routes
		orders := v1.Group("/orders")
		orders.Use(middleware.AuthRequired())
		{
			orders.GET("", orderHandler.GetOrderHistory)
			orders.GET("/:id", orderHandler.GetOrder)
		}

		// Payment routes
		payments := v1.Group("/payments")
		payments.Use(middleware.AuthRequired())
		{
			payments.POST("/details", paymentHandler.CapturePaymentDetails)
			payments.GET("/history", paymentHandler.GetPaymentHistory)
		}

		// Shipping routes
		shipping := v1.Group("/shipping")
		shipping.Use(middleware.AuthRequired())
		{
			shipping.GET("/methods", shippingHandler.GetShippingMethods)
		}

		// Promotion routes (public)
		promotions := v1.Group("/promotions")
		{
			promotions.GET("", promotionHandler.GetDiscountCodes)
			promotions.GET("/validate", promotionHandler.ValidateCode)
		}

		// Admin routes
		admin := v1.Group("/admin")
		admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
		{
			admin.POST("/payments", paymentHandler.RecordPayment)
		}
	}

	// Static file serving (for development)
	if cfg.Environment == "development" {
		r.Static("/uploads", "./uploads")
	}

	return r
}
