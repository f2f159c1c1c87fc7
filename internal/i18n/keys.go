// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Common
	KeySuccess = "success"
	KeyError   = "error"

	// Authentication
	KeyAuthRequired           = "auth.required"
	KeyAuthInvalidToken       = "auth.invalid_token"
	KeyAuthTokenExpired       = "auth.token_expired"
	KeyAuthInvalidCredentials = "auth.invalid_credentials"
	KeyAuthUserExists         = "auth.user_exists"
	KeyAuthLoginSuccess       = "auth.login_success"
	KeyAuthRegisterSuccess    = "auth.register_success"

	// User Management
	KeyUserProfileUpdated = "user.profile_updated"
	KeyUserNotFound       = "user.not_found"

	// Products
	KeyProductNotFound = "product.not_found"

	// Cart
	KeyCartItemAdded     = "cart.item_added"
	KeyCartItemNotFound  = "cart.item_not_found"
	KeyCartItemRemoved   = "cart.item_removed"
	KeyCartUpdated       = "cart.updated"
	KeyCartInvalidAction = "cart.invalid_action"

	// Wishlist
	KeyWishlistAdded   = "wishlist.added"
	KeyWishlistRemoved = "wishlist.removed"

	// Reviews
	KeyReviewCreated       = "review.created"
	KeyReviewEmptyBody     = "review.empty_body"
	KeyReviewInvalidRating = "review.invalid_rating"

	// Orders
	KeyOrderNotFound = "order.not_found"

	// Promotions
	KeyPromotionNotFound = "promotion.not_found"

	// Payments
	KeyPaymentDetailsAccepted = "payment.details_accepted"
	KeyPaymentDetailsInvalid  = "payment.details_invalid"

	// Admin
	KeyAdminAccessDenied = "admin.access_denied"

	// Validation
	KeyValidationRequired = "validation.required"
	KeyValidationInvalid  = "validation.invalid"

	// File Upload
	KeyFileUploadSuccess = "file.upload_success"
	KeyFileUploadFailed  = "file.upload_failed"
	KeyFileTooLarge      = "file.too_large"

	// Search
	KeySearchPrompt    = "search.prompt"
	KeySearchNoResults = "search.no_results"
)
