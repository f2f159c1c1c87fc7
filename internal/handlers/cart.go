// internal/handlers/cart.go
package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Adittooo01/SneakPick/internal/i18n"
	"github.com/Adittooo01/SneakPick/internal/services"
	"github.com/Adittooo01/SneakPick/internal/utils"
)

type CartHandler struct {
	cartService *services.CartService
}

func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

func (h *CartHandler) currentUserID(c *gin.Context) (uuid.UUID, bool) {
	userIDStr, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid user ID", nil)
		return uuid.Nil, false
	}

	return userID, true
}

// POST /cart
// Accepts form-encoded product_id and quantity, matching the storefront's
// add-to-cart form submission.
func (h *CartHandler) AddItem(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	productID, err := uuid.Parse(c.PostForm("product_id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	quantity := 1
	if quantityStr := c.PostForm("quantity"); quantityStr != "" {
		quantity, err = strconv.Atoi(quantityStr)
		if err != nil || quantity < 1 {
			utils.BadRequestResponse(c, "Quantity must be a positive integer", nil)
			return
		}
	}

	if err := h.cartService.AddItem(userID, productID, quantity); err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, i18n.KeyProductNotFound)
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyCartItemAdded),
	})
}

// GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	cart, err := h.cartService.GetCart(userID)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"cart": cart,
	})
}

// POST /cart/update
// Accepts form-encoded item_id and action (increase, decrease, remove).
func (h *CartHandler) UpdateItem(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	itemID, err := uuid.Parse(c.PostForm("item_id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid cart item ID", nil)
		return
	}

	action := c.PostForm("action")

	if err := h.cartService.UpdateItem(userID, itemID, action); err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, i18n.KeyCartItemNotFound)
			return
		}
		if strings.Contains(err.Error(), "invalid action") {
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyCartInvalidAction), nil)
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyCartUpdated),
	})
}
