// internal/handlers/promotion.go
package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Adittooo01/SneakPick/internal/i18n"
	"github.com/Adittooo01/SneakPick/internal/services"
	"github.com/Adittooo01/SneakPick/internal/utils"
)

type PromotionHandler struct {
	promotionService *services.PromotionService
}

func NewPromotionHandler(promotionService *services.PromotionService) *PromotionHandler {
	return &PromotionHandler{
		promotionService: promotionService,
	}
}

// GET /promotions
func (h *PromotionHandler) GetDiscountCodes(c *gin.Context) {
	codes, err := h.promotionService.GetDiscountCodes()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"discount_codes": codes,
	})
}

// GET /promotions/validate
func (h *PromotionHandler) ValidateCode(c *gin.Context) {
	code := c.Query("code")

	discount, err := h.promotionService.ValidateCode(code)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, i18n.KeyPromotionNotFound)
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"discount_code": discount,
	})
}
