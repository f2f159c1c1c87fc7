// internal/handlers/payment.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Adittooo01/SneakPick/internal/i18n"
	"github.com/Adittooo01/SneakPick/internal/models"
	"github.com/Adittooo01/SneakPick/internal/services"
	"github.com/Adittooo01/SneakPick/internal/utils"
)

type RecordPaymentRequest struct {
	UserID  string  `json:"user_id" validate:"required,uuid"`
	OrderID string  `json:"order_id" validate:"required,uuid"`
	Amount  float64 `json:"amount" validate:"required,gt=0"`
	Method  string  `json:"method" validate:"required,oneof=credit_card debit_card paypal bank_transfer cash_on_delivery"`
	Status  string  `json:"status" validate:"required,oneof=pending completed failed refunded"`
}

type PaymentHandler struct {
	paymentService *services.PaymentService
}

func NewPaymentHandler(paymentService *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// POST /payments/details
// Accepts form-encoded checkout fields and acknowledges them. Nothing is
// charged and nothing sensitive is stored.
func (h *PaymentHandler) CapturePaymentDetails(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	userIDStr, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid user ID", nil)
		return
	}

	input := services.PaymentDetailsInput{
		Method:        c.PostForm("payment_method"),
		AccountNumber: c.PostForm("account_number"),
		Password:      c.PostForm("password"),
	}

	ref, err := h.paymentService.CapturePaymentDetails(userID, input)
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyPaymentDetailsInvalid), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":   i18n.T(lang, i18n.KeyPaymentDetailsAccepted),
		"reference": ref,
	})
}

// POST /admin/payments
// Back-office entry for completed or reconciled payments; the storefront
// itself never charges.
func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid user ID", nil)
		return
	}
	orderID, err := uuid.Parse(req.OrderID)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid order ID", nil)
		return
	}

	payment, err := h.paymentService.RecordPayment(userID, orderID, req.Amount,
		models.PaymentMethod(req.Method), models.PaymentStatus(req.Status))
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.CreatedResponse(c, gin.H{
		"payment": payment,
	})
}

// GET /payments/history
func (h *PaymentHandler) GetPaymentHistory(c *gin.Context) {
	userIDStr, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid user ID", nil)
		return
	}

	params := utils.GetPaginationParams(c)

	payments, total, err := h.paymentService.GetPaymentHistory(userID, params)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	result := utils.CreatePaginationResult(payments, total, params)
	utils.PaginatedResponse(c, result)
}
