package controllers

import (
	"net/http"

	"parcel-service/models"
	"parcel-service/services"

	"github.com/gin-gonic/gin"
)

// PaymentController handles HTTP requests for payment operations.
type PaymentController struct {
	paymentService services.PaymentService
}

// NewPaymentController creates a new PaymentController.
func NewPaymentController(svc services.PaymentService) *PaymentController {
	return &PaymentController{paymentService: svc}
}

// CreateIntent handles POST /payments/create-intent
func (pc *PaymentController) CreateIntent(ctx *gin.Context) {
	var req models.CreateIntentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   services.KindInvalidRequest,
			"message": err.Error(),
		})
		return
	}

	result, svcErr := pc.paymentService.CreateIntent(ctx.Request.Context(), &req)
	if svcErr != nil {
		respondServiceError(ctx, svcErr)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": result})
}

// ConfirmPayment handles POST /payments/confirm
func (pc *PaymentController) ConfirmPayment(ctx *gin.Context) {
	var req models.ConfirmPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   services.KindInvalidRequest,
			"message": err.Error(),
		})
		return
	}

	parcel, svcErr := pc.paymentService.ConfirmPayment(ctx.Request.Context(), &req)
	if svcErr != nil {
		respondServiceError(ctx, svcErr)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "data": parcel})
}

// respondServiceError writes the uniform error envelope.
func respondServiceError(ctx *gin.Context, svcErr *services.ServiceError) {
	ctx.JSON(svcErr.StatusCode, gin.H{
		"success": false,
		"error":   svcErr.Kind,
		"message": svcErr.Message,
	})
}
