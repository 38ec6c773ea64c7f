package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"marryday/internal/models/request_models"
	"marryday/internal/services"
	"marryday/pkg/tosspay"
	"marryday/pkg/utils"
)

type PaymentController struct {
	paymentService services.PaymentServiceInterface
}

func NewPaymentController(paymentService services.PaymentServiceInterface) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
	}
}

// ConfirmPayment handles the redirect from the hosted checkout widget
// for storefront orders.
func (p *PaymentController) ConfirmPayment(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req request_models.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if req.PaymentKey == "" || req.OrderID == "" || req.Amount == 0 {
		utils.RespondError(c, http.StatusBadRequest, "paymentKey, orderId and amount are required")
		return
	}

	resp, err := p.paymentService.ConfirmOrderPayment(c.Request.Context(), accountID, req)
	if err != nil {
		respondPaymentError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Payment confirmed")
}

// ActivateSubscription handles the redirect for subscription checkouts,
// including the refunded trial card-verification charge.
func (p *PaymentController) ActivateSubscription(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req request_models.ActivateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if req.PaymentKey == "" || req.OrderID == "" || req.Amount == 0 || req.Type == "" {
		utils.RespondError(c, http.StatusBadRequest, "paymentKey, orderId, amount and type are required")
		return
	}

	resp, err := p.paymentService.ActivateSubscription(c.Request.Context(), accountID, req)
	if err != nil {
		respondPaymentError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Subscription activated")
}

// respondPaymentError forwards provider rejections verbatim; anything
// else falls back to the shared mapping.
func respondPaymentError(c *gin.Context, err error) {
	var apiErr *tosspay.APIError
	if errors.As(err, &apiErr) {
		utils.RespondProviderError(c, http.StatusBadRequest, apiErr.Code, apiErr.Message)
		return
	}
	utils.HandleServiceError(c, err)
}
