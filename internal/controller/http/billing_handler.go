package http

import (
	"io"
	"net/http"

	"streamhub/internal/usecase"
	"streamhub/pkg/logger"

	"github.com/gin-gonic/gin"
)

type BillingHandler struct {
	billingUseCase usecase.BillingUseCase
	logger         *logger.Logger
}

func NewBillingHandler(billingUseCase usecase.BillingUseCase, logger *logger.Logger) *BillingHandler {
	return &BillingHandler{
		billingUseCase: billingUseCase,
		logger:         logger,
	}
}

// CreateSubscription godoc
// @Summary      Create subscription
// @Description  Start or resume the monthly premium subscription and return the payment client secret
// @Tags         billing
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  payments.CheckoutIntent
// @Failure      400  {object}  map[string]string
// @Router       /billing/subscription [post]
func (h *BillingHandler) CreateSubscription(c *gin.Context) {
	userID := c.GetString("user_id")

	intent, err := h.billingUseCase.CreateSubscription(userID)
	if err != nil {
		switch err.Error() {
		case "user not found":
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case "user email required":
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.logger.Error("Failed to create subscription: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, intent)
}

// Webhook godoc
// @Summary      Payment processor webhook
// @Description  Sync subscription lifecycle events into premium entitlements
// @Tags         billing
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Router       /billing/webhook [post]
func (h *BillingHandler) Webhook(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read payload"})
		return
	}

	if err := h.billingUseCase.HandleWebhook(payload, c.GetHeader("Stripe-Signature")); err != nil {
		h.logger.Warn("Webhook rejected: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": "true"})
}
