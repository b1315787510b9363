package http

import (
	"net/http"

	"streamhub/internal/usecase"
	"streamhub/pkg/logger"

	"github.com/gin-gonic/gin"
)

type PremiumHandler struct {
	redemptionUseCase usecase.RedemptionUseCase
	logger            *logger.Logger
}

func NewPremiumHandler(redemptionUseCase usecase.RedemptionUseCase, logger *logger.Logger) *PremiumHandler {
	return &PremiumHandler{
		redemptionUseCase: redemptionUseCase,
		logger:            logger,
	}
}

type RedeemRequest struct {
	Code string `json:"code" binding:"required"`
}

// RedeemCode godoc
// @Summary      Redeem premium code
// @Description  Consume one use of a promotional code and grant premium until now + duration
// @Tags         premium
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body RedeemRequest true "Code"
// @Success      200  {object}  usecase.RedemptionResult
// @Failure      400  {object}  map[string]string
// @Router       /premium-codes/redeem [post]
func (h *PremiumHandler) RedeemCode(c *gin.Context) {
	userID := c.GetString("user_id")

	var req RedeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.redemptionUseCase.Redeem(userID, req.Code)
	if err != nil {
		if err.Error() == "invalid or expired code" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired code"})
			return
		}
		h.logger.Error("Failed to redeem code: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	message := "Premium code redeemed successfully"
	if result.AdminGranted {
		message = "Special code activated, administrator access granted"
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       message,
		"expires_at":    result.ExpiresAt,
		"admin_granted": result.AdminGranted,
	})
}
