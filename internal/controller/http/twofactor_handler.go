package http

import (
	"net/http"

	"streamhub/internal/usecase"
	"streamhub/pkg/logger"

	"github.com/gin-gonic/gin"
)

type TwoFactorHandler struct {
	twoFactorUseCase usecase.TwoFactorUseCase
	logger           *logger.Logger
}

func NewTwoFactorHandler(twoFactorUseCase usecase.TwoFactorUseCase, logger *logger.Logger) *TwoFactorHandler {
	return &TwoFactorHandler{
		twoFactorUseCase: twoFactorUseCase,
		logger:           logger,
	}
}

type TwoFactorCodeRequest struct {
	Code string `json:"code" binding:"required,len=6"`
}

// Setup godoc
// @Summary      Begin 2FA enrollment
// @Description  Generate a TOTP secret and QR code; 2FA stays off until verified
// @Tags         2fa
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  usecase.TwoFactorSetup
// @Failure      409  {object}  map[string]string
// @Router       /2fa/setup [post]
func (h *TwoFactorHandler) Setup(c *gin.Context) {
	userID := c.GetString("user_id")

	setup, err := h.twoFactorUseCase.Setup(userID)
	if err != nil {
		if err.Error() == "2FA already enabled" {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("Failed to setup 2FA: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, setup)
}

// Verify godoc
// @Summary      Verify 2FA enrollment
// @Description  Confirm the first TOTP code and enable 2FA
// @Tags         2fa
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body TwoFactorCodeRequest true "TOTP code"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Router       /2fa/verify [post]
func (h *TwoFactorHandler) Verify(c *gin.Context) {
	userID := c.GetString("user_id")

	var req TwoFactorCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.twoFactorUseCase.Verify(userID, req.Code); err != nil {
		switch err.Error() {
		case "2FA not set up", "invalid 2FA token":
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.logger.Error("Failed to verify 2FA: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "2FA enabled"})
}

// Disable godoc
// @Summary      Disable 2FA
// @Description  Turn off 2FA after one last valid TOTP code
// @Tags         2fa
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body TwoFactorCodeRequest true "TOTP code"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Router       /2fa/disable [post]
func (h *TwoFactorHandler) Disable(c *gin.Context) {
	userID := c.GetString("user_id")

	var req TwoFactorCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.twoFactorUseCase.Disable(userID, req.Code); err != nil {
		switch err.Error() {
		case "2FA not enabled", "invalid 2FA token":
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.logger.Error("Failed to disable 2FA: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "2FA disabled"})
}
