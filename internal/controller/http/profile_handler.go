package http

import (
	"net/http"

	"streamhub/internal/usecase"
	"streamhub/pkg/logger"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUseCase usecase.ProfileUseCase
	logger         *logger.Logger
}

func NewProfileHandler(profileUseCase usecase.ProfileUseCase, logger *logger.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: profileUseCase,
		logger:         logger,
	}
}

type UpdateProfileRequest struct {
	DisplayName *string `json:"display_name"`
	Bio         *string `json:"bio"`
	Theme       *string `json:"theme"`
	AccentColor *string `json:"accent_color"`
}

type ChangeEmailRequest struct {
	NewEmail string `json:"new_email" binding:"required,email"`
}

// UpdateProfile godoc
// @Summary      Update profile
// @Description  Change display name, bio, theme or accent color
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body UpdateProfileRequest true "Fields to update"
// @Success      200  {object}  entity.User
// @Failure      400  {object}  map[string]string
// @Router       /profile [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.profileUseCase.UpdateProfile(userID, usecase.ProfileUpdateInput{
		DisplayName: req.DisplayName,
		Bio:         req.Bio,
		Theme:       req.Theme,
		AccentColor: req.AccentColor,
	})
	if err != nil {
		switch err.Error() {
		case "display name too long", "bio too long", "invalid theme", "invalid accent color":
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.logger.Error("Failed to update profile: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, user)
}

// ChangeEmail godoc
// @Summary      Start email change
// @Description  Store the pending address and send a verification link valid for 24 hours
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body ChangeEmailRequest true "New address"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /profile/change-email [post]
func (h *ProfileHandler) ChangeEmail(c *gin.Context) {
	userID := c.GetString("user_id")

	var req ChangeEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.profileUseCase.InitiateEmailChange(userID, req.NewEmail); err != nil {
		if err.Error() == "email already in use" {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("Failed to initiate email change: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Verification email sent"})
}

// VerifyEmail godoc
// @Summary      Confirm email change
// @Description  Apply the pending address if the token is valid and unexpired
// @Tags         profile
// @Produce      json
// @Param        token path string true "Verification token"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /profile/verify-email/{token} [post]
func (h *ProfileHandler) VerifyEmail(c *gin.Context) {
	user, err := h.profileUseCase.ConfirmEmailChange(c.Param("token"))
	if err != nil {
		if err.Error() == "invalid or expired token" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired token"})
			return
		}
		h.logger.Error("Failed to confirm email change: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Email changed successfully", "user": user})
}
