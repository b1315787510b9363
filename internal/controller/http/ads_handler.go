package http

import (
	"net/http"

	"streamhub/internal/usecase"
	"streamhub/pkg/logger"

	"github.com/gin-gonic/gin"
)

type AdsHandler struct {
	adsUseCase usecase.AdsUseCase
	logger     *logger.Logger
}

func NewAdsHandler(adsUseCase usecase.AdsUseCase, logger *logger.Logger) *AdsHandler {
	return &AdsHandler{
		adsUseCase: adsUseCase,
		logger:     logger,
	}
}

type AdViewRequest struct {
	MovieID string `json:"movie_id" binding:"required,uuid"`
}

// RecordAdView godoc
// @Summary      Record ad impression
// @Description  Store one completed advertisement view at the fixed per-view rate
// @Tags         ads
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body AdViewRequest true "Watched movie"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /ads/view [post]
func (h *AdsHandler) RecordAdView(c *gin.Context) {
	userID := c.GetString("user_id")

	var req AdViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	adView, err := h.adsUseCase.RecordView(userID, req.MovieID)
	if err != nil {
		h.logger.Error("Failed to record ad view: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Ad view recorded", "ad_view": adView})
}
