package http

import (
	"net/http"

	"streamhub/internal/usecase"
	"streamhub/pkg/logger"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	catalogUseCase    usecase.CatalogUseCase
	redemptionUseCase usecase.RedemptionUseCase
	analyticsUseCase  usecase.AnalyticsUseCase
	logger            *logger.Logger
}

func NewAdminHandler(
	catalogUseCase usecase.CatalogUseCase,
	redemptionUseCase usecase.RedemptionUseCase,
	analyticsUseCase usecase.AnalyticsUseCase,
	logger *logger.Logger,
) *AdminHandler {
	return &AdminHandler{
		catalogUseCase:    catalogUseCase,
		redemptionUseCase: redemptionUseCase,
		analyticsUseCase:  analyticsUseCase,
		logger:            logger,
	}
}

type CreateMovieRequest struct {
	Title        string `json:"title" binding:"required,max=200"`
	Description  string `json:"description"`
	ThumbnailURL string `json:"thumbnail_url"`
	VideoURL     string `json:"video_url"`
	Duration     int    `json:"duration" binding:"min=0"`
	Year         int    `json:"year"`
	Genre        string `json:"genre"`
	IsPremium    bool   `json:"is_premium"`
}

type UpdateMovieRequest struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	ThumbnailURL *string `json:"thumbnail_url"`
	VideoURL     *string `json:"video_url"`
	Duration     *int    `json:"duration"`
	Year         *int    `json:"year"`
	Genre        *string `json:"genre"`
	IsPremium    *bool   `json:"is_premium"`
}

type GenerateCodesRequest struct {
	DurationDays int `json:"duration_days" binding:"required,min=1"`
	Quantity     int `json:"quantity" binding:"required,min=1,max=100"`
}

// Stats godoc
// @Summary      Platform statistics
// @Description  User, premium, catalog and ad revenue totals
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  usecase.Stats
// @Router       /admin/stats [get]
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.analyticsUseCase.Stats()
	if err != nil {
		h.logger.Error("Failed to fetch stats: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// CreateMovie godoc
// @Summary      Create movie
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateMovieRequest true "Movie data"
// @Success      201  {object}  entity.Movie
// @Failure      400  {object}  map[string]string
// @Router       /admin/movies [post]
func (h *AdminHandler) CreateMovie(c *gin.Context) {
	var req CreateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	movie, err := h.catalogUseCase.CreateMovie(usecase.CreateMovieInput{
		Title:        req.Title,
		Description:  req.Description,
		ThumbnailURL: req.ThumbnailURL,
		VideoURL:     req.VideoURL,
		Duration:     req.Duration,
		Year:         req.Year,
		Genre:        req.Genre,
		IsPremium:    req.IsPremium,
	})
	if err != nil {
		h.logger.Error("Failed to create movie: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, movie)
}

// UpdateMovie godoc
// @Summary      Update movie
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Movie ID"
// @Param        request body UpdateMovieRequest true "Fields to update"
// @Success      200  {object}  entity.Movie
// @Failure      404  {object}  map[string]string
// @Router       /admin/movies/{id} [put]
func (h *AdminHandler) UpdateMovie(c *gin.Context) {
	var req UpdateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	movie, err := h.catalogUseCase.UpdateMovie(c.Param("id"), usecase.UpdateMovieInput{
		Title:        req.Title,
		Description:  req.Description,
		ThumbnailURL: req.ThumbnailURL,
		VideoURL:     req.VideoURL,
		Duration:     req.Duration,
		Year:         req.Year,
		Genre:        req.Genre,
		IsPremium:    req.IsPremium,
	})
	if err != nil {
		if err.Error() == "movie not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": "Movie not found"})
			return
		}
		h.logger.Error("Failed to update movie: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, movie)
}

// DeleteMovie godoc
// @Summary      Delete movie
// @Description  Soft delete, the movie disappears from the public catalog
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Movie ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/movies/{id} [delete]
func (h *AdminHandler) DeleteMovie(c *gin.Context) {
	if err := h.catalogUseCase.DeleteMovie(c.Param("id")); err != nil {
		if err.Error() == "movie not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": "Movie not found"})
			return
		}
		h.logger.Error("Failed to delete movie: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Movie deleted"})
}

// UploadMedia godoc
// @Summary      Upload movie media
// @Description  Store a thumbnail or video file in object storage and attach it to the movie
// @Tags         admin
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Movie ID"
// @Param        kind path string true "Media kind" Enums(thumbnail, video)
// @Param        file formData file true "Media file"
// @Success      200  {object}  entity.Movie
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/movies/{id}/media/{kind} [post]
func (h *AdminHandler) UploadMedia(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read file"})
		return
	}
	defer file.Close()

	movie, err := h.catalogUseCase.AttachMedia(
		c.Param("id"),
		c.Param("kind"),
		file,
		fileHeader.Header.Get("Content-Type"),
	)
	if err != nil {
		switch err.Error() {
		case "movie not found":
			c.JSON(http.StatusNotFound, gin.H{"error": "Movie not found"})
		case "unknown media kind":
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.logger.Error("Failed to upload media: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, movie)
}

// GenerateCodes godoc
// @Summary      Generate premium codes
// @Description  Create a batch of single-use promotional codes
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body GenerateCodesRequest true "Batch parameters"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /admin/premium-codes [post]
func (h *AdminHandler) GenerateCodes(c *gin.Context) {
	var req GenerateCodesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	codes, err := h.redemptionUseCase.GenerateCodes(req.DurationDays, req.Quantity)
	if err != nil {
		h.logger.Error("Failed to generate codes: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"codes": codes, "count": len(codes)})
}

// ListCodes godoc
// @Summary      List premium codes
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /admin/premium-codes [get]
func (h *AdminHandler) ListCodes(c *gin.Context) {
	codes, err := h.redemptionUseCase.ListCodes()
	if err != nil {
		h.logger.Error("Failed to list codes: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"codes": codes, "count": len(codes)})
}
