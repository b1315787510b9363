package http

import (
	"net/http"

	"streamhub/internal/usecase"
	"streamhub/pkg/logger"

	"github.com/gin-gonic/gin"
)

type MovieHandler struct {
	catalogUseCase usecase.CatalogUseCase
	logger         *logger.Logger
}

func NewMovieHandler(catalogUseCase usecase.CatalogUseCase, logger *logger.Logger) *MovieHandler {
	return &MovieHandler{
		catalogUseCase: catalogUseCase,
		logger:         logger,
	}
}

// ListMovies godoc
// @Summary      List movies
// @Description  Active catalog items, optionally filtered by category
// @Tags         movies
// @Produce      json
// @Param        category query string false "Genre filter"
// @Success      200  {object}  map[string]interface{}
// @Router       /movies [get]
func (h *MovieHandler) ListMovies(c *gin.Context) {
	category := c.Query("category")

	movies, err := h.catalogUseCase.ListMovies(category)
	if err != nil {
		h.logger.Error("Failed to list movies: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"movies": movies, "count": len(movies)})
}

// GetMovie godoc
// @Summary      Get movie
// @Description  Single active catalog item
// @Tags         movies
// @Produce      json
// @Param        id path string true "Movie ID"
// @Success      200  {object}  entity.Movie
// @Failure      404  {object}  map[string]string
// @Router       /movies/{id} [get]
func (h *MovieHandler) GetMovie(c *gin.Context) {
	movie, err := h.catalogUseCase.GetMovie(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Movie not found"})
		return
	}

	c.JSON(http.StatusOK, movie)
}

// WatchMovie godoc
// @Summary      Start watching
// @Description  Check premium restriction, bump the view counter and return the ad-gate policy
// @Tags         movies
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Movie ID"
// @Success      200  {object}  usecase.WatchSession
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /movies/{id}/watch [post]
func (h *MovieHandler) WatchMovie(c *gin.Context) {
	userID := c.GetString("user_id")

	session, err := h.catalogUseCase.StartWatch(userID, c.Param("id"))
	if err != nil {
		switch err.Error() {
		case "movie not found":
			c.JSON(http.StatusNotFound, gin.H{"error": "Movie not found"})
		case "premium subscription required":
			c.JSON(http.StatusForbidden, gin.H{"error": "Premium subscription required"})
		default:
			h.logger.Error("Failed to start watch: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, session)
}
