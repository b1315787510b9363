package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"streamhub/internal/entity"
	"streamhub/internal/usecase"
	"streamhub/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCatalogUseCase is a mock implementation of CatalogUseCase
type MockCatalogUseCase struct {
	mock.Mock
}

func (m *MockCatalogUseCase) ListMovies(genre string) ([]*entity.Movie, error) {
	args := m.Called(genre)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Movie), args.Error(1)
}

func (m *MockCatalogUseCase) GetMovie(id string) (*entity.Movie, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Movie), args.Error(1)
}

func (m *MockCatalogUseCase) CreateMovie(in usecase.CreateMovieInput) (*entity.Movie, error) {
	args := m.Called(in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Movie), args.Error(1)
}

func (m *MockCatalogUseCase) UpdateMovie(id string, in usecase.UpdateMovieInput) (*entity.Movie, error) {
	args := m.Called(id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Movie), args.Error(1)
}

func (m *MockCatalogUseCase) DeleteMovie(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockCatalogUseCase) AttachMedia(movieID, kind string, file io.Reader, contentType string) (*entity.Movie, error) {
	args := m.Called(movieID, kind, file, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Movie), args.Error(1)
}

func (m *MockCatalogUseCase) StartWatch(userID, movieID string) (*usecase.WatchSession, error) {
	args := m.Called(userID, movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.WatchSession), args.Error(1)
}

var _ usecase.CatalogUseCase = (*MockCatalogUseCase)(nil)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestListMovies_Success(t *testing.T) {
	mockUseCase := new(MockCatalogUseCase)
	handler := NewMovieHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/movies", handler.ListMovies)

	mockUseCase.On("ListMovies", "").Return([]*entity.Movie{
		{ID: "movie-1", Title: "Low Orbit"},
		{ID: "movie-2", Title: "Garden of Static"},
	}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/movies", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, float64(2), response["count"])

	mockUseCase.AssertExpectations(t)
}

func TestListMovies_GenreFilter(t *testing.T) {
	mockUseCase := new(MockCatalogUseCase)
	handler := NewMovieHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/movies", handler.ListMovies)

	mockUseCase.On("ListMovies", "drama").Return([]*entity.Movie{
		{ID: "movie-1", Title: "Garden of Static", Genre: "drama"},
	}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/movies?category=drama", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestGetMovie_NotFound(t *testing.T) {
	mockUseCase := new(MockCatalogUseCase)
	handler := NewMovieHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/movies/:id", handler.GetMovie)

	mockUseCase.On("GetMovie", "missing").Return(nil, errors.New("movie not found"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/movies/missing", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWatchMovie_FreeViewer(t *testing.T) {
	mockUseCase := new(MockCatalogUseCase)
	handler := NewMovieHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/movies/:id/watch", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		handler.WatchMovie(c)
	})

	mockUseCase.On("StartWatch", "user-123", "movie-1").Return(&usecase.WatchSession{
		Movie:              &entity.Movie{ID: "movie-1", Title: "Low Orbit"},
		RequiresAds:        true,
		AdsCount:           2,
		AdDurationSeconds:  15,
		AdSkipAfterSeconds: 10,
	}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/movies/movie-1/watch", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, true, response["requires_ads"])
	assert.Equal(t, float64(2), response["ads_count"])

	mockUseCase.AssertExpectations(t)
}

func TestWatchMovie_PremiumRequired(t *testing.T) {
	mockUseCase := new(MockCatalogUseCase)
	handler := NewMovieHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/movies/:id/watch", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		handler.WatchMovie(c)
	})

	mockUseCase.On("StartWatch", "user-123", "movie-1").Return(nil, errors.New("premium subscription required"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/movies/movie-1/watch", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestWatchMovie_NotFound(t *testing.T) {
	mockUseCase := new(MockCatalogUseCase)
	handler := NewMovieHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/movies/:id/watch", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		handler.WatchMovie(c)
	})

	mockUseCase.On("StartWatch", "user-123", "missing").Return(nil, errors.New("movie not found"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/movies/missing/watch", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
