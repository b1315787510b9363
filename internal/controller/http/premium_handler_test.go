package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"streamhub/internal/entity"
	"streamhub/internal/usecase"
	"streamhub/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockRedemptionUseCase is a mock implementation of RedemptionUseCase
type MockRedemptionUseCase struct {
	mock.Mock
}

func (m *MockRedemptionUseCase) Redeem(userID, code string) (*usecase.RedemptionResult, error) {
	args := m.Called(userID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.RedemptionResult), args.Error(1)
}

func (m *MockRedemptionUseCase) GenerateCodes(durationDays, quantity int) ([]*entity.PremiumCode, error) {
	args := m.Called(durationDays, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.PremiumCode), args.Error(1)
}

func (m *MockRedemptionUseCase) ListCodes() ([]*entity.PremiumCode, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.PremiumCode), args.Error(1)
}

var _ usecase.RedemptionUseCase = (*MockRedemptionUseCase)(nil)

func TestRedeemCode_Success(t *testing.T) {
	mockUseCase := new(MockRedemptionUseCase)
	handler := NewPremiumHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/premium-codes/redeem", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		handler.RedeemCode(c)
	})

	expiresAt := time.Now().AddDate(0, 0, 30)
	mockUseCase.On("Redeem", "user-123", "ABC123XYZ0").Return(&usecase.RedemptionResult{
		ExpiresAt: expiresAt,
	}, nil)

	body := `{"code":"ABC123XYZ0"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/premium-codes/redeem", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Premium code redeemed successfully", response["message"])
	assert.Equal(t, false, response["admin_granted"])

	mockUseCase.AssertExpectations(t)
}

func TestRedeemCode_Invalid(t *testing.T) {
	mockUseCase := new(MockRedemptionUseCase)
	handler := NewPremiumHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/premium-codes/redeem", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		handler.RedeemCode(c)
	})

	mockUseCase.On("Redeem", "user-123", "BADCODE").Return(nil, errors.New("invalid or expired code"))

	body := `{"code":"BADCODE"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/premium-codes/redeem", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRedeemCode_MissingBody(t *testing.T) {
	mockUseCase := new(MockRedemptionUseCase)
	handler := NewPremiumHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/premium-codes/redeem", handler.RedeemCode)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/premium-codes/redeem", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "Redeem")
}

func TestRedeemCode_AdminOverride(t *testing.T) {
	mockUseCase := new(MockRedemptionUseCase)
	handler := NewPremiumHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/premium-codes/redeem", func(c *gin.Context) {
		c.Set("user_id", "user-123")
		handler.RedeemCode(c)
	})

	expiresAt := time.Date(2099, time.December, 31, 23, 59, 59, 0, time.UTC)
	mockUseCase.On("Redeem", "user-123", "OVERRIDE1").Return(&usecase.RedemptionResult{
		ExpiresAt:    expiresAt,
		AdminGranted: true,
	}, nil)

	body := `{"code":"OVERRIDE1"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/premium-codes/redeem", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, true, response["admin_granted"])

	mockUseCase.AssertExpectations(t)
}
