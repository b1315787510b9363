package usecase

import (
	"strings"
	"testing"
	"time"

	"streamhub/internal/entity"
	"streamhub/pkg/logger"

	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestTwoFactorSetup(t *testing.T) {
	mockRepo := new(MockUserRepository)
	uc := NewTwoFactorUseCase(mockRepo, "StreamHub", logger.New())

	mockRepo.On("GetByID", "user-1").Return(&entity.User{
		ID:    "user-1",
		Email: "alice@test.com",
	}, nil)
	mockRepo.On("UpdateTwoFactor", "user-1", mock.AnythingOfType("string"), false).Return(nil)

	setup, err := uc.Setup("user-1")

	assert.NoError(t, err)
	assert.NotEmpty(t, setup.Secret)
	assert.Contains(t, setup.OtpauthURL, "StreamHub")
	assert.Contains(t, setup.OtpauthURL, "alice@test.com")
	assert.True(t, strings.HasPrefix(setup.QRCode, "data:image/png;base64,"))
	assert.Equal(t, setup.Secret, setup.ManualEntryKey)
	mockRepo.AssertExpectations(t)
}

func TestTwoFactorSetup_AlreadyEnabled(t *testing.T) {
	mockRepo := new(MockUserRepository)
	uc := NewTwoFactorUseCase(mockRepo, "StreamHub", logger.New())

	mockRepo.On("GetByID", "user-1").Return(&entity.User{
		ID:               "user-1",
		TwoFactorEnabled: true,
	}, nil)

	_, err := uc.Setup("user-1")

	assert.Error(t, err)
	assert.Equal(t, "2FA already enabled", err.Error())
	mockRepo.AssertNotCalled(t, "UpdateTwoFactor")
}

func TestTwoFactorVerify_ValidCode(t *testing.T) {
	mockRepo := new(MockUserRepository)
	uc := NewTwoFactorUseCase(mockRepo, "StreamHub", logger.New())

	key, err := totp.Generate(totp.GenerateOpts{Issuer: "StreamHub", AccountName: "alice@test.com"})
	assert.NoError(t, err)

	mockRepo.On("GetByID", "user-1").Return(&entity.User{
		ID:              "user-1",
		TwoFactorSecret: key.Secret(),
	}, nil)
	mockRepo.On("UpdateTwoFactor", "user-1", key.Secret(), true).Return(nil)

	code, err := totp.GenerateCode(key.Secret(), time.Now().UTC())
	assert.NoError(t, err)

	err = uc.Verify("user-1", code)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestTwoFactorVerify_InvalidCode(t *testing.T) {
	mockRepo := new(MockUserRepository)
	uc := NewTwoFactorUseCase(mockRepo, "StreamHub", logger.New())

	key, err := totp.Generate(totp.GenerateOpts{Issuer: "StreamHub", AccountName: "alice@test.com"})
	assert.NoError(t, err)

	mockRepo.On("GetByID", "user-1").Return(&entity.User{
		ID:              "user-1",
		TwoFactorSecret: key.Secret(),
	}, nil)

	err = uc.Verify("user-1", "000000")

	assert.Error(t, err)
	assert.Equal(t, "invalid 2FA token", err.Error())
	mockRepo.AssertNotCalled(t, "UpdateTwoFactor")
}

func TestTwoFactorVerify_NotSetUp(t *testing.T) {
	mockRepo := new(MockUserRepository)
	uc := NewTwoFactorUseCase(mockRepo, "StreamHub", logger.New())

	mockRepo.On("GetByID", "user-1").Return(&entity.User{ID: "user-1"}, nil)

	err := uc.Verify("user-1", "123456")

	assert.Error(t, err)
	assert.Equal(t, "2FA not set up", err.Error())
}

func TestTwoFactorDisable_ValidCode(t *testing.T) {
	mockRepo := new(MockUserRepository)
	uc := NewTwoFactorUseCase(mockRepo, "StreamHub", logger.New())

	key, err := totp.Generate(totp.GenerateOpts{Issuer: "StreamHub", AccountName: "alice@test.com"})
	assert.NoError(t, err)

	mockRepo.On("GetByID", "user-1").Return(&entity.User{
		ID:               "user-1",
		TwoFactorSecret:  key.Secret(),
		TwoFactorEnabled: true,
	}, nil)
	mockRepo.On("UpdateTwoFactor", "user-1", "", false).Return(nil)

	code, err := totp.GenerateCode(key.Secret(), time.Now().UTC())
	assert.NoError(t, err)

	err = uc.Disable("user-1", code)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestTwoFactorDisable_NotEnabled(t *testing.T) {
	mockRepo := new(MockUserRepository)
	uc := NewTwoFactorUseCase(mockRepo, "StreamHub", logger.New())

	mockRepo.On("GetByID", "user-1").Return(&entity.User{ID: "user-1"}, nil)

	err := uc.Disable("user-1", "123456")

	assert.Error(t, err)
	assert.Equal(t, "2FA not enabled", err.Error())
}
