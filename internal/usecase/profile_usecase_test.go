package usecase

import (
	"testing"
	"time"

	"streamhub/internal/entity"
	"streamhub/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func strptr(s string) *string { return &s }

func TestUpdateProfile_Success(t *testing.T) {
	mockRepo := new(MockUserRepository)
	uc := NewProfileUseCase(mockRepo, nil, logger.New())

	mockRepo.On("UpdateProfile", "user-1", map[string]interface{}{
		"display_name": "Alice",
		"theme":        "purple",
	}).Return(nil)
	mockRepo.On("GetByID", "user-1").Return(&entity.User{
		ID:          "user-1",
		DisplayName: "Alice",
		Theme:       "purple",
	}, nil)

	user, err := uc.UpdateProfile("user-1", ProfileUpdateInput{
		DisplayName: strptr("Alice"),
		Theme:       strptr("purple"),
	})

	assert.NoError(t, err)
	assert.Equal(t, "purple", user.Theme)
	mockRepo.AssertExpectations(t)
}

func TestUpdateProfile_InvalidTheme(t *testing.T) {
	mockRepo := new(MockUserRepository)
	uc := NewProfileUseCase(mockRepo, nil, logger.New())

	_, err := uc.UpdateProfile("user-1", ProfileUpdateInput{Theme: strptr("neon")})

	assert.Error(t, err)
	assert.Equal(t, "invalid theme", err.Error())
	mockRepo.AssertNotCalled(t, "UpdateProfile")
}

func TestUpdateProfile_InvalidAccent(t *testing.T) {
	mockRepo := new(MockUserRepository)
	uc := NewProfileUseCase(mockRepo, nil, logger.New())

	_, err := uc.UpdateProfile("user-1", ProfileUpdateInput{AccentColor: strptr("magenta")})

	assert.Error(t, err)
	assert.Equal(t, "invalid accent color", err.Error())
}

func TestUpdateProfile_BioTooLong(t *testing.T) {
	mockRepo := new(MockUserRepository)
	uc := NewProfileUseCase(mockRepo, nil, logger.New())

	long := make([]byte, 501)
	for i := range long {
		long[i] = 'a'
	}

	_, err := uc.UpdateProfile("user-1", ProfileUpdateInput{Bio: strptr(string(long))})

	assert.Error(t, err)
	assert.Equal(t, "bio too long", err.Error())
}

func TestInitiateEmailChange_Success(t *testing.T) {
	mockRepo := new(MockUserRepository)
	uc := NewProfileUseCase(mockRepo, nil, logger.New())

	mockRepo.On("GetByEmail", "new@test.com").Return(nil, assert.AnError)
	mockRepo.On("InitiateEmailChange", "user-1", "new@test.com",
		mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).Return(nil)

	token, err := uc.InitiateEmailChange("user-1", "new@test.com")

	assert.NoError(t, err)
	assert.Len(t, token, 32)
	mockRepo.AssertExpectations(t)
}

func TestInitiateEmailChange_AddressTaken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	uc := NewProfileUseCase(mockRepo, nil, logger.New())

	mockRepo.On("GetByEmail", "taken@test.com").Return(&entity.User{
		ID:    "someone-else",
		Email: "taken@test.com",
	}, nil)

	_, err := uc.InitiateEmailChange("user-1", "taken@test.com")

	assert.Error(t, err)
	assert.Equal(t, "email already in use", err.Error())
	mockRepo.AssertNotCalled(t, "InitiateEmailChange")
}

func TestConfirmEmailChange_Success(t *testing.T) {
	mockRepo := new(MockUserRepository)
	uc := NewProfileUseCase(mockRepo, nil, logger.New())

	expiresAt := time.Now().Add(time.Hour)
	mockRepo.On("GetByVerificationToken", "tok").Return(&entity.User{
		ID:                       "user-1",
		Email:                    "old@test.com",
		PendingEmail:             "new@test.com",
		EmailVerificationExpires: &expiresAt,
	}, nil)
	mockRepo.On("CompleteEmailChange", "user-1", "new@test.com").Return(nil)
	mockRepo.On("GetByID", "user-1").Return(&entity.User{
		ID:    "user-1",
		Email: "new@test.com",
	}, nil)

	user, err := uc.ConfirmEmailChange("tok")

	assert.NoError(t, err)
	assert.Equal(t, "new@test.com", user.Email)
	mockRepo.AssertExpectations(t)
}

func TestConfirmEmailChange_ExpiredToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	uc := NewProfileUseCase(mockRepo, nil, logger.New())

	expiredAt := time.Now().Add(-time.Hour)
	mockRepo.On("GetByVerificationToken", "tok").Return(&entity.User{
		ID:                       "user-1",
		PendingEmail:             "new@test.com",
		EmailVerificationExpires: &expiredAt,
	}, nil)

	_, err := uc.ConfirmEmailChange("tok")

	assert.Error(t, err)
	assert.Equal(t, "invalid or expired token", err.Error())
	mockRepo.AssertNotCalled(t, "CompleteEmailChange")
}

func TestConfirmEmailChange_UnknownToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	uc := NewProfileUseCase(mockRepo, nil, logger.New())

	mockRepo.On("GetByVerificationToken", "nope").Return(nil, assert.AnError)

	_, err := uc.ConfirmEmailChange("nope")

	assert.Error(t, err)
	assert.Equal(t, "invalid or expired token", err.Error())
}
