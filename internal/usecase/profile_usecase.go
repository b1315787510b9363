package usecase

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"streamhub/internal/entity"
	"streamhub/internal/repo/persistent"
	"streamhub/pkg/logger"
	"streamhub/pkg/queue"
)

const emailTokenValidity = 24 * time.Hour

var (
	validThemes = map[string]bool{
		"dark": true, "light": true, "blue": true, "purple": true, "red": true,
	}
	validAccents = map[string]bool{
		"blue": true, "purple": true, "red": true, "green": true, "yellow": true,
	}
)

type ProfileUpdateInput struct {
	DisplayName *string
	Bio         *string
	Theme       *string
	AccentColor *string
}

type ProfileUseCase interface {
	UpdateProfile(userID string, in ProfileUpdateInput) (*entity.User, error)
	InitiateEmailChange(userID, newEmail string) (string, error)
	ConfirmEmailChange(token string) (*entity.User, error)
}

type profileUseCase struct {
	userRepo    persistent.UserRepository
	queueClient *queue.Client
	logger      *logger.Logger
}

func NewProfileUseCase(userRepo persistent.UserRepository, queueClient *queue.Client, logger *logger.Logger) ProfileUseCase {
	return &profileUseCase{
		userRepo:    userRepo,
		queueClient: queueClient,
		logger:      logger,
	}
}

func (uc *profileUseCase) UpdateProfile(userID string, in ProfileUpdateInput) (*entity.User, error) {
	updates := map[string]interface{}{}

	if in.DisplayName != nil {
		if len(*in.DisplayName) > 50 {
			return nil, fmt.Errorf("display name too long")
		}
		updates["display_name"] = *in.DisplayName
	}
	if in.Bio != nil {
		if len(*in.Bio) > 500 {
			return nil, fmt.Errorf("bio too long")
		}
		updates["bio"] = *in.Bio
	}
	if in.Theme != nil {
		if !validThemes[*in.Theme] {
			return nil, fmt.Errorf("invalid theme")
		}
		updates["theme"] = *in.Theme
	}
	if in.AccentColor != nil {
		if !validAccents[*in.AccentColor] {
			return nil, fmt.Errorf("invalid accent color")
		}
		updates["accent_color"] = *in.AccentColor
	}

	if err := uc.userRepo.UpdateProfile(userID, updates); err != nil {
		uc.logger.Error("Failed to update profile for user %s: %v", userID, err)
		return nil, fmt.Errorf("failed to update profile")
	}

	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("user not found")
	}
	user.Password = ""
	return user, nil
}

// InitiateEmailChange stores the pending address with a 24h verification
// token and hands the mail job to the queue. The token is also returned so
// callers without a mail worker can surface it.
func (uc *profileUseCase) InitiateEmailChange(userID, newEmail string) (string, error) {
	existing, err := uc.userRepo.GetByEmail(newEmail)
	if err == nil && existing.ID != userID {
		return "", fmt.Errorf("email already in use")
	}

	token, err := randomToken()
	if err != nil {
		return "", fmt.Errorf("failed to generate token")
	}

	expiresAt := time.Now().Add(emailTokenValidity)
	if err := uc.userRepo.InitiateEmailChange(userID, newEmail, token, expiresAt); err != nil {
		uc.logger.Error("Failed to initiate email change for user %s: %v", userID, err)
		return "", fmt.Errorf("failed to initiate email change")
	}

	if uc.queueClient != nil {
		go func() {
			task := map[string]interface{}{
				"type":    queue.TaskEmailVerification,
				"user_id": userID,
				"email":   newEmail,
				"token":   token,
			}
			if err := uc.queueClient.PublishMailTask(task); err != nil {
				uc.logger.Error("Failed to publish email verification task: %v", err)
			}
		}()
	}

	return token, nil
}

func (uc *profileUseCase) ConfirmEmailChange(token string) (*entity.User, error) {
	user, err := uc.userRepo.GetByVerificationToken(token)
	if err != nil {
		return nil, fmt.Errorf("invalid or expired token")
	}
	if user.EmailVerificationExpires == nil || time.Now().After(*user.EmailVerificationExpires) {
		return nil, fmt.Errorf("invalid or expired token")
	}

	if err := uc.userRepo.CompleteEmailChange(user.ID, user.PendingEmail); err != nil {
		uc.logger.Error("Failed to complete email change for user %s: %v", user.ID, err)
		return nil, fmt.Errorf("failed to change email")
	}

	updated, err := uc.userRepo.GetByID(user.ID)
	if err != nil {
		return nil, fmt.Errorf("user not found")
	}
	updated.Password = ""
	return updated, nil
}

func randomToken() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
