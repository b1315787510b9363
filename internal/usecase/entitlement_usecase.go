package usecase

import (
	"fmt"
	"time"

	"streamhub/internal/entity"
	"streamhub/internal/repo/persistent"
	"streamhub/pkg/logger"
)

// EntitlementUseCase owns the answer to "does this viewer have unrestricted
// access right now". Expiry is enforced lazily at read time; there is no
// background sweep.
type EntitlementUseCase interface {
	CurrentUser(userID string) (*entity.User, error)
	HasPremiumAccess(userID string) (bool, error)
	GrantPremium(userID string, expiresAt *time.Time) error
	GrantAdmin(userID string) error
	// RevokePremium is the billing-sync extension point: external
	// collaborators (the payment webhook) call it to end premium access
	// effective immediately.
	RevokePremium(userID string) error
	IsAdmin(userID string) (bool, error)
}

type entitlementUseCase struct {
	userRepo   persistent.UserRepository
	adminEmail string
	logger     *logger.Logger
}

func NewEntitlementUseCase(userRepo persistent.UserRepository, adminEmail string, logger *logger.Logger) EntitlementUseCase {
	return &entitlementUseCase{
		userRepo:   userRepo,
		adminEmail: adminEmail,
		logger:     logger,
	}
}

// CurrentUser loads the viewer and corrects expired premium state before
// answering. A premium flag with a past expiry is persisted back as
// non-premium and the record re-read, so every caller sees the corrected
// row.
func (uc *entitlementUseCase) CurrentUser(userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("user not found")
	}

	if user.IsPremium && user.PremiumExpiresAt != nil && time.Now().After(*user.PremiumExpiresAt) {
		if err := uc.userRepo.UpdatePremiumStatus(userID, false, nil); err != nil {
			uc.logger.Error("Failed to clear expired premium for user %s: %v", userID, err)
			return nil, fmt.Errorf("failed to update premium status")
		}
		user, err = uc.userRepo.GetByID(userID)
		if err != nil {
			return nil, fmt.Errorf("user not found")
		}
	}

	user.Password = ""
	return user, nil
}

func (uc *entitlementUseCase) HasPremiumAccess(userID string) (bool, error) {
	user, err := uc.CurrentUser(userID)
	if err != nil {
		return false, err
	}
	return user.HasValidPremium(time.Now()), nil
}

// GrantPremium overwrites any existing expiry; durations never stack. A nil
// expiry never lapses.
func (uc *entitlementUseCase) GrantPremium(userID string, expiresAt *time.Time) error {
	if err := uc.userRepo.UpdatePremiumStatus(userID, true, expiresAt); err != nil {
		uc.logger.Error("Failed to grant premium for user %s: %v", userID, err)
		return fmt.Errorf("failed to grant premium")
	}
	return nil
}

func (uc *entitlementUseCase) GrantAdmin(userID string) error {
	if err := uc.userRepo.SetAdminStatus(userID, true); err != nil {
		uc.logger.Error("Failed to grant admin for user %s: %v", userID, err)
		return fmt.Errorf("failed to grant admin")
	}
	return nil
}

func (uc *entitlementUseCase) RevokePremium(userID string) error {
	if err := uc.userRepo.UpdatePremiumStatus(userID, false, nil); err != nil {
		uc.logger.Error("Failed to revoke premium for user %s: %v", userID, err)
		return fmt.Errorf("failed to revoke premium")
	}
	return nil
}

func (uc *entitlementUseCase) IsAdmin(userID string) (bool, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return false, err
	}
	if user.IsAdmin {
		return true, nil
	}
	return uc.adminEmail != "" && user.Email == uc.adminEmail, nil
}
