package usecase

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"
	"time"

	"streamhub/internal/repo/persistent"
	"streamhub/pkg/logger"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

// totpOpts allows codes from two steps either side of the current one.
var totpOpts = totp.ValidateOpts{
	Period:    30,
	Skew:      2,
	Digits:    otp.DigitsSix,
	Algorithm: otp.AlgorithmSHA1,
}

type TwoFactorSetup struct {
	Secret         string `json:"secret"`
	OtpauthURL     string `json:"otpauth_url"`
	QRCode         string `json:"qr_code"`
	ManualEntryKey string `json:"manual_entry_key"`
}

type TwoFactorUseCase interface {
	Setup(userID string) (*TwoFactorSetup, error)
	Verify(userID, code string) error
	Disable(userID, code string) error
}

type twoFactorUseCase struct {
	userRepo persistent.UserRepository
	issuer   string
	logger   *logger.Logger
}

func NewTwoFactorUseCase(userRepo persistent.UserRepository, issuer string, logger *logger.Logger) TwoFactorUseCase {
	return &twoFactorUseCase{
		userRepo: userRepo,
		issuer:   issuer,
		logger:   logger,
	}
}

// Setup generates a fresh TOTP secret and a scannable enrollment image. The
// secret stays disabled until the first successful Verify.
func (uc *twoFactorUseCase) Setup(userID string) (*TwoFactorSetup, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("user not found")
	}
	if user.TwoFactorEnabled {
		return nil, fmt.Errorf("2FA already enabled")
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      uc.issuer,
		AccountName: user.Email,
	})
	if err != nil {
		uc.logger.Error("Failed to generate TOTP secret: %v", err)
		return nil, fmt.Errorf("failed to setup 2FA")
	}

	if err := uc.userRepo.UpdateTwoFactor(userID, key.Secret(), false); err != nil {
		uc.logger.Error("Failed to store TOTP secret: %v", err)
		return nil, fmt.Errorf("failed to setup 2FA")
	}

	img, err := key.Image(200, 200)
	if err != nil {
		uc.logger.Error("Failed to render QR code: %v", err)
		return nil, fmt.Errorf("failed to setup 2FA")
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		uc.logger.Error("Failed to encode QR code: %v", err)
		return nil, fmt.Errorf("failed to setup 2FA")
	}

	return &TwoFactorSetup{
		Secret:         key.Secret(),
		OtpauthURL:     key.URL(),
		QRCode:         "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()),
		ManualEntryKey: key.Secret(),
	}, nil
}

func (uc *twoFactorUseCase) Verify(userID, code string) error {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return fmt.Errorf("user not found")
	}
	if user.TwoFactorSecret == "" {
		return fmt.Errorf("2FA not set up")
	}

	ok, err := totp.ValidateCustom(code, user.TwoFactorSecret, time.Now().UTC(), totpOpts)
	if err != nil || !ok {
		return fmt.Errorf("invalid 2FA token")
	}

	if err := uc.userRepo.UpdateTwoFactor(userID, user.TwoFactorSecret, true); err != nil {
		uc.logger.Error("Failed to enable 2FA for user %s: %v", userID, err)
		return fmt.Errorf("failed to enable 2FA")
	}
	return nil
}

func (uc *twoFactorUseCase) Disable(userID, code string) error {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return fmt.Errorf("user not found")
	}
	if !user.TwoFactorEnabled {
		return fmt.Errorf("2FA not enabled")
	}

	ok, err := totp.ValidateCustom(code, user.TwoFactorSecret, time.Now().UTC(), totpOpts)
	if err != nil || !ok {
		return fmt.Errorf("invalid 2FA token")
	}

	if err := uc.userRepo.UpdateTwoFactor(userID, "", false); err != nil {
		uc.logger.Error("Failed to disable 2FA for user %s: %v", userID, err)
		return fmt.Errorf("failed to disable 2FA")
	}
	return nil
}
