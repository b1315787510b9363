package usecase

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"streamhub/internal/entity"
	"streamhub/internal/repo/persistent"
	"streamhub/pkg/logger"
	"streamhub/pkg/queue"
)

const (
	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeLength   = 10

	maxCodesPerBatch = 100
)

// overrideExpiry is the far-future expiry granted by the administrative
// override token.
var overrideExpiry = time.Date(2099, time.December, 31, 23, 59, 59, 0, time.UTC)

type RedemptionResult struct {
	ExpiresAt    time.Time `json:"expires_at"`
	AdminGranted bool      `json:"admin_granted"`
}

// RedemptionUseCase owns the promotional-code ledger: batch generation,
// listing and single-use redemption.
type RedemptionUseCase interface {
	Redeem(userID, code string) (*RedemptionResult, error)
	GenerateCodes(durationDays, quantity int) ([]*entity.PremiumCode, error)
	ListCodes() ([]*entity.PremiumCode, error)
}

type redemptionUseCase struct {
	codeRepo     persistent.PremiumCodeRepository
	entitlement  EntitlementUseCase
	queueClient  *queue.Client
	overrideCode string
	logger       *logger.Logger
}

func NewRedemptionUseCase(
	codeRepo persistent.PremiumCodeRepository,
	entitlement EntitlementUseCase,
	queueClient *queue.Client,
	overrideCode string,
	logger *logger.Logger,
) RedemptionUseCase {
	return &redemptionUseCase{
		codeRepo:     codeRepo,
		entitlement:  entitlement,
		queueClient:  queueClient,
		overrideCode: overrideCode,
		logger:       logger,
	}
}

// Redeem applies the ledger policy: the code must be active with uses left,
// consumption is a single conditional decrement, and the viewer's premium
// expiry is overwritten with now + durationDays.
//
// The configured override token bypasses the ledger entirely and grants
// admin plus a far-future expiry. It is provisioned out-of-band and disabled
// when unset.
func (uc *redemptionUseCase) Redeem(userID, code string) (*RedemptionResult, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, fmt.Errorf("invalid or expired code")
	}

	if uc.overrideCode != "" && strings.EqualFold(code, uc.overrideCode) {
		if err := uc.entitlement.GrantAdmin(userID); err != nil {
			return nil, err
		}
		expiry := overrideExpiry
		if err := uc.entitlement.GrantPremium(userID, &expiry); err != nil {
			return nil, err
		}
		return &RedemptionResult{ExpiresAt: expiry, AdminGranted: true}, nil
	}

	premiumCode, err := uc.codeRepo.GetByCode(code)
	if err != nil || premiumCode.UsesLeft <= 0 {
		return nil, fmt.Errorf("invalid or expired code")
	}

	redeemed, err := uc.codeRepo.RedeemCode(code, userID, time.Now())
	if err != nil {
		uc.logger.Error("Failed to redeem code %s: %v", code, err)
		return nil, fmt.Errorf("failed to redeem code")
	}
	if !redeemed {
		// Lost the race to the last use, or the code went inactive
		// between the read and the decrement.
		return nil, fmt.Errorf("invalid or expired code")
	}

	expiresAt := time.Now().AddDate(0, 0, premiumCode.DurationDays)
	if err := uc.entitlement.GrantPremium(userID, &expiresAt); err != nil {
		return nil, err
	}

	if uc.queueClient != nil {
		go func() {
			task := map[string]interface{}{
				"type":       queue.TaskPremiumGranted,
				"user_id":    userID,
				"expires_at": expiresAt.Format(time.RFC3339),
			}
			if err := uc.queueClient.PublishMailTask(task); err != nil {
				uc.logger.Error("Failed to publish premium granted task: %v", err)
			}
		}()
	}

	return &RedemptionResult{ExpiresAt: expiresAt}, nil
}

func (uc *redemptionUseCase) GenerateCodes(durationDays, quantity int) ([]*entity.PremiumCode, error) {
	if durationDays < 1 {
		return nil, fmt.Errorf("duration must be at least 1 day")
	}
	if quantity < 1 || quantity > maxCodesPerBatch {
		return nil, fmt.Errorf("quantity must be between 1 and %d", maxCodesPerBatch)
	}

	codes := make([]*entity.PremiumCode, 0, quantity)
	for i := 0; i < quantity; i++ {
		token, err := randomCode(codeLength)
		if err != nil {
			return nil, fmt.Errorf("failed to generate code: %w", err)
		}

		premiumCode := &entity.PremiumCode{
			Code:         token,
			DurationDays: durationDays,
			UsesLeft:     1,
			IsActive:     true,
		}
		if err := uc.codeRepo.Create(premiumCode); err != nil {
			uc.logger.Error("Failed to create premium code: %v", err)
			return nil, fmt.Errorf("failed to create premium codes")
		}
		codes = append(codes, premiumCode)
	}

	return codes, nil
}

func (uc *redemptionUseCase) ListCodes() ([]*entity.PremiumCode, error) {
	codes, err := uc.codeRepo.GetAll()
	if err != nil {
		uc.logger.Error("Failed to list premium codes: %v", err)
		return nil, fmt.Errorf("failed to list premium codes")
	}
	return codes, nil
}

// randomCode draws from crypto/rand; distinctness within a batch is expected
// from the keyspace, not re-checked.
func randomCode(length int) (string, error) {
	b := make([]byte, length)
	max := big.NewInt(int64(len(codeAlphabet)))
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b[i] = codeAlphabet[n.Int64()]
	}
	return string(b), nil
}
