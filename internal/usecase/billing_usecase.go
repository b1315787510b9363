package usecase

import (
	"fmt"
	"strings"
	"time"

	"streamhub/internal/repo/persistent"
	"streamhub/pkg/logger"
	"streamhub/pkg/payments"
)

// PaymentGateway is the payment-processor boundary. The Stripe
// implementation lives in pkg/payments.
type PaymentGateway interface {
	ResumeSubscription(subscriptionID string) (*payments.CheckoutIntent, error)
	CreateSubscription(email, name string) (*payments.CheckoutIntent, error)
	ParseWebhook(payload []byte, sigHeader string) (*payments.WebhookEvent, error)
}

type BillingUseCase interface {
	CreateSubscription(userID string) (*payments.CheckoutIntent, error)
	HandleWebhook(payload []byte, sigHeader string) error
}

type billingUseCase struct {
	userRepo    persistent.UserRepository
	entitlement EntitlementUseCase
	gateway     PaymentGateway
	logger      *logger.Logger
}

func NewBillingUseCase(
	userRepo persistent.UserRepository,
	entitlement EntitlementUseCase,
	gateway PaymentGateway,
	logger *logger.Logger,
) BillingUseCase {
	return &billingUseCase{
		userRepo:    userRepo,
		entitlement: entitlement,
		gateway:     gateway,
		logger:      logger,
	}
}

// CreateSubscription resumes the viewer's existing processor subscription
// or runs the full customer/product/price/subscription chain. Failures
// partway through can orphan upstream objects; nothing compensates.
func (uc *billingUseCase) CreateSubscription(userID string) (*payments.CheckoutIntent, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("user not found")
	}

	if user.StripeSubscriptionID != "" {
		intent, err := uc.gateway.ResumeSubscription(user.StripeSubscriptionID)
		if err != nil {
			uc.logger.Error("Failed to resume subscription for user %s: %v", userID, err)
			return nil, fmt.Errorf("failed to create subscription")
		}
		return intent, nil
	}

	if user.Email == "" {
		return nil, fmt.Errorf("user email required")
	}

	name := strings.TrimSpace(user.FirstName + " " + user.LastName)
	intent, err := uc.gateway.CreateSubscription(user.Email, name)
	if err != nil {
		uc.logger.Error("Failed to create subscription for user %s: %v", userID, err)
		return nil, fmt.Errorf("failed to create subscription")
	}

	if err := uc.userRepo.UpdateStripeInfo(userID, intent.CustomerID, intent.SubscriptionID); err != nil {
		uc.logger.Error("Failed to store processor references for user %s: %v", userID, err)
		return nil, fmt.Errorf("failed to create subscription")
	}

	return intent, nil
}

// HandleWebhook syncs processor events into entitlement state: a paid
// invoice grants a month of premium, a deleted subscription revokes it via
// the entitlement extension point. Unrecognized events are acknowledged and
// dropped.
func (uc *billingUseCase) HandleWebhook(payload []byte, sigHeader string) error {
	event, err := uc.gateway.ParseWebhook(payload, sigHeader)
	if err != nil {
		return fmt.Errorf("webhook error")
	}

	switch event.Type {
	case payments.EventPaymentSucceeded:
		if event.CustomerID == "" {
			return nil
		}
		user, err := uc.userRepo.GetByStripeCustomerID(event.CustomerID)
		if err != nil {
			uc.logger.Warn("Payment succeeded for unknown customer %s", event.CustomerID)
			return nil
		}
		expiresAt := time.Now().AddDate(0, 1, 0)
		return uc.entitlement.GrantPremium(user.ID, &expiresAt)

	case payments.EventSubscriptionDeleted:
		if event.CustomerID == "" {
			return nil
		}
		user, err := uc.userRepo.GetByStripeCustomerID(event.CustomerID)
		if err != nil {
			uc.logger.Warn("Subscription deleted for unknown customer %s", event.CustomerID)
			return nil
		}
		return uc.entitlement.RevokePremium(user.ID)
	}

	return nil
}
