package payments

import (
	"encoding/json"
	"fmt"

	"streamhub/pkg/config"
	"streamhub/pkg/logger"

	stripe "github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/customer"
	"github.com/stripe/stripe-go/v72/price"
	"github.com/stripe/stripe-go/v72/product"
	"github.com/stripe/stripe-go/v72/sub"
	"github.com/stripe/stripe-go/v72/webhook"
)

const (
	// 19.99 PLN per month
	premiumPriceGrosz  = 1999
	premiumProduct     = "StreamHub Premium"
	premiumProductDesc = "Premium subscription for ad-free streaming and 4K quality"
)

// CheckoutIntent is what the client needs to finish payment.
type CheckoutIntent struct {
	SubscriptionID string `json:"subscription_id"`
	CustomerID     string `json:"customer_id"`
	ClientSecret   string `json:"client_secret"`
}

const (
	EventPaymentSucceeded    = "invoice.payment_succeeded"
	EventSubscriptionDeleted = "customer.subscription.deleted"
)

// WebhookEvent is the subset of a Stripe event the billing flow acts on.
type WebhookEvent struct {
	Type           string
	CustomerID     string
	SubscriptionID string
}

type StripeGateway struct {
	webhookSecret string
	logger        *logger.Logger
}

func NewStripeGateway(cfg *config.Config, log *logger.Logger) *StripeGateway {
	stripe.Key = cfg.StripeSecretKey
	return &StripeGateway{
		webhookSecret: cfg.StripeWebhookSecret,
		logger:        log,
	}
}

// ResumeSubscription re-fetches an existing subscription and returns its
// pending payment intent so the client can retry checkout.
func (g *StripeGateway) ResumeSubscription(subscriptionID string) (*CheckoutIntent, error) {
	params := &stripe.SubscriptionParams{}
	params.AddExpand("latest_invoice.payment_intent")

	s, err := sub.Get(subscriptionID, params)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve subscription: %w", err)
	}

	intent := &CheckoutIntent{SubscriptionID: s.ID}
	if s.Customer != nil {
		intent.CustomerID = s.Customer.ID
	}
	if s.LatestInvoice != nil && s.LatestInvoice.PaymentIntent != nil {
		intent.ClientSecret = s.LatestInvoice.PaymentIntent.ClientSecret
	}
	return intent, nil
}

// CreateSubscription walks the customer -> product -> price -> subscription
// chain. A failure partway through leaves earlier objects behind on the
// Stripe side; there is no compensating rollback.
func (g *StripeGateway) CreateSubscription(email, name string) (*CheckoutIntent, error) {
	cust, err := customer.New(&stripe.CustomerParams{
		Email: stripe.String(email),
		Name:  stripe.String(name),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	prod, err := product.New(&stripe.ProductParams{
		Name:        stripe.String(premiumProduct),
		Description: stripe.String(premiumProductDesc),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	pr, err := price.New(&stripe.PriceParams{
		Currency:   stripe.String(string(stripe.CurrencyPLN)),
		UnitAmount: stripe.Int64(premiumPriceGrosz),
		Recurring: &stripe.PriceRecurringParams{
			Interval: stripe.String(string(stripe.PriceRecurringIntervalMonth)),
		},
		Product: stripe.String(prod.ID),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create price: %w", err)
	}

	subParams := &stripe.SubscriptionParams{
		Customer: stripe.String(cust.ID),
		Items: []*stripe.SubscriptionItemsParams{
			{Price: stripe.String(pr.ID)},
		},
		PaymentBehavior: stripe.String("default_incomplete"),
	}
	subParams.AddExpand("latest_invoice.payment_intent")

	s, err := sub.New(subParams)
	if err != nil {
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}

	intent := &CheckoutIntent{
		SubscriptionID: s.ID,
		CustomerID:     cust.ID,
	}
	if s.LatestInvoice != nil && s.LatestInvoice.PaymentIntent != nil {
		intent.ClientSecret = s.LatestInvoice.PaymentIntent.ClientSecret
	}
	return intent, nil
}

// ParseWebhook verifies the payload signature when a webhook secret is
// configured and reduces the event to the fields the billing flow uses.
func (g *StripeGateway) ParseWebhook(payload []byte, sigHeader string) (*WebhookEvent, error) {
	var event stripe.Event
	if g.webhookSecret != "" {
		verified, err := webhook.ConstructEvent(payload, sigHeader, g.webhookSecret)
		if err != nil {
			return nil, fmt.Errorf("webhook signature verification failed: %w", err)
		}
		event = verified
	} else {
		if err := json.Unmarshal(payload, &event); err != nil {
			return nil, fmt.Errorf("failed to parse webhook payload: %w", err)
		}
	}

	out := &WebhookEvent{Type: string(event.Type)}

	switch out.Type {
	case EventPaymentSucceeded:
		var invoice stripe.Invoice
		if err := json.Unmarshal(event.Data.Raw, &invoice); err != nil {
			return nil, fmt.Errorf("failed to parse invoice: %w", err)
		}
		if invoice.Customer != nil {
			out.CustomerID = invoice.Customer.ID
		}
		if invoice.Subscription != nil {
			out.SubscriptionID = invoice.Subscription.ID
		}
	case EventSubscriptionDeleted:
		var subscription stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &subscription); err != nil {
			return nil, fmt.Errorf("failed to parse subscription: %w", err)
		}
		out.SubscriptionID = subscription.ID
		if subscription.Customer != nil {
			out.CustomerID = subscription.Customer.ID
		}
	}

	return out, nil
}
