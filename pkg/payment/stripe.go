// Package payment creates Stripe payment intents for the checkout page.
package payment

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"go.uber.org/zap"
)

// intentCreator is the slice of the Stripe client this package uses.
type intentCreator interface {
	New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

type StripeProcessor struct {
	intents  intentCreator
	currency string
	log      *zap.Logger
}

func NewStripeProcessor(secretKey, currency string, log *zap.Logger) *StripeProcessor {
	sc := client.New(secretKey, nil)
	return &StripeProcessor{
		intents:  sc.PaymentIntents,
		currency: currency,
		log:      log.With(zap.String("adapter", "stripe")),
	}
}

// CreateIntent stages a card charge of amount (in the smallest currency unit)
// and returns the client secret the browser confirms it with.
func (p *StripeProcessor) CreateIntent(ctx context.Context, amount int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(p.currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := p.intents.New(params)
	if err != nil {
		p.log.Error("Failed to create payment intent", zap.Error(err), zap.Int64("amount", amount))
		return "", fmt.Errorf("create payment intent of %d %s: %w", amount, p.currency, err)
	}

	p.log.Debug("Payment intent created",
		zap.String("intent_id", intent.ID),
		zap.Int64("amount", amount),
	)
	return intent.ClientSecret, nil
}
