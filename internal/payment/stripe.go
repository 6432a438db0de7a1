package payment

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

// StripeGateway implements Gateway against the Stripe API.
type StripeGateway struct {
	client *client.API
}

// NewStripeGateway creates a StripeGateway with the given secret key. The
// client carries its own key rather than mutating the SDK's global state.
func NewStripeGateway(apiKey string) *StripeGateway {
	sc := &client.API{}
	sc.Init(apiKey, nil)

	return &StripeGateway{client: sc}
}

// CreateIntent prepares a card charge and returns its client secret. The
// intent is confirmed by the browser, not by this service.
func (g *StripeGateway) CreateIntent(ctx context.Context, p IntentParams) (*Intent, error) {
	if p.AmountCents <= 0 {
		return nil, ErrInvalidAmount
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(p.AmountCents),
		Currency: stripe.String(p.Currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	if p.IdempotencyKey != "" {
		params.IdempotencyKey = stripe.String(p.IdempotencyKey)
	}
	params.Context = ctx

	pi, err := g.client.PaymentIntents.New(params)
	if err != nil {
		return nil, mapStripeError(err)
	}

	return &Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
	}, nil
}

// mapStripeError translates SDK errors into domain errors so stripe-go does
// not leak past this package.
func mapStripeError(err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		if stripeErr.HTTPStatusCode >= http.StatusInternalServerError {
			return ErrProviderUnavailable
		}

		return fmt.Errorf("payment provider rejected the request: %s", stripeErr.Msg)
	}

	return fmt.Errorf("payment gateway: %w", err)
}
