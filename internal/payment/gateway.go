// Package payment abstracts the external payment provider behind a small
// gateway interface so the rest of the service never imports provider SDKs.
package payment

import (
	"context"
	"errors"
)

var (
	// ErrInvalidAmount is returned when a charge is requested for a
	// non-positive amount.
	ErrInvalidAmount = errors.New("payment amount must be positive")

	// ErrProviderUnavailable is returned when the provider reports an
	// internal failure rather than rejecting the request.
	ErrProviderUnavailable = errors.New("payment provider unavailable")
)

// IntentParams describes a charge to prepare with the provider.
type IntentParams struct {
	// AmountCents is the charge amount in the currency's smallest unit.
	AmountCents int64

	Currency string

	// IdempotencyKey guards against double-charging when a request is
	// retried after a network failure.
	IdempotencyKey string
}

// Intent is the provider's handle for a prepared charge. The client secret
// is handed to the browser to complete the payment.
type Intent struct {
	ID           string
	ClientSecret string
}

// Gateway prepares charges with an external payment provider.
type Gateway interface {
	CreateIntent(ctx context.Context, params IntentParams) (*Intent, error)
}
