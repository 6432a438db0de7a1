package usecase

import (
	"context"
	"math"

	"github.com/google/uuid"

	"github.com/techwavehq/techwave-api/internal/model"
	"github.com/techwavehq/techwave-api/internal/payment"
	"github.com/techwavehq/techwave-api/internal/repository"
)

// PaymentUsecase prepares charges with the payment provider and keeps the
// local payment history.
type PaymentUsecase interface {
	// CreateIntent prepares a charge for the given price (in major currency
	// units) and returns the provider's client secret. Each call carries a
	// fresh idempotency key so provider-side retries cannot double-charge.
	CreateIntent(ctx context.Context, price float64) (string, error)

	RecordPayment(ctx context.Context, p *model.Payment) (*repository.InsertResult, error)
	PaymentHistory(ctx context.Context, email string) ([]*model.Payment, error)
}

type paymentUsecase struct {
	gateway     payment.Gateway
	paymentRepo repository.PaymentRepository
	currency    string
}

func NewPaymentUsecase(
	gateway payment.Gateway,
	paymentRepo repository.PaymentRepository,
	currency string,
) PaymentUsecase {
	return &paymentUsecase{
		gateway:     gateway,
		paymentRepo: paymentRepo,
		currency:    currency,
	}
}

func (u *paymentUsecase) CreateIntent(ctx context.Context, price float64) (string, error) {
	amountCents := int64(math.Round(price * 100))
	if amountCents <= 0 {
		return "", payment.ErrInvalidAmount
	}

	intent, err := u.gateway.CreateIntent(ctx, payment.IntentParams{
		AmountCents:    amountCents,
		Currency:       u.currency,
		IdempotencyKey: uuid.NewString(),
	})
	if err != nil {
		return "", err
	}

	return intent.ClientSecret, nil
}

func (u *paymentUsecase) RecordPayment(
	ctx context.Context,
	p *model.Payment,
) (*repository.InsertResult, error) {
	return u.paymentRepo.CreatePayment(ctx, p)
}

func (u *paymentUsecase) PaymentHistory(
	ctx context.Context,
	email string,
) ([]*model.Payment, error) {
	return u.paymentRepo.ListPaymentsByEmail(ctx, email)
}
