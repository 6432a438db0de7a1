package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/techwavehq/techwave-api/internal/model"
	"github.com/techwavehq/techwave-api/internal/payment"
	"github.com/techwavehq/techwave-api/internal/usecase"
)

// PaymentIntentRequest is the payload for POST /create-payment-intent.
// Price is in major currency units.
type PaymentIntentRequest struct {
	Price float64 `json:"price" validate:"required,gt=0"`
}

// PaymentIntentResponse carries the provider's client secret back to the
// browser, which completes the charge.
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// PaymentHandler serves payment-intent creation and the payment history.
type PaymentHandler struct {
	paymentUsecase usecase.PaymentUsecase
	validator      *PayloadValidator
	logger         *zerolog.Logger
}

func NewPaymentHandler(
	paymentUsecase usecase.PaymentUsecase,
	validator *PayloadValidator,
	logger *zerolog.Logger,
) *PaymentHandler {
	return &PaymentHandler{
		paymentUsecase: paymentUsecase,
		validator:      validator,
		logger:         logger,
	}
}

// CreateIntent handles POST /create-payment-intent.
func (h *PaymentHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var req PaymentIntentRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !h.validator.check(w, req) {
		return
	}

	clientSecret, err := h.paymentUsecase.CreateIntent(r.Context(), req.Price)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrInvalidAmount):
			writeMessage(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, payment.ErrProviderUnavailable):
			writeMessage(w, http.StatusBadGateway, "payment provider unavailable")
		default:
			h.logger.Error().Err(err).Msg("failed to create payment intent")
			writeMessage(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, PaymentIntentResponse{ClientSecret: clientSecret})
}

// History handles GET /payments/{email} (self only).
func (h *PaymentHandler) History(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	payments, err := h.paymentUsecase.PaymentHistory(r.Context(), email)
	if err != nil {
		h.logger.Error().Err(err).Str("email", email).Msg("failed to list payments")
		writeMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, payments)
}

// Record handles POST /payments.
func (h *PaymentHandler) Record(w http.ResponseWriter, r *http.Request) {
	var p model.Payment
	if !decodeJSON(w, r, &p) {
		return
	}

	result, err := h.paymentUsecase.RecordPayment(r.Context(), &p)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to record payment")
		writeMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, result)
}
