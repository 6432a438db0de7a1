package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/techwavehq/techwave-api/internal/model"
	"github.com/techwavehq/techwave-api/internal/repository"
	"github.com/techwavehq/techwave-api/internal/usecase"
)

// UpdateCouponRequest is the payload for PATCH /coupons/{id}. Absent fields
// are left untouched.
type UpdateCouponRequest struct {
	Code           *string  `json:"code,omitempty"`
	ExpiryDate     *string  `json:"expiryDate,omitempty"`
	Description    *string  `json:"description,omitempty"`
	DiscountAmount *float64 `json:"discountAmount,omitempty"`
}

// CouponHandler serves the coupons resource.
type CouponHandler struct {
	couponUsecase usecase.CouponUsecase
	logger        *zerolog.Logger
}

func NewCouponHandler(couponUsecase usecase.CouponUsecase, logger *zerolog.Logger) *CouponHandler {
	return &CouponHandler{
		couponUsecase: couponUsecase,
		logger:        logger,
	}
}

// List handles GET /coupons.
func (h *CouponHandler) List(w http.ResponseWriter, r *http.Request) {
	coupons, err := h.couponUsecase.ListCoupons(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list coupons")
		writeMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, coupons)
}

// Create handles POST /coupons (admin only).
func (h *CouponHandler) Create(w http.ResponseWriter, r *http.Request) {
	var coupon model.Coupon
	if !decodeJSON(w, r, &coupon) {
		return
	}

	result, err := h.couponUsecase.CreateCoupon(r.Context(), &coupon)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to create coupon")
		writeMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Update handles PATCH /coupons/{id} (verified callers).
func (h *CouponHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateCouponRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.couponUsecase.UpdateCoupon(r.Context(), id, repository.UpdateCouponParams{
		Code:           req.Code,
		ExpiryDate:     req.ExpiryDate,
		Description:    req.Description,
		DiscountAmount: req.DiscountAmount,
	})
	if err != nil {
		h.logger.Error().Err(err).Str("id", id).Msg("failed to update coupon")
		writeMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Delete handles DELETE /coupons/{id} (admin only).
func (h *CouponHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.couponUsecase.DeleteCoupon(r.Context(), id)
	if err != nil {
		h.logger.Error().Err(err).Str("id", id).Msg("failed to delete coupon")
		writeMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, result)
}
