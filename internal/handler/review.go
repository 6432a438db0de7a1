package handler

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/techwavehq/techwave-api/internal/model"
	"github.com/techwavehq/techwave-api/internal/usecase"
)

// ReviewHandler serves the reviews resource.
type ReviewHandler struct {
	reviewUsecase usecase.ReviewUsecase
	logger        *zerolog.Logger
}

func NewReviewHandler(reviewUsecase usecase.ReviewUsecase, logger *zerolog.Logger) *ReviewHandler {
	return &ReviewHandler{
		reviewUsecase: reviewUsecase,
		logger:        logger,
	}
}

// List handles GET /reviews.
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviewUsecase.ListReviews(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list reviews")
		writeMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, reviews)
}

// Create handles POST /reviews.
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	var review model.Review
	if !decodeJSON(w, r, &review) {
		return
	}

	result, err := h.reviewUsecase.SubmitReview(r.Context(), &review)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to create review")
		writeMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, result)
}
