package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/techwavehq/techwave-api/internal/model"
	"github.com/techwavehq/techwave-api/internal/usecase"
)

// VoteHandler serves both vote kinds; the router binds each route to a kind.
type VoteHandler struct {
	voteUsecase usecase.VoteUsecase
	logger      *zerolog.Logger
}

func NewVoteHandler(voteUsecase usecase.VoteUsecase, logger *zerolog.Logger) *VoteHandler {
	return &VoteHandler{
		voteUsecase: voteUsecase,
		logger:      logger,
	}
}

// Cast handles POST /upVote and /downVote (verified callers). A repeat vote
// for the same product answers with the already-voted marker.
func (h *VoteHandler) Cast(kind usecase.VoteKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var vote model.Vote
		if !decodeJSON(w, r, &vote) {
			return
		}

		result, err := h.voteUsecase.CastVote(r.Context(), kind, &vote)
		if err != nil {
			if errors.Is(err, usecase.ErrAlreadyVoted) {
				writeJSON(w, http.StatusOK, map[string]any{
					"message":    "already voted",
					"insertedId": nil,
				})
				return
			}

			h.logger.Error().Err(err).Str("kind", string(kind)).Msg("failed to cast vote")
			writeMessage(w, http.StatusInternalServerError, "internal server error")
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

// ListByEmail handles GET /upVote/{email} and /downVote/{email} (verified
// callers).
func (h *VoteHandler) ListByEmail(kind usecase.VoteKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := chi.URLParam(r, "email")

		votes, err := h.voteUsecase.ListVotesByEmail(r.Context(), kind, email)
		if err != nil {
			h.logger.Error().Err(err).Str("email", email).Msg("failed to list votes by email")
			writeMessage(w, http.StatusInternalServerError, "internal server error")
			return
		}

		writeJSON(w, http.StatusOK, votes)
	}
}

// ListByProduct handles GET /product/upVote/{id} and /product/downVote/{id}.
func (h *VoteHandler) ListByProduct(kind usecase.VoteKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		votes, err := h.voteUsecase.ListVotesByProduct(r.Context(), kind, id)
		if err != nil {
			h.logger.Error().Err(err).Str("product_id", id).Msg("failed to list votes by product")
			writeMessage(w, http.StatusInternalServerError, "internal server error")
			return
		}

		writeJSON(w, http.StatusOK, votes)
	}
}
