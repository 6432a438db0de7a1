package handler

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/techwavehq/techwave-api/internal/usecase"
)

// TokenRequest is the payload for POST /jwt. The email is the only claim the
// system keys on, so it is the one field that gets validated.
type TokenRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// TokenResponse carries the issued session token.
type TokenResponse struct {
	Token string `json:"token"`
}

// AuthHandler issues session tokens.
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *PayloadValidator
	logger      *zerolog.Logger
}

func NewAuthHandler(
	authUsecase usecase.AuthUsecase,
	validator *PayloadValidator,
	logger *zerolog.Logger,
) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
		logger:      logger,
	}
}

// IssueToken handles POST /jwt.
func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req TokenRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !h.validator.check(w, req) {
		return
	}

	token, err := h.authUsecase.IssueToken(req.Email)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to issue session token")
		writeMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, TokenResponse{Token: token})
}
