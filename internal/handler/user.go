package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/techwavehq/techwave-api/internal/model"
	"github.com/techwavehq/techwave-api/internal/usecase"
)

// RegisterRequest is the payload for POST /users. Role is deliberately not
// accepted here; promotion is a separate admin-gated operation.
type RegisterRequest struct {
	Name     string `json:"name"               validate:"required"`
	Email    string `json:"email"              validate:"required,email"`
	PhotoURL string `json:"photoURL,omitempty"`
}

// UserHandler serves the users resource.
type UserHandler struct {
	userUsecase usecase.UserUsecase
	validator   *PayloadValidator
	logger      *zerolog.Logger
}

func NewUserHandler(
	userUsecase usecase.UserUsecase,
	validator *PayloadValidator,
	logger *zerolog.Logger,
) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
		validator:   validator,
		logger:      logger,
	}
}

// Register handles POST /users. Registration is idempotent: a repeat email
// answers with the already-exists marker instead of an error.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !h.validator.check(w, req) {
		return
	}

	result, err := h.userUsecase.Register(r.Context(), &model.User{
		Name:     req.Name,
		Email:    req.Email,
		PhotoURL: req.PhotoURL,
		Role:     model.RoleUser,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrUserAlreadyExists) {
			writeJSON(w, http.StatusOK, map[string]any{
				"message":    "user already exists",
				"insertedId": nil,
			})
			return
		}

		h.logger.Error().Err(err).Msg("failed to register user")
		writeMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// List handles GET /users (admin only).
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userUsecase.ListUsers(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list users")
		writeMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, users)
}

// IsAdmin handles GET /users/admin/{email} (self only).
func (h *UserHandler) IsAdmin(w http.ResponseWriter, r *http.Request) {
	h.roleCheck(w, r, model.RoleAdmin, "admin")
}

// IsModerator handles GET /users/moderator/{email} (self only).
func (h *UserHandler) IsModerator(w http.ResponseWriter, r *http.Request) {
	h.roleCheck(w, r, model.RoleModerator, "moderator")
}

func (h *UserHandler) roleCheck(w http.ResponseWriter, r *http.Request, role model.Role, field string) {
	email := chi.URLParam(r, "email")

	ok, err := h.userUsecase.HasRole(r.Context(), email, role)
	if err != nil {
		h.logger.Error().Err(err).Str("email", email).Msg("failed to check user role")
		writeMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{field: ok})
}

// PromoteAdmin handles PATCH /users/admin/{id} (admin only).
func (h *UserHandler) PromoteAdmin(w http.ResponseWriter, r *http.Request) {
	h.promote(w, r, model.RoleAdmin)
}

// PromoteModerator handles PATCH /users/moderator/{id} (admin only).
func (h *UserHandler) PromoteModerator(w http.ResponseWriter, r *http.Request) {
	h.promote(w, r, model.RoleModerator)
}

func (h *UserHandler) promote(w http.ResponseWriter, r *http.Request, role model.Role) {
	id := chi.URLParam(r, "id")

	result, err := h.userUsecase.PromoteUser(r.Context(), id, role)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidRole) {
			writeMessage(w, http.StatusBadRequest, err.Error())
			return
		}

		h.logger.Error().Err(err).Str("id", id).Msg("failed to promote user")
		writeMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, result)
}
