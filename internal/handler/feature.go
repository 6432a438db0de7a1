package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/techwavehq/techwave-api/internal/model"
	"github.com/techwavehq/techwave-api/internal/usecase"
)

// FeatureHandler serves the featured list.
type FeatureHandler struct {
	featureUsecase usecase.FeatureUsecase
	logger         *zerolog.Logger
}

func NewFeatureHandler(featureUsecase usecase.FeatureUsecase, logger *zerolog.Logger) *FeatureHandler {
	return &FeatureHandler{
		featureUsecase: featureUsecase,
		logger:         logger,
	}
}

// List handles GET /features.
func (h *FeatureHandler) List(w http.ResponseWriter, r *http.Request) {
	features, err := h.featureUsecase.ListFeatures(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list features")
		writeMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, features)
}

// Get handles GET /features/{id}.
func (h *FeatureHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	feature, err := h.featureUsecase.GetFeature(r.Context(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			writeJSON(w, http.StatusOK, nil)
			return
		}

		h.logger.Error().Err(err).Str("id", id).Msg("failed to get feature")
		writeMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, feature)
}

// Create handles POST /features (moderator only).
func (h *FeatureHandler) Create(w http.ResponseWriter, r *http.Request) {
	var feature model.Feature
	if !decodeJSON(w, r, &feature) {
		return
	}

	result, err := h.featureUsecase.FeatureProduct(r.Context(), &feature)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to create feature")
		writeMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, result)
}
