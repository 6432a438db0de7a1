package handler

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/techwavehq/techwave-api/internal/usecase"
)

// StatsHandler serves the admin dashboard statistics.
type StatsHandler struct {
	statsUsecase usecase.StatsUsecase
	logger       *zerolog.Logger
}

func NewStatsHandler(statsUsecase usecase.StatsUsecase, logger *zerolog.Logger) *StatsHandler {
	return &StatsHandler{
		statsUsecase: statsUsecase,
		logger:       logger,
	}
}

// AdminStats handles GET /admin-stats (admin only).
func (h *StatsHandler) AdminStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsUsecase.AdminStats(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to compute admin stats")
		writeMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
