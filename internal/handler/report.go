package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/techwavehq/techwave-api/internal/model"
	"github.com/techwavehq/techwave-api/internal/usecase"
)

// ReportHandler serves the reports resource.
type ReportHandler struct {
	reportUsecase usecase.ReportUsecase
	logger        *zerolog.Logger
}

func NewReportHandler(reportUsecase usecase.ReportUsecase, logger *zerolog.Logger) *ReportHandler {
	return &ReportHandler{
		reportUsecase: reportUsecase,
		logger:        logger,
	}
}

// List handles GET /reports (moderator only).
func (h *ReportHandler) List(w http.ResponseWriter, r *http.Request) {
	reports, err := h.reportUsecase.ListReports(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list reports")
		writeMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, reports)
}

// Create handles POST /reports. Reporting is open to everyone.
func (h *ReportHandler) Create(w http.ResponseWriter, r *http.Request) {
	var report model.Report
	if !decodeJSON(w, r, &report) {
		return
	}

	result, err := h.reportUsecase.SubmitReport(r.Context(), &report)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to create report")
		writeMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Delete handles DELETE /reports/{id} (moderator only).
func (h *ReportHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.reportUsecase.DismissReport(r.Context(), id)
	if err != nil {
		h.logger.Error().Err(err).Str("id", id).Msg("failed to delete report")
		writeMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, result)
}
