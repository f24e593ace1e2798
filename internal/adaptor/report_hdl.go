package adaptor

import (
	"net/http"

	"airline-booking/internal/usecase"
	"airline-booking/pkg/utils"

	"go.uber.org/zap"
)

type ReportHandler struct {
	service usecase.ReportService
	log     *zap.Logger
}

func NewReportHandler(service usecase.ReportService, log *zap.Logger) *ReportHandler {
	return &ReportHandler{
		service: service,
		log:     log.With(zap.String("handler", "report")),
	}
}

// Overview handles GET /api/reports/overview
func (h *ReportHandler) Overview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.service.Overview(r.Context())
	if err != nil {
		respondError(w, h.log, err, "overview report")
		return
	}

	utils.ResponseSuccess(w, "success", overview)
}

// Revenue handles GET /api/reports/revenue
func (h *ReportHandler) Revenue(w http.ResponseWriter, r *http.Request) {
	months := utils.ParseInt(r.URL.Query().Get("months"), 12)

	rows, err := h.service.RevenueByMonth(r.Context(), months)
	if err != nil {
		respondError(w, h.log, err, "revenue report")
		return
	}

	utils.ResponseSuccess(w, "success", rows)
}

// Bookings handles GET /api/reports/bookings
func (h *ReportHandler) Bookings(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.BookingsByStatus(r.Context())
	if err != nil {
		respondError(w, h.log, err, "bookings report")
		return
	}

	utils.ResponseSuccess(w, "success", rows)
}

// Routes handles GET /api/reports/routes
func (h *ReportHandler) Routes(w http.ResponseWriter, r *http.Request) {
	limit := utils.ParseInt(r.URL.Query().Get("limit"), 10)

	rows, err := h.service.TopRoutes(r.Context(), limit)
	if err != nil {
		respondError(w, h.log, err, "routes report")
		return
	}

	utils.ResponseSuccess(w, "success", rows)
}

// Performance handles GET /api/reports/performance
func (h *ReportHandler) Performance(w http.ResponseWriter, r *http.Request) {
	limit := utils.ParseInt(r.URL.Query().Get("limit"), 10)

	rows, err := h.service.FlightPerformance(r.Context(), limit)
	if err != nil {
		respondError(w, h.log, err, "performance report")
		return
	}

	utils.ResponseSuccess(w, "success", rows)
}
