package adaptor

import (
	"net/http"

	"airline-booking/internal/dto/request"
	"airline-booking/internal/usecase"
	"airline-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FlightHandler struct {
	service usecase.FlightService
	log     *zap.Logger
}

func NewFlightHandler(service usecase.FlightService, log *zap.Logger) *FlightHandler {
	return &FlightHandler{
		service: service,
		log:     log.With(zap.String("handler", "flight")),
	}
}

// Search handles GET /api/flights/search (public)
func (h *FlightHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := request.FlightSearchRequest{
		From:       query.Get("from"),
		To:         query.Get("to"),
		Departure:  query.Get("departure"),
		Passengers: utils.ParseInt(query.Get("passengers"), 1),
		Class:      query.Get("class"),
	}

	flights, err := h.service.Search(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err, "search flights")
		return
	}

	utils.ResponseSuccess(w, "success", flights)
}

// GetByID handles GET /api/flights/{id} (public)
func (h *FlightHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	flightID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid flight ID", nil)
		return
	}

	flight, err := h.service.GetByID(r.Context(), flightID)
	if err != nil {
		respondError(w, h.log, err, "get flight")
		return
	}

	utils.ResponseSuccess(w, "success", flight)
}

// GetStatus handles GET /api/flights/status/{flightNumber} (public)
func (h *FlightHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	flightNumber := chi.URLParam(r, "flightNumber")
	if flightNumber == "" {
		utils.ResponseBadRequest(w, "Flight number is required", nil)
		return
	}

	status, err := h.service.GetStatusByNumber(r.Context(), flightNumber)
	if err != nil {
		respondError(w, h.log, err, "get flight status")
		return
	}

	utils.ResponseSuccess(w, "success", status)
}

// GetAirports handles GET /api/flights/airports (public)
func (h *FlightHandler) GetAirports(w http.ResponseWriter, r *http.Request) {
	airports, err := h.service.GetAirports(r.Context())
	if err != nil {
		respondError(w, h.log, err, "get airports")
		return
	}

	utils.ResponseSuccess(w, "success", airports)
}
