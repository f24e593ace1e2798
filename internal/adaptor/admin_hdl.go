package adaptor

import (
	"encoding/json"
	"net/http"

	"airline-booking/internal/dto/request"
	"airline-booking/internal/usecase"
	"airline-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AdminHandler struct {
	service usecase.AdminService
	log     *zap.Logger
}

func NewAdminHandler(service usecase.AdminService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		log:     log.With(zap.String("handler", "admin")),
	}
}

// ==================== FLIGHTS ====================

// CreateFlight handles POST /api/admin/flights
func (h *AdminHandler) CreateFlight(w http.ResponseWriter, r *http.Request) {
	var req request.CreateFlightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	flight, err := h.service.CreateFlight(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err, "create flight")
		return
	}

	utils.ResponseCreated(w, "Flight created", flight)
}

// UpdateFlight handles PUT /api/admin/flights/{id}
func (h *AdminHandler) UpdateFlight(w http.ResponseWriter, r *http.Request) {
	flightID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid flight ID", nil)
		return
	}

	var req request.UpdateFlightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.UpdateFlight(r.Context(), flightID, &req); err != nil {
		respondError(w, h.log, err, "update flight")
		return
	}

	utils.ResponseSuccess(w, "Flight updated", nil)
}

// DeleteFlight handles DELETE /api/admin/flights/{id}
func (h *AdminHandler) DeleteFlight(w http.ResponseWriter, r *http.Request) {
	flightID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid flight ID", nil)
		return
	}

	if err := h.service.DeleteFlight(r.Context(), flightID); err != nil {
		respondError(w, h.log, err, "delete flight")
		return
	}

	utils.ResponseSuccess(w, "Flight deleted", nil)
}

// GetAllFlights handles GET /api/admin/flights
func (h *AdminHandler) GetAllFlights(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	flights, err := h.service.GetAllFlights(r.Context(), req)
	if err != nil {
		respondError(w, h.log, err, "get all flights")
		return
	}

	utils.ResponseSuccess(w, "success", flights)
}

// ==================== AIRCRAFT ====================

// CreateAircraft handles POST /api/admin/aircraft
func (h *AdminHandler) CreateAircraft(w http.ResponseWriter, r *http.Request) {
	var req request.CreateAircraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	aircraft, err := h.service.CreateAircraft(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err, "create aircraft")
		return
	}

	utils.ResponseCreated(w, "Aircraft created", aircraft)
}

// UpdateAircraft handles PUT /api/admin/aircraft/{id}
func (h *AdminHandler) UpdateAircraft(w http.ResponseWriter, r *http.Request) {
	aircraftID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid aircraft ID", nil)
		return
	}

	var req request.UpdateAircraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.UpdateAircraft(r.Context(), aircraftID, &req); err != nil {
		respondError(w, h.log, err, "update aircraft")
		return
	}

	utils.ResponseSuccess(w, "Aircraft updated", nil)
}

// DeleteAircraft handles DELETE /api/admin/aircraft/{id}
func (h *AdminHandler) DeleteAircraft(w http.ResponseWriter, r *http.Request) {
	aircraftID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid aircraft ID", nil)
		return
	}

	if err := h.service.DeleteAircraft(r.Context(), aircraftID); err != nil {
		respondError(w, h.log, err, "delete aircraft")
		return
	}

	utils.ResponseSuccess(w, "Aircraft deleted", nil)
}

// GetAllAircraft handles GET /api/admin/aircraft
func (h *AdminHandler) GetAllAircraft(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	aircraft, err := h.service.GetAllAircraft(r.Context(), req)
	if err != nil {
		respondError(w, h.log, err, "get all aircraft")
		return
	}

	utils.ResponseSuccess(w, "success", aircraft)
}

// ==================== USERS ====================

// GetAllUsers handles GET /api/admin/users
func (h *AdminHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	users, err := h.service.GetAllUsers(r.Context(), req)
	if err != nil {
		respondError(w, h.log, err, "get all users")
		return
	}

	utils.ResponseSuccess(w, "success", users)
}

// UpdateUserStatus handles PUT /api/admin/users/{id}/status
func (h *AdminHandler) UpdateUserStatus(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid user ID", nil)
		return
	}

	var req request.UpdateUserStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.UpdateUserStatus(r.Context(), userID, &req); err != nil {
		respondError(w, h.log, err, "update user status")
		return
	}

	utils.ResponseSuccess(w, "User status updated", nil)
}

// ==================== DASHBOARD ====================

// GetStats handles GET /api/admin/stats
func (h *AdminHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetStats(r.Context())
	if err != nil {
		respondError(w, h.log, err, "get stats")
		return
	}

	utils.ResponseSuccess(w, "success", stats)
}

// GetHotFlights handles GET /api/admin/hot-flights
func (h *AdminHandler) GetHotFlights(w http.ResponseWriter, r *http.Request) {
	limit := utils.ParseInt(r.URL.Query().Get("limit"), 10)

	flights, err := h.service.GetHotFlights(r.Context(), limit)
	if err != nil {
		respondError(w, h.log, err, "get hot flights")
		return
	}

	utils.ResponseSuccess(w, "success", flights)
}
