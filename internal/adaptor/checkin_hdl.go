package adaptor

import (
	"encoding/json"
	"net/http"

	"airline-booking/internal/dto/request"
	"airline-booking/internal/usecase"
	"airline-booking/pkg/utils"

	"go.uber.org/zap"
)

type CheckInHandler struct {
	service usecase.CheckInService
	log     *zap.Logger
}

func NewCheckInHandler(service usecase.CheckInService, log *zap.Logger) *CheckInHandler {
	return &CheckInHandler{
		service: service,
		log:     log.With(zap.String("handler", "checkin")),
	}
}

// Search handles POST /api/checkin/search (protected)
func (h *CheckInHandler) Search(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CheckInSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.Search(r.Context(), userID, &req)
	if err != nil {
		respondError(w, h.log, err, "check-in search")
		return
	}

	utils.ResponseSuccess(w, "success", result)
}

// Confirm handles POST /api/checkin/confirm (protected)
func (h *CheckInHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CheckInConfirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.Confirm(r.Context(), userID, &req)
	if err != nil {
		respondError(w, h.log, err, "check-in confirm")
		return
	}

	utils.ResponseSuccess(w, "Check-in completed", result)
}
