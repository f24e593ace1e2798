package response

import (
	"time"

	"airline-booking/internal/data/entity"
)

type AircraftResponse struct {
	ID                 string                `json:"id"`
	Model              string                `json:"model"`
	RegistrationNumber string                `json:"registration_number"`
	Capacity           int                   `json:"capacity"`
	Status             entity.AircraftStatus `json:"status"`
	CreatedAt          time.Time             `json:"created_at"`
}

func AircraftToResponse(a *entity.Aircraft) AircraftResponse {
	return AircraftResponse{
		ID:                 a.ID.String(),
		Model:              a.Model,
		RegistrationNumber: a.RegistrationNumber,
		Capacity:           a.Capacity,
		Status:             a.Status,
		CreatedAt:          a.CreatedAt,
	}
}

type StatsResponse struct {
	TotalUsers        int64   `json:"total_users"`
	TotalFlights      int64   `json:"total_flights"`
	TotalBookings     int64   `json:"total_bookings"`
	CancelledBookings int64   `json:"cancelled_bookings"`
	TotalRevenue      float64 `json:"total_revenue"`
}
