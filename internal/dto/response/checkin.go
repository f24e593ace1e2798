package response

import (
	"time"

	"airline-booking/internal/data/entity"
)

type CheckInSearchResponse struct {
	Booking          BookingResponse `json:"booking"`
	AlreadyCheckedIn bool            `json:"already_checked_in"`
	HoursToDeparture float64         `json:"hours_to_departure"`
}

type CheckInResponse struct {
	ID           string               `json:"id"`
	BookingID    string               `json:"booking_id"`
	ConfirmedAt  time.Time            `json:"confirmed_at"`
	GateNumber   *string              `json:"gate_number,omitempty"`
	BoardingTime time.Time            `json:"boarding_time"`
	Status       entity.CheckInStatus `json:"status"`
	SeatNumbers  []string             `json:"seat_numbers"`
}

func CheckInToResponse(checkIn *entity.CheckIn, seatNumbers []string) CheckInResponse {
	return CheckInResponse{
		ID:           checkIn.ID.String(),
		BookingID:    checkIn.BookingID.String(),
		ConfirmedAt:  checkIn.ConfirmedAt,
		GateNumber:   checkIn.GateNumber,
		BoardingTime: checkIn.BoardingTime,
		Status:       checkIn.Status,
		SeatNumbers:  seatNumbers,
	}
}
