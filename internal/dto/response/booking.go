package response

import (
	"time"

	"airline-booking/internal/data/entity"
)

type BookingPassengerResponse struct {
	PassengerID string  `json:"passenger_id"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	SeatNumber  *string `json:"seat_number,omitempty"`
}

type BookingResponse struct {
	ID                 string                     `json:"id"`
	Reference          string                     `json:"reference"`
	UserID             string                     `json:"user_id"`
	FlightID           string                     `json:"flight_id"`
	FlightNumber       string                     `json:"flight_number,omitempty"`
	Origin             string                     `json:"origin,omitempty"`
	Destination        string                     `json:"destination,omitempty"`
	DepartureTime      *time.Time                 `json:"departure_time,omitempty"`
	NumberOfPassengers int                        `json:"number_of_passengers"`
	FareClass          entity.FareClass           `json:"fare_class"`
	TotalAmount        float64                    `json:"total_amount"`
	Status             entity.BookingStatus       `json:"status"`
	PaymentStatus      entity.PaymentStatus       `json:"payment_status"`
	Passengers         []BookingPassengerResponse `json:"passengers,omitempty"`
	CreatedAt          time.Time                  `json:"created_at"`
}

// BookingToResponse converts entity rows; flight may be nil for list views
func BookingToResponse(booking *entity.Booking, flight *entity.Flight, passengers []*entity.PassengerWithSeat) BookingResponse {
	resp := BookingResponse{
		ID:                 booking.ID.String(),
		Reference:          booking.Reference,
		UserID:             booking.UserID.String(),
		FlightID:           booking.FlightID.String(),
		NumberOfPassengers: booking.NumberOfPassengers,
		FareClass:          booking.FareClass,
		TotalAmount:        booking.TotalAmount,
		Status:             booking.Status,
		PaymentStatus:      booking.PaymentStatus,
		CreatedAt:          booking.CreatedAt,
	}

	if flight != nil {
		resp.FlightNumber = flight.FlightNumber
		resp.Origin = flight.Origin
		resp.Destination = flight.Destination
		departure := flight.DepartureTime
		resp.DepartureTime = &departure
	}

	for _, p := range passengers {
		resp.Passengers = append(resp.Passengers, BookingPassengerResponse{
			PassengerID: p.Passenger.ID.String(),
			FirstName:   p.FirstName,
			LastName:    p.LastName,
			SeatNumber:  p.SeatNumber,
		})
	}

	return resp
}
