package entity

import (
	"time"

	"github.com/google/uuid"
)

// BookingPassenger links one passenger to one booking. The bigserial id
// fixes the passenger order used for positional seat assignment.
type BookingPassenger struct {
	ID          int64     `db:"id"`
	BookingID   uuid.UUID `db:"booking_id"`
	PassengerID uuid.UUID `db:"passenger_id"`
	SeatNumber  *string   `db:"seat_number"` // nil until check-in or admin assignment
	CreatedAt   time.Time `db:"created_at"`
}

// PassengerWithSeat is a booking link joined with its passenger row
type PassengerWithSeat struct {
	LinkID     int64   `db:"link_id"`
	SeatNumber *string `db:"seat_number"`
	Passenger
}
