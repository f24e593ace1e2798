package entity

import (
	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusMissed    BookingStatus = "missed"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

type Booking struct {
	Base
	Reference          string        `db:"reference"`
	UserID             uuid.UUID     `db:"user_id"`
	FlightID           uuid.UUID     `db:"flight_id"`
	NumberOfPassengers int           `db:"number_of_passengers"`
	FareClass          FareClass     `db:"fare_class"`
	TotalAmount        float64       `db:"total_amount"` // frozen at creation time
	Status             BookingStatus `db:"status"`
	PaymentStatus      PaymentStatus `db:"payment_status"`
}

// Terminal reports whether the booking can no longer transition
func (b *Booking) Terminal() bool {
	return b.Status == BookingStatusCancelled || b.Status == BookingStatusCompleted
}
