package entity

import (
	"time"

	"github.com/google/uuid"
)

type CheckInStatus string

const (
	CheckInStatusCompleted CheckInStatus = "completed"
	CheckInStatusCancelled CheckInStatus = "cancelled"
)

// CheckIn records the single check-in allowed per booking
type CheckIn struct {
	BaseSimple
	BookingID    uuid.UUID     `db:"booking_id"`
	ConfirmedAt  time.Time     `db:"confirmed_at"`
	GateNumber   *string       `db:"gate_number"`
	BoardingTime time.Time     `db:"boarding_time"` // departure - 30 minutes
	Status       CheckInStatus `db:"status"`
}
