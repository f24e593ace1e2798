package entity

import (
	"time"

	"github.com/google/uuid"
)

// Passenger is a named traveler. When UserID is set the passenger is
// saved on the user's profile for reuse across bookings.
type Passenger struct {
	Base
	UserID         *uuid.UUID `db:"user_id"`
	FirstName      string     `db:"first_name"`
	LastName       string     `db:"last_name"`
	DateOfBirth    *time.Time `db:"date_of_birth"`
	PassportNumber *string    `db:"passport_number"`
}
