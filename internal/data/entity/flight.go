package entity

import (
	"time"

	"github.com/google/uuid"
)

type FlightStatus string

const (
	FlightStatusScheduled FlightStatus = "scheduled"
	FlightStatusBoarding  FlightStatus = "boarding"
	FlightStatusDelayed   FlightStatus = "delayed"
	FlightStatusCancelled FlightStatus = "cancelled"
	FlightStatusCompleted FlightStatus = "completed"
)

type FareClass string

const (
	FareClassEconomy  FareClass = "economy"
	FareClassBusiness FareClass = "business"
	FareClassFirst    FareClass = "first"
)

type Flight struct {
	Base
	FlightNumber  string       `db:"flight_number"`
	AircraftID    uuid.UUID    `db:"aircraft_id"`
	Origin        string       `db:"origin"`      // airport code
	Destination   string       `db:"destination"` // airport code
	DepartureTime time.Time    `db:"departure_time"`
	ArrivalTime   time.Time    `db:"arrival_time"`
	EconomyPrice  float64      `db:"economy_price"`
	BusinessPrice float64      `db:"business_price"`
	FirstPrice    float64      `db:"first_price"`
	Status        FlightStatus `db:"status"`
}

// Bookable reports whether new bookings are accepted for the flight
func (f *Flight) Bookable() bool {
	return f.Status == FlightStatusScheduled || f.Status == FlightStatusBoarding
}

// FarePrice returns the per-seat price for the requested class.
// Unrecognized classes fall back to economy.
func (f *Flight) FarePrice(class FareClass) float64 {
	switch class {
	case FareClassBusiness:
		return f.BusinessPrice
	case FareClassFirst:
		return f.FirstPrice
	default:
		return f.EconomyPrice
	}
}

// FlightAvailability is a flight row with values derived at query time
type FlightAvailability struct {
	Flight
	Capacity       int `db:"capacity"`
	AvailableSeats int `db:"available_seats"`
}
