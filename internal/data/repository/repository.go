package repository

import (
	"airline-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User             UserRepository
	Session          SessionRepository
	Aircraft         AircraftRepository
	Airport          AirportRepository
	Flight           FlightRepository
	Booking          BookingRepository
	Passenger        PassengerRepository
	BookingPassenger BookingPassengerRepository
	CheckIn          CheckInRepository
	Report           ReportRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:             NewUserRepository(db, log),
		Session:          NewSessionRepository(db, log),
		Aircraft:         NewAircraftRepository(db, log),
		Airport:          NewAirportRepository(db, log),
		Flight:           NewFlightRepository(db, log),
		Booking:          NewBookingRepository(db, log),
		Passenger:        NewPassengerRepository(db, log),
		BookingPassenger: NewBookingPassengerRepository(db, log),
		CheckIn:          NewCheckInRepository(db, log),
		Report:           NewReportRepository(db, log),
	}
}
