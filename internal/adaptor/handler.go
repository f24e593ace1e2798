package adaptor

import (
	"airline-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	User    *UserHandler
	Flight  *FlightHandler
	Booking *BookingHandler
	CheckIn *CheckInHandler
	Admin   *AdminHandler
	Report  *ReportHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		User:    NewUserHandler(service.User, log),
		Flight:  NewFlightHandler(service.Flight, log),
		Booking: NewBookingHandler(service.Booking, log),
		CheckIn: NewCheckInHandler(service.CheckIn, log),
		Admin:   NewAdminHandler(service.Admin, log),
		Report:  NewReportHandler(service.Report, log),
	}
}
