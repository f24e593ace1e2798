package usecase

import (
	"airline-booking/internal/data/repository"
	"airline-booking/pkg/database"
	"airline-booking/pkg/token"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	User    UserService
	Flight  FlightService
	Booking BookingService
	CheckIn CheckInService
	Admin   AdminService
	Report  ReportService
}

func NewService(
	repo *repository.Repository,
	tx database.TxManager,
	tokenManager *token.Manager,
	flightCache FlightCacheStore,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:    NewAuthService(repo, tokenManager, log),
		User:    NewUserService(repo, log),
		Flight:  NewFlightService(repo, flightCache, log),
		Booking: NewBookingService(repo, tx, flightCache, log),
		CheckIn: NewCheckInService(repo, tx, log),
		Admin:   NewAdminService(repo, flightCache, log),
		Report:  NewReportService(repo, log),
	}
}
