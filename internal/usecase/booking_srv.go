package usecase

import (
	"context"
	"fmt"
	"time"

	"airline-booking/internal/data/entity"
	"airline-booking/internal/data/repository"
	"airline-booking/internal/dto/request"
	"airline-booking/internal/dto/response"
	"airline-booking/pkg/apperror"
	"airline-booking/pkg/database"
	"airline-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	CreateBooking(ctx context.Context, userID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetUserBookings(ctx context.Context, userID uuid.UUID, status string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	GetUserBooking(ctx context.Context, userID, bookingID uuid.UUID) (*response.BookingResponse, error)
	CancelBooking(ctx context.Context, userID, bookingID uuid.UUID) error

	// Admin endpoints
	GetAllBookings(ctx context.Context, status string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	GetBookingByID(ctx context.Context, bookingID uuid.UUID) (*response.BookingResponse, error)
	UpdateBookingStatus(ctx context.Context, bookingID uuid.UUID, req *request.UpdateBookingStatusRequest) error
}

type bookingService struct {
	repo  *repository.Repository
	tx    database.TxManager
	cache FlightCacheStore
	log   *zap.Logger
}

func NewBookingService(repo *repository.Repository, tx database.TxManager, flightCache FlightCacheStore, log *zap.Logger) BookingService {
	return &bookingService{
		repo:  repo,
		tx:    tx,
		cache: flightCache,
		log:   log.With(zap.String("service", "booking")),
	}
}

// CreateBooking runs the whole reservation in one transaction: flight row
// lock, capacity check, booking insert, passenger rows and links. Any failure
// rolls the transaction back so no partial booking is ever observable.
func (s *bookingService) CreateBooking(ctx context.Context, userID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, apperror.Validation("validation failed", errs)
	}

	flightID, err := uuid.Parse(req.FlightID)
	if err != nil {
		return nil, apperror.Validation(fmt.Sprintf("invalid flight ID format %s", req.FlightID), nil)
	}

	fareClass := entity.FareClassEconomy
	if req.FareClass != "" {
		fareClass = entity.FareClass(req.FareClass)
	}

	var (
		booking    *entity.Booking
		flight     *entity.Flight
		passengers []*entity.PassengerWithSeat
	)

	err = s.tx.WithTx(ctx, func(q database.Queryer) error {
		// Lock the flight row first. Concurrent bookings for the same flight
		// serialize here, so the capacity count below stays valid until commit.
		var err error
		flight, err = s.repo.Flight.FindByIDForUpdateTx(ctx, q, flightID)
		if err != nil {
			return fmt.Errorf("check flight: %w", err)
		}
		if flight == nil {
			return apperror.NotFound(fmt.Sprintf("flight %s not found", req.FlightID))
		}
		if !flight.Bookable() {
			return apperror.InvalidState(fmt.Sprintf("flight %s is %s and cannot be booked", flight.FlightNumber, flight.Status))
		}

		aircraft, err := s.repo.Aircraft.FindByIDTx(ctx, q, flight.AircraftID)
		if err != nil {
			return fmt.Errorf("check aircraft: %w", err)
		}
		if aircraft == nil {
			return apperror.NotFound(fmt.Sprintf("aircraft for flight %s not found", flight.FlightNumber))
		}

		booked, err := s.repo.Booking.CountPassengersByFlightTx(ctx, q, flightID)
		if err != nil {
			return fmt.Errorf("check seat availability: %w", err)
		}

		available := aircraft.Capacity - booked
		if available < len(req.Passengers) {
			return apperror.InvalidState(fmt.Sprintf("not enough seats on flight %s: %d seat(s) remaining", flight.FlightNumber, available))
		}

		// No separate payment-authorization step in this system; bookings
		// are created confirmed and paid at the quoted fare.
		price := flight.FarePrice(fareClass)

		now := time.Now()
		booking = &entity.Booking{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			Reference:          utils.GenerateBookingReference(),
			UserID:             userID,
			FlightID:           flightID,
			NumberOfPassengers: len(req.Passengers),
			FareClass:          fareClass,
			TotalAmount:        price * float64(len(req.Passengers)),
			Status:             entity.BookingStatusConfirmed,
			PaymentStatus:      entity.PaymentStatusPaid,
		}

		if err := s.repo.Booking.CreateTx(ctx, q, booking); err != nil {
			if database.IsUniqueViolation(err) {
				return apperror.Conflict("booking reference collision, please retry")
			}
			return fmt.Errorf("create booking: %w", err)
		}

		for _, input := range req.Passengers {
			passenger, err := s.resolvePassenger(ctx, q, userID, input, now)
			if err != nil {
				return err
			}

			link := &entity.BookingPassenger{
				BookingID:   booking.ID,
				PassengerID: passenger.ID,
				CreatedAt:   now,
			}
			if input.SeatNumber != nil {
				seat := utils.NormalizeSeatNumber(*input.SeatNumber)
				link.SeatNumber = &seat
			}

			if err := s.repo.BookingPassenger.CreateTx(ctx, q, link); err != nil {
				return fmt.Errorf("create booking passenger: %w", err)
			}

			passengers = append(passengers, &entity.PassengerWithSeat{
				LinkID:     link.ID,
				SeatNumber: link.SeatNumber,
				Passenger:  *passenger,
			})
		}

		return nil
	})
	if err != nil {
		if apperror.As(err) == nil {
			s.log.Error("Failed to create booking",
				zap.Error(err),
				zap.String("user_id", userID.String()),
				zap.String("flight_id", req.FlightID),
			)
		}
		return nil, err
	}

	// Cached availability for this flight is now stale
	s.cache.Invalidate(ctx)

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("reference", booking.Reference),
		zap.String("user_id", userID.String()),
		zap.String("flight_number", flight.FlightNumber),
		zap.Int("passengers", booking.NumberOfPassengers),
		zap.Float64("total_amount", booking.TotalAmount),
	)

	resp := response.BookingToResponse(booking, flight, passengers)
	return &resp, nil
}

// resolvePassenger reuses a saved passenger by id or creates a fresh row.
func (s *bookingService) resolvePassenger(ctx context.Context, q database.Queryer, userID uuid.UUID, input request.PassengerInput, now time.Time) (*entity.Passenger, error) {
	if input.PassengerID != nil {
		passengerID, err := uuid.Parse(*input.PassengerID)
		if err != nil {
			return nil, apperror.Validation(fmt.Sprintf("invalid passenger ID format %s", *input.PassengerID), nil)
		}

		passenger, err := s.repo.Passenger.FindByIDTx(ctx, q, passengerID)
		if err != nil {
			return nil, fmt.Errorf("find passenger: %w", err)
		}
		if passenger == nil {
			return nil, apperror.NotFound(fmt.Sprintf("passenger %s not found", *input.PassengerID))
		}
		if passenger.UserID != nil && *passenger.UserID != userID {
			return nil, apperror.Forbidden("passenger does not belong to you")
		}
		return passenger, nil
	}

	passenger := &entity.Passenger{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		PassportNumber: input.PassportNumber,
	}
	if input.SaveForLater {
		owner := userID
		passenger.UserID = &owner
	}
	if input.DateOfBirth != nil {
		dob, err := time.Parse("2006-01-02", *input.DateOfBirth)
		if err != nil {
			return nil, apperror.Validation(fmt.Sprintf("invalid date of birth %s", *input.DateOfBirth), nil)
		}
		passenger.DateOfBirth = &dob
	}

	if err := s.repo.Passenger.CreateTx(ctx, q, passenger); err != nil {
		return nil, fmt.Errorf("create passenger: %w", err)
	}

	return passenger, nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID uuid.UUID, status string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	statusFilter, err := parseStatusFilter(status)
	if err != nil {
		return nil, err
	}

	bookings, err := s.repo.Booking.FindByUserID(ctx, userID, statusFilter, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get user bookings",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("get user bookings: %w", err)
	}

	total, err := s.repo.Booking.CountByUserID(ctx, userID, statusFilter)
	if err != nil {
		s.log.Error("Failed to count user bookings", zap.Error(err))
		return nil, fmt.Errorf("count user bookings: %w", err)
	}

	return response.NewPaginatedResponse(s.toBookingResponses(ctx, bookings), req.Page, req.Limit(), total), nil
}

func (s *bookingService) GetUserBooking(ctx context.Context, userID, bookingID uuid.UUID) (*response.BookingResponse, error) {
	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		s.log.Error("Failed to get booking",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, fmt.Errorf("get booking: %w", err)
	}
	// Ownership mismatch reads the same as a missing row
	if booking == nil || booking.UserID != userID {
		return nil, apperror.NotFound(fmt.Sprintf("booking %s not found", bookingID.String()))
	}

	return s.buildBookingResponse(ctx, booking)
}

// CancelBooking verifies ownership and lifecycle state, then sets
// status=cancelled and payment_status=refunded in one transaction. Assigned
// seats are released implicitly: a cancelled booking stops counting toward
// flight capacity.
func (s *bookingService) CancelBooking(ctx context.Context, userID, bookingID uuid.UUID) error {
	err := s.tx.WithTx(ctx, func(q database.Queryer) error {
		booking, err := s.repo.Booking.FindByIDForUpdateTx(ctx, q, bookingID)
		if err != nil {
			return fmt.Errorf("find booking: %w", err)
		}
		if booking == nil || booking.UserID != userID {
			return apperror.NotFound(fmt.Sprintf("booking %s not found", bookingID.String()))
		}
		if booking.Terminal() {
			return apperror.InvalidState(fmt.Sprintf("booking %s is already %s", booking.Reference, booking.Status))
		}

		return s.repo.Booking.CancelTx(ctx, q, bookingID)
	})
	if err != nil {
		if apperror.As(err) == nil {
			s.log.Error("Failed to cancel booking",
				zap.Error(err),
				zap.String("booking_id", bookingID.String()),
			)
		}
		return err
	}

	s.cache.Invalidate(ctx)

	s.log.Info("Booking cancelled",
		zap.String("booking_id", bookingID.String()),
		zap.String("user_id", userID.String()),
	)
	return nil
}

// ==================== ADMIN METHODS ====================

func (s *bookingService) GetAllBookings(ctx context.Context, status string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	statusFilter, err := parseStatusFilter(status)
	if err != nil {
		return nil, err
	}

	bookings, err := s.repo.Booking.FindAll(ctx, statusFilter, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get bookings", zap.Error(err))
		return nil, fmt.Errorf("get bookings: %w", err)
	}

	total, err := s.repo.Booking.Count(ctx, statusFilter)
	if err != nil {
		s.log.Error("Failed to count bookings", zap.Error(err))
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	return response.NewPaginatedResponse(s.toBookingResponses(ctx, bookings), req.Page, req.Limit(), total), nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, bookingID uuid.UUID) (*response.BookingResponse, error) {
	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		s.log.Error("Failed to get booking",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking == nil {
		return nil, apperror.NotFound(fmt.Sprintf("booking %s not found", bookingID.String()))
	}

	return s.buildBookingResponse(ctx, booking)
}

func (s *bookingService) UpdateBookingStatus(ctx context.Context, bookingID uuid.UUID, req *request.UpdateBookingStatusRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return apperror.Validation("validation failed", errs)
	}

	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return apperror.NotFound(fmt.Sprintf("booking %s not found", bookingID.String()))
	}

	if err := s.repo.Booking.UpdateStatus(ctx, bookingID, entity.BookingStatus(req.Status)); err != nil {
		s.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.String("status", req.Status),
		)
		return fmt.Errorf("update booking status: %w", err)
	}

	s.cache.Invalidate(ctx)

	s.log.Info("Booking status updated",
		zap.String("booking_id", bookingID.String()),
		zap.String("from", string(booking.Status)),
		zap.String("to", req.Status),
	)
	return nil
}

// ==================== HELPER METHODS ====================

func (s *bookingService) buildBookingResponse(ctx context.Context, booking *entity.Booking) (*response.BookingResponse, error) {
	flight, err := s.repo.Flight.FindByID(ctx, booking.FlightID)
	if err != nil {
		return nil, fmt.Errorf("get booking flight: %w", err)
	}

	passengers, err := s.repo.BookingPassenger.FindPassengersByBookingID(ctx, booking.ID)
	if err != nil {
		return nil, fmt.Errorf("get booking passengers: %w", err)
	}

	resp := response.BookingToResponse(booking, flight, passengers)
	return &resp, nil
}

// toBookingResponses enriches list rows with flight and passenger details.
// Lookup failures on individual rows degrade to partial responses instead of
// failing the whole page.
func (s *bookingService) toBookingResponses(ctx context.Context, bookings []*entity.Booking) []response.BookingResponse {
	responses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		flight, err := s.repo.Flight.FindByID(ctx, booking.FlightID)
		if err != nil {
			s.log.Warn("Failed to load flight for booking list",
				zap.Error(err),
				zap.String("booking_id", booking.ID.String()),
			)
		}
		passengers, err := s.repo.BookingPassenger.FindPassengersByBookingID(ctx, booking.ID)
		if err != nil {
			s.log.Warn("Failed to load passengers for booking list",
				zap.Error(err),
				zap.String("booking_id", booking.ID.String()),
			)
		}
		responses[i] = response.BookingToResponse(booking, flight, passengers)
	}
	return responses
}

func parseStatusFilter(status string) (*entity.BookingStatus, error) {
	if status == "" {
		return nil, nil
	}

	switch entity.BookingStatus(status) {
	case entity.BookingStatusPending, entity.BookingStatusConfirmed, entity.BookingStatusCancelled,
		entity.BookingStatusCompleted, entity.BookingStatusMissed:
		s := entity.BookingStatus(status)
		return &s, nil
	default:
		return nil, apperror.Validation(fmt.Sprintf("unknown booking status %s", status), nil)
	}
}
