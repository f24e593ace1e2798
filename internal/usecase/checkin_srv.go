package usecase

import (
	"context"
	"fmt"
	"strings"
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

// checkInWindowHours is how long before departure the check-in window opens.
const checkInWindowHours = 24.0

// boardingLeadTime is subtracted from departure to derive boarding time.
const boardingLeadTime = 30 * time.Minute

type CheckInService interface {
	Search(ctx context.Context, userID uuid.UUID, req *request.CheckInSearchRequest) (*response.CheckInSearchResponse, error)
	Confirm(ctx context.Context, userID uuid.UUID, req *request.CheckInConfirmRequest) (*response.CheckInResponse, error)
}

type checkInService struct {
	repo *repository.Repository
	tx   database.TxManager
	log  *zap.Logger
	now  func() time.Time
}

func NewCheckInService(repo *repository.Repository, tx database.TxManager, log *zap.Logger) CheckInService {
	return &checkInService{
		repo: repo,
		tx:   tx,
		log:  log.With(zap.String("service", "checkin")),
		now:  time.Now,
	}
}

// Search resolves a booking by reference and last name and reports whether
// the check-in window is open. A departed flight with no check-in record
// marks the booking missed as a side effect.
func (s *checkInService) Search(ctx context.Context, userID uuid.UUID, req *request.CheckInSearchRequest) (*response.CheckInSearchResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Check-in search validation failed", zap.Any("errors", errs))
		return nil, apperror.Validation("validation failed", errs)
	}

	booking, err := s.repo.Booking.FindByReference(ctx, strings.TrimSpace(req.BookingReference))
	if err != nil {
		s.log.Error("Failed to find booking by reference",
			zap.Error(err),
			zap.String("reference", req.BookingReference),
		)
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, apperror.NotFound(fmt.Sprintf("booking %s not found", req.BookingReference))
	}
	if booking.UserID != userID {
		return nil, apperror.Forbidden("booking does not belong to you")
	}

	passengers, err := s.repo.BookingPassenger.FindPassengersByBookingID(ctx, booking.ID)
	if err != nil {
		return nil, fmt.Errorf("get booking passengers: %w", err)
	}

	// Secondary identity check: the given last name must match at least one
	// passenger on the booking.
	if !matchesLastName(passengers, req.LastName) {
		return nil, apperror.Forbidden("last name does not match any passenger on this booking")
	}

	if booking.Status != entity.BookingStatusConfirmed {
		return nil, apperror.InvalidState(fmt.Sprintf("booking %s is %s and cannot check in", booking.Reference, booking.Status))
	}

	flight, err := s.repo.Flight.FindByID(ctx, booking.FlightID)
	if err != nil {
		return nil, fmt.Errorf("get booking flight: %w", err)
	}
	if flight == nil {
		return nil, apperror.NotFound(fmt.Sprintf("flight for booking %s not found", booking.Reference))
	}

	checkIn, err := s.repo.CheckIn.FindByBookingID(ctx, booking.ID)
	if err != nil {
		return nil, fmt.Errorf("get check-in record: %w", err)
	}

	hours := flight.DepartureTime.Sub(s.now()).Hours()

	if hours < 0 && checkIn == nil {
		if err := s.markMissed(ctx, booking.ID); err != nil {
			return nil, err
		}
		return nil, apperror.InvalidState(fmt.Sprintf("flight %s has already departed", flight.FlightNumber))
	}
	if hours > checkInWindowHours {
		return nil, apperror.InvalidState(fmt.Sprintf("check-in opens %.1f hours from now", hours-checkInWindowHours))
	}

	bookingResp := response.BookingToResponse(booking, flight, passengers)
	return &response.CheckInSearchResponse{
		Booking:          bookingResp,
		AlreadyCheckedIn: checkIn != nil && checkIn.Status == entity.CheckInStatusCompleted,
		HoursToDeparture: hours,
	}, nil
}

// Confirm performs the actual check-in: seats are assigned to passengers in
// link order and the check-in row is inserted, all inside one transaction
// with the booking row locked first.
func (s *checkInService) Confirm(ctx context.Context, userID uuid.UUID, req *request.CheckInConfirmRequest) (*response.CheckInResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Check-in confirm validation failed", zap.Any("errors", errs))
		return nil, apperror.Validation("validation failed", errs)
	}

	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		return nil, apperror.Validation(fmt.Sprintf("invalid booking ID format %s", req.BookingID), nil)
	}

	var (
		checkIn     *entity.CheckIn
		seatNumbers []string
		markDepart  bool
		departedErr error
	)

	err = s.tx.WithTx(ctx, func(q database.Queryer) error {
		booking, err := s.repo.Booking.FindByIDForUpdateTx(ctx, q, bookingID)
		if err != nil {
			return fmt.Errorf("find booking: %w", err)
		}
		if booking == nil || booking.UserID != userID {
			return apperror.NotFound(fmt.Sprintf("booking %s not found", req.BookingID))
		}
		if booking.Status != entity.BookingStatusConfirmed {
			return apperror.InvalidState(fmt.Sprintf("booking %s is %s and cannot check in", booking.Reference, booking.Status))
		}

		existing, err := s.repo.CheckIn.FindByBookingIDTx(ctx, q, booking.ID)
		if err != nil {
			return fmt.Errorf("get check-in record: %w", err)
		}
		if existing != nil {
			return apperror.Conflict(fmt.Sprintf("booking %s is already checked in", booking.Reference))
		}

		flight, err := s.repo.Flight.FindByIDTx(ctx, q, booking.FlightID)
		if err != nil {
			return fmt.Errorf("get booking flight: %w", err)
		}
		if flight == nil {
			return apperror.NotFound(fmt.Sprintf("flight for booking %s not found", booking.Reference))
		}

		hours := flight.DepartureTime.Sub(s.now()).Hours()
		if hours < 0 {
			// The missed transition must survive even though this transaction
			// rolls back, so it is re-applied outside.
			markDepart = true
			departedErr = apperror.InvalidState(fmt.Sprintf("flight %s has already departed", flight.FlightNumber))
			return departedErr
		}
		if hours > checkInWindowHours {
			return apperror.InvalidState(fmt.Sprintf("check-in opens %.1f hours from now", hours-checkInWindowHours))
		}

		passengers, err := s.repo.BookingPassenger.FindPassengersByBookingIDTx(ctx, q, booking.ID)
		if err != nil {
			return fmt.Errorf("get booking passengers: %w", err)
		}
		if len(req.SeatNumbers) != len(passengers) {
			return apperror.InvalidState(fmt.Sprintf("expected %d seat number(s), got %d", len(passengers), len(req.SeatNumbers)))
		}

		now := s.now()
		checkIn = &entity.CheckIn{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: now,
			},
			BookingID:    booking.ID,
			ConfirmedAt:  now,
			GateNumber:   req.GateNumber,
			BoardingTime: flight.DepartureTime.Add(-boardingLeadTime),
			Status:       entity.CheckInStatusCompleted,
		}
		if err := s.repo.CheckIn.CreateTx(ctx, q, checkIn); err != nil {
			return fmt.Errorf("create check-in: %w", err)
		}

		// Seats are matched to passengers positionally, in link order.
		seatNumbers = make([]string, len(passengers))
		for i, passenger := range passengers {
			seat := utils.NormalizeSeatNumber(req.SeatNumbers[i])
			if err := s.repo.BookingPassenger.UpdateSeatTx(ctx, q, passenger.LinkID, seat); err != nil {
				return fmt.Errorf("assign seat %s: %w", seat, err)
			}
			seatNumbers[i] = seat
		}

		return nil
	})
	if err != nil {
		if markDepart {
			if missErr := s.markMissed(ctx, bookingID); missErr != nil {
				return nil, missErr
			}
			return nil, departedErr
		}
		if apperror.As(err) == nil {
			s.log.Error("Failed to confirm check-in",
				zap.Error(err),
				zap.String("booking_id", req.BookingID),
			)
		}
		return nil, err
	}

	s.log.Info("Check-in confirmed",
		zap.String("booking_id", bookingID.String()),
		zap.String("check_in_id", checkIn.ID.String()),
		zap.Strings("seats", seatNumbers),
	)

	resp := response.CheckInToResponse(checkIn, seatNumbers)
	return &resp, nil
}

// markMissed flips a confirmed booking to missed. The guarded update makes
// the transition happen at most once no matter how many stale check-in
// attempts race here.
func (s *checkInService) markMissed(ctx context.Context, bookingID uuid.UUID) error {
	updated, err := s.repo.Booking.UpdateStatusIfCurrent(ctx, bookingID, entity.BookingStatusConfirmed, entity.BookingStatusMissed)
	if err != nil {
		s.log.Error("Failed to mark booking missed",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return fmt.Errorf("mark booking missed: %w", err)
	}
	if updated {
		s.log.Info("Booking marked missed", zap.String("booking_id", bookingID.String()))
	}
	return nil
}

func matchesLastName(passengers []*entity.PassengerWithSeat, lastName string) bool {
	want := strings.TrimSpace(lastName)
	for _, p := range passengers {
		if strings.EqualFold(p.LastName, want) {
			return true
		}
	}
	return false
}
