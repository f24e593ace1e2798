package usecase

import (
	"context"
	"testing"
	"time"

	"airline-booking/internal/data/entity"
	"airline-booking/internal/data/repository"
	"airline-booking/internal/dto/request"
	"airline-booking/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newCheckInServiceForTest(
	flightRepo *MockFlightRepository,
	bookingRepo *MockBookingRepository,
	linkRepo *MockBookingPassengerRepository,
	checkInRepo *MockCheckInRepository,
	now time.Time,
) *checkInService {
	repo := &repository.Repository{
		Flight:           flightRepo,
		Booking:          bookingRepo,
		BookingPassenger: linkRepo,
		CheckIn:          checkInRepo,
	}
	return &checkInService{
		repo: repo,
		tx:   fakeTxManager{},
		log:  zap.NewNop(),
		now:  func() time.Time { return now },
	}
}

func strPtr(s string) *string { return &s }

func confirmedBooking(userID uuid.UUID, flightID uuid.UUID) *entity.Booking {
	return &entity.Booking{
		Base:               entity.Base{ID: uuid.New()},
		Reference:          "FL-20260825-091500-0007",
		UserID:             userID,
		FlightID:           flightID,
		NumberOfPassengers: 2,
		FareClass:          entity.FareClassEconomy,
		Status:             entity.BookingStatusConfirmed,
		PaymentStatus:      entity.PaymentStatusPaid,
	}
}

func bookedPassengers() []*entity.PassengerWithSeat {
	return []*entity.PassengerWithSeat{
		{LinkID: 1, Passenger: entity.Passenger{Base: entity.Base{ID: uuid.New()}, FirstName: "Dewi", LastName: "Santoso"}},
		{LinkID: 2, Passenger: entity.Passenger{Base: entity.Base{ID: uuid.New()}, FirstName: "Budi", LastName: "Santoso"}},
	}
}

func TestCheckInSearch_WindowOpen(t *testing.T) {
	flightRepo := new(MockFlightRepository)
	bookingRepo := new(MockBookingRepository)
	linkRepo := new(MockBookingPassengerRepository)
	checkInRepo := new(MockCheckInRepository)

	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	flightID := uuid.New()
	userID := uuid.New()
	booking := confirmedBooking(userID, flightID)
	flight := testFlight(flightID, entity.FlightStatusScheduled)
	flight.DepartureTime = now.Add(10 * time.Hour)

	bookingRepo.On("FindByReference", mock.Anything, booking.Reference).Return(booking, nil)
	linkRepo.On("FindPassengersByBookingID", mock.Anything, booking.ID).Return(bookedPassengers(), nil)
	flightRepo.On("FindByID", mock.Anything, flightID).Return(flight, nil)
	checkInRepo.On("FindByBookingID", mock.Anything, booking.ID).Return(nil, nil)

	service := newCheckInServiceForTest(flightRepo, bookingRepo, linkRepo, checkInRepo, now)

	resp, err := service.Search(context.Background(), userID, &request.CheckInSearchRequest{
		BookingReference: booking.Reference,
		LastName:         "santoso", // case-insensitive match
	})

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.False(t, resp.AlreadyCheckedIn)
	assert.InDelta(t, 10.0, resp.HoursToDeparture, 0.01)
	assert.Equal(t, booking.Reference, resp.Booking.Reference)
}

func TestCheckInSearch_LastNameMismatch(t *testing.T) {
	flightRepo := new(MockFlightRepository)
	bookingRepo := new(MockBookingRepository)
	linkRepo := new(MockBookingPassengerRepository)
	checkInRepo := new(MockCheckInRepository)

	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()
	booking := confirmedBooking(userID, uuid.New())

	bookingRepo.On("FindByReference", mock.Anything, booking.Reference).Return(booking, nil)
	linkRepo.On("FindPassengersByBookingID", mock.Anything, booking.ID).Return(bookedPassengers(), nil)

	service := newCheckInServiceForTest(flightRepo, bookingRepo, linkRepo, checkInRepo, now)

	resp, err := service.Search(context.Background(), userID, &request.CheckInSearchRequest{
		BookingReference: booking.Reference,
		LastName:         "Wijaya",
	})

	assert.Nil(t, resp)
	assert.Equal(t, apperror.KindForbidden, apperror.KindOf(err))
}

func TestCheckInSearch_NotOwner(t *testing.T) {
	bookingRepo := new(MockBookingRepository)

	booking := confirmedBooking(uuid.New(), uuid.New())
	bookingRepo.On("FindByReference", mock.Anything, booking.Reference).Return(booking, nil)

	service := newCheckInServiceForTest(new(MockFlightRepository), bookingRepo, new(MockBookingPassengerRepository), new(MockCheckInRepository), time.Now())

	resp, err := service.Search(context.Background(), uuid.New(), &request.CheckInSearchRequest{
		BookingReference: booking.Reference,
		LastName:         "Santoso",
	})

	assert.Nil(t, resp)
	assert.Equal(t, apperror.KindForbidden, apperror.KindOf(err))
}

func TestCheckInSearch_TooEarly(t *testing.T) {
	flightRepo := new(MockFlightRepository)
	bookingRepo := new(MockBookingRepository)
	linkRepo := new(MockBookingPassengerRepository)
	checkInRepo := new(MockCheckInRepository)

	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	flightID := uuid.New()
	userID := uuid.New()
	booking := confirmedBooking(userID, flightID)
	flight := testFlight(flightID, entity.FlightStatusScheduled)
	flight.DepartureTime = now.Add(30 * time.Hour)

	bookingRepo.On("FindByReference", mock.Anything, booking.Reference).Return(booking, nil)
	linkRepo.On("FindPassengersByBookingID", mock.Anything, booking.ID).Return(bookedPassengers(), nil)
	flightRepo.On("FindByID", mock.Anything, flightID).Return(flight, nil)
	checkInRepo.On("FindByBookingID", mock.Anything, booking.ID).Return(nil, nil)

	service := newCheckInServiceForTest(flightRepo, bookingRepo, linkRepo, checkInRepo, now)

	resp, err := service.Search(context.Background(), userID, &request.CheckInSearchRequest{
		BookingReference: booking.Reference,
		LastName:         "Santoso",
	})

	assert.Nil(t, resp)
	assert.Equal(t, apperror.KindInvalidState, apperror.KindOf(err))
	assert.Contains(t, err.Error(), "check-in opens 6.0 hours from now")
}

func TestCheckInSearch_DepartedMarksMissed(t *testing.T) {
	flightRepo := new(MockFlightRepository)
	bookingRepo := new(MockBookingRepository)
	linkRepo := new(MockBookingPassengerRepository)
	checkInRepo := new(MockCheckInRepository)

	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	flightID := uuid.New()
	userID := uuid.New()
	booking := confirmedBooking(userID, flightID)
	flight := testFlight(flightID, entity.FlightStatusScheduled)
	flight.DepartureTime = now.Add(-2 * time.Hour)

	bookingRepo.On("FindByReference", mock.Anything, booking.Reference).Return(booking, nil)
	linkRepo.On("FindPassengersByBookingID", mock.Anything, booking.ID).Return(bookedPassengers(), nil)
	flightRepo.On("FindByID", mock.Anything, flightID).Return(flight, nil)
	checkInRepo.On("FindByBookingID", mock.Anything, booking.ID).Return(nil, nil)
	bookingRepo.On("UpdateStatusIfCurrent", mock.Anything, booking.ID, entity.BookingStatusConfirmed, entity.BookingStatusMissed).Return(true, nil)

	service := newCheckInServiceForTest(flightRepo, bookingRepo, linkRepo, checkInRepo, now)

	resp, err := service.Search(context.Background(), userID, &request.CheckInSearchRequest{
		BookingReference: booking.Reference,
		LastName:         "Santoso",
	})

	assert.Nil(t, resp)
	assert.Equal(t, apperror.KindInvalidState, apperror.KindOf(err))
	assert.Contains(t, err.Error(), "already departed")
	bookingRepo.AssertCalled(t, "UpdateStatusIfCurrent", mock.Anything, booking.ID, entity.BookingStatusConfirmed, entity.BookingStatusMissed)
}

func TestCheckInSearch_CheckedInBookingSurvivesDeparture(t *testing.T) {
	flightRepo := new(MockFlightRepository)
	bookingRepo := new(MockBookingRepository)
	linkRepo := new(MockBookingPassengerRepository)
	checkInRepo := new(MockCheckInRepository)

	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	flightID := uuid.New()
	userID := uuid.New()
	booking := confirmedBooking(userID, flightID)
	flight := testFlight(flightID, entity.FlightStatusScheduled)
	flight.DepartureTime = now.Add(-2 * time.Hour)

	existing := &entity.CheckIn{
		BaseSimple: entity.BaseSimple{ID: uuid.New()},
		BookingID:  booking.ID,
		Status:     entity.CheckInStatusCompleted,
	}

	bookingRepo.On("FindByReference", mock.Anything, booking.Reference).Return(booking, nil)
	linkRepo.On("FindPassengersByBookingID", mock.Anything, booking.ID).Return(bookedPassengers(), nil)
	flightRepo.On("FindByID", mock.Anything, flightID).Return(flight, nil)
	checkInRepo.On("FindByBookingID", mock.Anything, booking.ID).Return(existing, nil)

	service := newCheckInServiceForTest(flightRepo, bookingRepo, linkRepo, checkInRepo, now)

	resp, err := service.Search(context.Background(), userID, &request.CheckInSearchRequest{
		BookingReference: booking.Reference,
		LastName:         "Santoso",
	})

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.True(t, resp.AlreadyCheckedIn)
	bookingRepo.AssertNotCalled(t, "UpdateStatusIfCurrent", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCheckInConfirm_Success(t *testing.T) {
	flightRepo := new(MockFlightRepository)
	bookingRepo := new(MockBookingRepository)
	linkRepo := new(MockBookingPassengerRepository)
	checkInRepo := new(MockCheckInRepository)

	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	flightID := uuid.New()
	userID := uuid.New()
	booking := confirmedBooking(userID, flightID)
	flight := testFlight(flightID, entity.FlightStatusScheduled)
	flight.DepartureTime = now.Add(5 * time.Hour)
	passengers := bookedPassengers()

	bookingRepo.On("FindByIDForUpdateTx", mock.Anything, mock.Anything, booking.ID).Return(booking, nil)
	checkInRepo.On("FindByBookingIDTx", mock.Anything, mock.Anything, booking.ID).Return(nil, nil)
	flightRepo.On("FindByIDTx", mock.Anything, mock.Anything, flightID).Return(flight, nil)
	linkRepo.On("FindPassengersByBookingIDTx", mock.Anything, mock.Anything, booking.ID).Return(passengers, nil)
	checkInRepo.On("CreateTx", mock.Anything, mock.Anything, mock.AnythingOfType("*entity.CheckIn")).Return(nil)
	linkRepo.On("UpdateSeatTx", mock.Anything, mock.Anything, int64(1), "12A").Return(nil)
	linkRepo.On("UpdateSeatTx", mock.Anything, mock.Anything, int64(2), "12B").Return(nil)

	service := newCheckInServiceForTest(flightRepo, bookingRepo, linkRepo, checkInRepo, now)

	resp, err := service.Confirm(context.Background(), userID, &request.CheckInConfirmRequest{
		BookingID:   booking.ID.String(),
		SeatNumbers: []string{"12a", "12B"},
		GateNumber:  strPtr("A7"),
	})

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, entity.CheckInStatusCompleted, resp.Status)
	assert.Equal(t, []string{"12A", "12B"}, resp.SeatNumbers)
	assert.Equal(t, flight.DepartureTime.Add(-30*time.Minute), resp.BoardingTime)
	assert.Equal(t, "A7", *resp.GateNumber)
	linkRepo.AssertNumberOfCalls(t, "UpdateSeatTx", 2)
	checkInRepo.AssertExpectations(t)
}

func TestCheckInConfirm_SeatCountMismatch(t *testing.T) {
	flightRepo := new(MockFlightRepository)
	bookingRepo := new(MockBookingRepository)
	linkRepo := new(MockBookingPassengerRepository)
	checkInRepo := new(MockCheckInRepository)

	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	flightID := uuid.New()
	userID := uuid.New()
	booking := confirmedBooking(userID, flightID)
	flight := testFlight(flightID, entity.FlightStatusScheduled)
	flight.DepartureTime = now.Add(5 * time.Hour)

	bookingRepo.On("FindByIDForUpdateTx", mock.Anything, mock.Anything, booking.ID).Return(booking, nil)
	checkInRepo.On("FindByBookingIDTx", mock.Anything, mock.Anything, booking.ID).Return(nil, nil)
	flightRepo.On("FindByIDTx", mock.Anything, mock.Anything, flightID).Return(flight, nil)
	linkRepo.On("FindPassengersByBookingIDTx", mock.Anything, mock.Anything, booking.ID).Return(bookedPassengers(), nil)

	service := newCheckInServiceForTest(flightRepo, bookingRepo, linkRepo, checkInRepo, now)

	resp, err := service.Confirm(context.Background(), userID, &request.CheckInConfirmRequest{
		BookingID:   booking.ID.String(),
		SeatNumbers: []string{"12A"},
	})

	assert.Nil(t, resp)
	assert.Equal(t, apperror.KindInvalidState, apperror.KindOf(err))
	assert.Contains(t, err.Error(), "expected 2 seat number(s), got 1")
	checkInRepo.AssertNotCalled(t, "CreateTx", mock.Anything, mock.Anything, mock.Anything)
}

func TestCheckInConfirm_AlreadyCheckedIn(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	checkInRepo := new(MockCheckInRepository)

	userID := uuid.New()
	booking := confirmedBooking(userID, uuid.New())
	existing := &entity.CheckIn{
		BaseSimple: entity.BaseSimple{ID: uuid.New()},
		BookingID:  booking.ID,
		Status:     entity.CheckInStatusCompleted,
	}

	bookingRepo.On("FindByIDForUpdateTx", mock.Anything, mock.Anything, booking.ID).Return(booking, nil)
	checkInRepo.On("FindByBookingIDTx", mock.Anything, mock.Anything, booking.ID).Return(existing, nil)

	service := newCheckInServiceForTest(new(MockFlightRepository), bookingRepo, new(MockBookingPassengerRepository), checkInRepo, time.Now())

	resp, err := service.Confirm(context.Background(), userID, &request.CheckInConfirmRequest{
		BookingID:   booking.ID.String(),
		SeatNumbers: []string{"12A", "12B"},
	})

	assert.Nil(t, resp)
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
}

func TestCheckInConfirm_DepartedMarksMissedOnce(t *testing.T) {
	flightRepo := new(MockFlightRepository)
	bookingRepo := new(MockBookingRepository)
	checkInRepo := new(MockCheckInRepository)

	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	flightID := uuid.New()
	userID := uuid.New()
	booking := confirmedBooking(userID, flightID)
	flight := testFlight(flightID, entity.FlightStatusScheduled)
	flight.DepartureTime = now.Add(-1 * time.Hour)

	bookingRepo.On("FindByIDForUpdateTx", mock.Anything, mock.Anything, booking.ID).Return(booking, nil)
	checkInRepo.On("FindByBookingIDTx", mock.Anything, mock.Anything, booking.ID).Return(nil, nil)
	flightRepo.On("FindByIDTx", mock.Anything, mock.Anything, flightID).Return(flight, nil)
	bookingRepo.On("UpdateStatusIfCurrent", mock.Anything, booking.ID, entity.BookingStatusConfirmed, entity.BookingStatusMissed).Return(true, nil)

	service := newCheckInServiceForTest(flightRepo, bookingRepo, new(MockBookingPassengerRepository), checkInRepo, now)

	resp, err := service.Confirm(context.Background(), userID, &request.CheckInConfirmRequest{
		BookingID:   booking.ID.String(),
		SeatNumbers: []string{"12A", "12B"},
	})

	assert.Nil(t, resp)
	assert.Equal(t, apperror.KindInvalidState, apperror.KindOf(err))
	assert.Contains(t, err.Error(), "already departed")
	bookingRepo.AssertNumberOfCalls(t, "UpdateStatusIfCurrent", 1)
	checkInRepo.AssertNotCalled(t, "CreateTx", mock.Anything, mock.Anything, mock.Anything)
}

func TestCheckInConfirm_BookingNotConfirmed(t *testing.T) {
	bookingRepo := new(MockBookingRepository)

	userID := uuid.New()
	booking := confirmedBooking(userID, uuid.New())
	booking.Status = entity.BookingStatusMissed

	bookingRepo.On("FindByIDForUpdateTx", mock.Anything, mock.Anything, booking.ID).Return(booking, nil)

	service := newCheckInServiceForTest(new(MockFlightRepository), bookingRepo, new(MockBookingPassengerRepository), new(MockCheckInRepository), time.Now())

	resp, err := service.Confirm(context.Background(), userID, &request.CheckInConfirmRequest{
		BookingID:   booking.ID.String(),
		SeatNumbers: []string{"12A", "12B"},
	})

	assert.Nil(t, resp)
	assert.Equal(t, apperror.KindInvalidState, apperror.KindOf(err))
	assert.Contains(t, err.Error(), "missed")
}
