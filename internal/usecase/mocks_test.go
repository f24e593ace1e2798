package usecase

import (
	"context"
	"time"

	"airline-booking/internal/data/entity"
	"airline-booking/internal/data/repository"
	"airline-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// fakeTxManager runs the function directly, no transaction. The mocked
// repositories ignore the Queryer anyway.
type fakeTxManager struct{}

func (fakeTxManager) WithTx(ctx context.Context, fn func(q database.Queryer) error) error {
	return fn(nil)
}

type MockFlightRepository struct {
	mock.Mock
}

func (m *MockFlightRepository) Create(ctx context.Context, flight *entity.Flight) error {
	args := m.Called(ctx, flight)
	return args.Error(0)
}

func (m *MockFlightRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Flight), args.Error(1)
}

func (m *MockFlightRepository) FindByIDTx(ctx context.Context, q database.Queryer, id uuid.UUID) (*entity.Flight, error) {
	args := m.Called(ctx, q, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Flight), args.Error(1)
}

func (m *MockFlightRepository) FindByIDForUpdateTx(ctx context.Context, q database.Queryer, id uuid.UUID) (*entity.Flight, error) {
	args := m.Called(ctx, q, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Flight), args.Error(1)
}

func (m *MockFlightRepository) FindByFlightNumber(ctx context.Context, flightNumber string) (*entity.Flight, error) {
	args := m.Called(ctx, flightNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Flight), args.Error(1)
}

func (m *MockFlightRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Flight, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]*entity.Flight), args.Error(1)
}

func (m *MockFlightRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFlightRepository) CountByAircraftID(ctx context.Context, aircraftID uuid.UUID) (int64, error) {
	args := m.Called(ctx, aircraftID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFlightRepository) SearchAvailable(ctx context.Context, origin, destination string, date time.Time) ([]*entity.FlightAvailability, error) {
	args := m.Called(ctx, origin, destination, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.FlightAvailability), args.Error(1)
}

func (m *MockFlightRepository) FindAvailabilityByID(ctx context.Context, id uuid.UUID) (*entity.FlightAvailability, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.FlightAvailability), args.Error(1)
}

func (m *MockFlightRepository) UpdateFields(ctx context.Context, id uuid.UUID, update repository.FlightUpdate) error {
	args := m.Called(ctx, id, update)
	return args.Error(0)
}

func (m *MockFlightRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) CreateTx(ctx context.Context, q database.Queryer, booking *entity.Booking) error {
	args := m.Called(ctx, q, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindByIDForUpdateTx(ctx context.Context, q database.Queryer, id uuid.UUID) (*entity.Booking, error) {
	args := m.Called(ctx, q, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindByReference(ctx context.Context, reference string) (*entity.Booking, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID, status *entity.BookingStatus, limit, offset int) ([]*entity.Booking, error) {
	args := m.Called(ctx, userID, status, limit, offset)
	return args.Get(0).([]*entity.Booking), args.Error(1)
}

func (m *MockBookingRepository) CountByUserID(ctx context.Context, userID uuid.UUID, status *entity.BookingStatus) (int64, error) {
	args := m.Called(ctx, userID, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepository) FindAll(ctx context.Context, status *entity.BookingStatus, limit, offset int) ([]*entity.Booking, error) {
	args := m.Called(ctx, status, limit, offset)
	return args.Get(0).([]*entity.Booking), args.Error(1)
}

func (m *MockBookingRepository) Count(ctx context.Context, status *entity.BookingStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepository) CountPassengersByFlightTx(ctx context.Context, q database.Queryer, flightID uuid.UUID) (int, error) {
	args := m.Called(ctx, q, flightID)
	return args.Int(0), args.Error(1)
}

func (m *MockBookingRepository) CountNonTerminalByFlight(ctx context.Context, flightID uuid.UUID) (int64, error) {
	args := m.Called(ctx, flightID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	args := m.Called(ctx, bookingID, status)
	return args.Error(0)
}

func (m *MockBookingRepository) UpdateStatusIfCurrent(ctx context.Context, bookingID uuid.UUID, from, to entity.BookingStatus) (bool, error) {
	args := m.Called(ctx, bookingID, from, to)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatusIfCurrentTx(ctx context.Context, q database.Queryer, bookingID uuid.UUID, from, to entity.BookingStatus) (bool, error) {
	args := m.Called(ctx, q, bookingID, from, to)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingRepository) CancelTx(ctx context.Context, q database.Queryer, bookingID uuid.UUID) error {
	args := m.Called(ctx, q, bookingID)
	return args.Error(0)
}

type MockAircraftRepository struct {
	mock.Mock
}

func (m *MockAircraftRepository) Create(ctx context.Context, aircraft *entity.Aircraft) error {
	args := m.Called(ctx, aircraft)
	return args.Error(0)
}

func (m *MockAircraftRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Aircraft, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Aircraft), args.Error(1)
}

func (m *MockAircraftRepository) FindByIDTx(ctx context.Context, q database.Queryer, id uuid.UUID) (*entity.Aircraft, error) {
	args := m.Called(ctx, q, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Aircraft), args.Error(1)
}

func (m *MockAircraftRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Aircraft, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]*entity.Aircraft), args.Error(1)
}

func (m *MockAircraftRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAircraftRepository) Update(ctx context.Context, aircraft *entity.Aircraft) error {
	args := m.Called(ctx, aircraft)
	return args.Error(0)
}

func (m *MockAircraftRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPassengerRepository struct {
	mock.Mock
}

func (m *MockPassengerRepository) Create(ctx context.Context, passenger *entity.Passenger) error {
	args := m.Called(ctx, passenger)
	return args.Error(0)
}

func (m *MockPassengerRepository) CreateTx(ctx context.Context, q database.Queryer, passenger *entity.Passenger) error {
	args := m.Called(ctx, q, passenger)
	return args.Error(0)
}

func (m *MockPassengerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Passenger, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Passenger), args.Error(1)
}

func (m *MockPassengerRepository) FindByIDTx(ctx context.Context, q database.Queryer, id uuid.UUID) (*entity.Passenger, error) {
	args := m.Called(ctx, q, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Passenger), args.Error(1)
}

func (m *MockPassengerRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Passenger, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]*entity.Passenger), args.Error(1)
}

type MockBookingPassengerRepository struct {
	mock.Mock
}

func (m *MockBookingPassengerRepository) CreateTx(ctx context.Context, q database.Queryer, link *entity.BookingPassenger) error {
	args := m.Called(ctx, q, link)
	return args.Error(0)
}

func (m *MockBookingPassengerRepository) FindPassengersByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.PassengerWithSeat, error) {
	args := m.Called(ctx, bookingID)
	return args.Get(0).([]*entity.PassengerWithSeat), args.Error(1)
}

func (m *MockBookingPassengerRepository) FindPassengersByBookingIDTx(ctx context.Context, q database.Queryer, bookingID uuid.UUID) ([]*entity.PassengerWithSeat, error) {
	args := m.Called(ctx, q, bookingID)
	return args.Get(0).([]*entity.PassengerWithSeat), args.Error(1)
}

func (m *MockBookingPassengerRepository) UpdateSeatTx(ctx context.Context, q database.Queryer, linkID int64, seatNumber string) error {
	args := m.Called(ctx, q, linkID, seatNumber)
	return args.Error(0)
}

type MockCheckInRepository struct {
	mock.Mock
}

func (m *MockCheckInRepository) CreateTx(ctx context.Context, q database.Queryer, checkIn *entity.CheckIn) error {
	args := m.Called(ctx, q, checkIn)
	return args.Error(0)
}

func (m *MockCheckInRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.CheckIn, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.CheckIn), args.Error(1)
}

func (m *MockCheckInRepository) FindByBookingIDTx(ctx context.Context, q database.Queryer, bookingID uuid.UUID) (*entity.CheckIn, error) {
	args := m.Called(ctx, q, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.CheckIn), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]*entity.User), args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, id uuid.UUID, update repository.UserProfileUpdate) error {
	args := m.Called(ctx, id, update)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.UserStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Create(ctx context.Context, session *entity.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Session), args.Error(1)
}

func (m *MockSessionRepository) Revoke(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockFlightCache struct {
	mock.Mock
}

func (m *MockFlightCache) GetSearch(ctx context.Context, origin, destination, date string) ([]*entity.FlightAvailability, error) {
	args := m.Called(ctx, origin, destination, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.FlightAvailability), args.Error(1)
}

func (m *MockFlightCache) SetSearch(ctx context.Context, origin, destination, date string, flights []*entity.FlightAvailability) error {
	args := m.Called(ctx, origin, destination, date, flights)
	return args.Error(0)
}

func (m *MockFlightCache) Invalidate(ctx context.Context) {
	m.Called(ctx)
}
