package usecase

import (
	"context"
	"errors"
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

func newFlightServiceForTest(flightRepo *MockFlightRepository, flightCache *MockFlightCache) FlightService {
	repo := &repository.Repository{Flight: flightRepo}
	return NewFlightService(repo, flightCache, zap.NewNop())
}

func availability(seats int) *entity.FlightAvailability {
	flight := testFlight(uuid.New(), entity.FlightStatusScheduled)
	return &entity.FlightAvailability{
		Flight:         *flight,
		Capacity:       160,
		AvailableSeats: seats,
	}
}

func TestFlightSearch_CacheMissQueriesAndWrites(t *testing.T) {
	flightRepo := new(MockFlightRepository)
	flightCache := new(MockFlightCache)

	rows := []*entity.FlightAvailability{availability(42)}
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	flightCache.On("GetSearch", mock.Anything, "CGK", "DPS", "2026-09-01").Return(nil, nil)
	flightRepo.On("SearchAvailable", mock.Anything, "CGK", "DPS", date).Return(rows, nil)
	flightCache.On("SetSearch", mock.Anything, "CGK", "DPS", "2026-09-01", rows).Return(nil)

	service := newFlightServiceForTest(flightRepo, flightCache)

	results, err := service.Search(context.Background(), &request.FlightSearchRequest{
		From:      "cgk",
		To:        "dps",
		Departure: "2026-09-01",
	})

	assert.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, 42, results[0].AvailableSeats)
	// One passenger in economy by default
	assert.Equal(t, rows[0].EconomyPrice, results[0].TotalPrice)
	flightRepo.AssertExpectations(t)
	flightCache.AssertExpectations(t)
}

func TestFlightSearch_CacheHitSkipsDatabase(t *testing.T) {
	flightRepo := new(MockFlightRepository)
	flightCache := new(MockFlightCache)

	rows := []*entity.FlightAvailability{availability(42)}
	flightCache.On("GetSearch", mock.Anything, "CGK", "DPS", "2026-09-01").Return(rows, nil)

	service := newFlightServiceForTest(flightRepo, flightCache)

	results, err := service.Search(context.Background(), &request.FlightSearchRequest{
		From:       "CGK",
		To:         "DPS",
		Departure:  "2026-09-01",
		Passengers: 2,
		Class:      "business",
	})

	assert.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, 2*rows[0].BusinessPrice, results[0].TotalPrice)
	flightRepo.AssertNotCalled(t, "SearchAvailable", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	flightCache.AssertNotCalled(t, "SetSearch", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestFlightSearch_FiltersFlightsWithTooFewSeats(t *testing.T) {
	flightRepo := new(MockFlightRepository)
	flightCache := new(MockFlightCache)

	rows := []*entity.FlightAvailability{availability(1), availability(5)}
	flightCache.On("GetSearch", mock.Anything, "CGK", "DPS", "2026-09-01").Return(rows, nil)

	service := newFlightServiceForTest(flightRepo, flightCache)

	results, err := service.Search(context.Background(), &request.FlightSearchRequest{
		From:       "CGK",
		To:         "DPS",
		Departure:  "2026-09-01",
		Passengers: 3,
	})

	assert.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, 5, results[0].AvailableSeats)
}

func TestFlightSearch_CacheErrorFallsThrough(t *testing.T) {
	flightRepo := new(MockFlightRepository)
	flightCache := new(MockFlightCache)

	rows := []*entity.FlightAvailability{availability(42)}
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	flightCache.On("GetSearch", mock.Anything, "CGK", "DPS", "2026-09-01").Return(nil, errors.New("redis down"))
	flightRepo.On("SearchAvailable", mock.Anything, "CGK", "DPS", date).Return(rows, nil)
	flightCache.On("SetSearch", mock.Anything, "CGK", "DPS", "2026-09-01", rows).Return(errors.New("redis down"))

	service := newFlightServiceForTest(flightRepo, flightCache)

	results, err := service.Search(context.Background(), &request.FlightSearchRequest{
		From:      "CGK",
		To:        "DPS",
		Departure: "2026-09-01",
	})

	assert.NoError(t, err)
	assert.Len(t, results, 1)
	flightRepo.AssertExpectations(t)
}

func TestFlightGetByID_NotFound(t *testing.T) {
	flightRepo := new(MockFlightRepository)

	flightID := uuid.New()
	flightRepo.On("FindAvailabilityByID", mock.Anything, flightID).Return(nil, nil)

	service := newFlightServiceForTest(flightRepo, new(MockFlightCache))

	resp, err := service.GetByID(context.Background(), flightID)

	assert.Nil(t, resp)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestFlightGetStatusByNumber_NormalizesInput(t *testing.T) {
	flightRepo := new(MockFlightRepository)

	flight := testFlight(uuid.New(), entity.FlightStatusBoarding)
	flightRepo.On("FindByFlightNumber", mock.Anything, "GA204").Return(flight, nil)

	service := newFlightServiceForTest(flightRepo, new(MockFlightCache))

	resp, err := service.GetStatusByNumber(context.Background(), " ga204 ")

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, "GA204", resp.FlightNumber)
	assert.Equal(t, entity.FlightStatusBoarding, resp.Status)
}
