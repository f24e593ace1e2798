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
	"airline-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FlightService interface {
	Search(ctx context.Context, req *request.FlightSearchRequest) ([]response.FlightResponse, error)
	GetByID(ctx context.Context, flightID uuid.UUID) (*response.FlightResponse, error)
	GetStatusByNumber(ctx context.Context, flightNumber string) (*response.FlightStatusResponse, error)
	GetAirports(ctx context.Context) ([]response.AirportResponse, error)
}

type flightService struct {
	repo  *repository.Repository
	cache FlightCacheStore
	log   *zap.Logger
}

func NewFlightService(repo *repository.Repository, flightCache FlightCacheStore, log *zap.Logger) FlightService {
	return &flightService{
		repo:  repo,
		cache: flightCache,
		log:   log.With(zap.String("service", "flight")),
	}
}

// Search returns bookable flights for a route and day. Availability and
// total price are derived per request; only the raw availability rows are
// cached, so the price math always reflects the current query.
func (s *flightService) Search(ctx context.Context, req *request.FlightSearchRequest) ([]response.FlightResponse, error) {
	if req.Passengers == 0 {
		req.Passengers = 1
	}
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Flight search validation failed", zap.Any("errors", errs))
		return nil, apperror.Validation("validation failed", errs)
	}

	origin := strings.ToUpper(strings.TrimSpace(req.From))
	destination := strings.ToUpper(strings.TrimSpace(req.To))

	date, err := time.Parse("2006-01-02", req.Departure)
	if err != nil {
		return nil, apperror.Validation(fmt.Sprintf("invalid departure date %s", req.Departure), nil)
	}

	fareClass := entity.FareClassEconomy
	if req.Class != "" {
		fareClass = entity.FareClass(req.Class)
	}

	flights, err := s.cache.GetSearch(ctx, origin, destination, req.Departure)
	if err != nil {
		s.log.Warn("Flight search cache read failed", zap.Error(err))
	}
	if flights == nil {
		flights, err = s.repo.Flight.SearchAvailable(ctx, origin, destination, date)
		if err != nil {
			s.log.Error("Failed to search flights",
				zap.Error(err),
				zap.String("origin", origin),
				zap.String("destination", destination),
			)
			return nil, fmt.Errorf("search flights: %w", err)
		}
		if err := s.cache.SetSearch(ctx, origin, destination, req.Departure, flights); err != nil {
			s.log.Warn("Flight search cache write failed", zap.Error(err))
		}
	}

	results := make([]response.FlightResponse, 0, len(flights))
	for _, fa := range flights {
		if fa.AvailableSeats < req.Passengers {
			continue
		}
		resp := response.FlightToResponse(fa)
		resp.TotalPrice = fa.FarePrice(fareClass) * float64(req.Passengers)
		results = append(results, resp)
	}

	s.log.Info("Flight search",
		zap.String("origin", origin),
		zap.String("destination", destination),
		zap.String("date", req.Departure),
		zap.Int("results", len(results)),
	)

	return results, nil
}

func (s *flightService) GetByID(ctx context.Context, flightID uuid.UUID) (*response.FlightResponse, error) {
	fa, err := s.repo.Flight.FindAvailabilityByID(ctx, flightID)
	if err != nil {
		s.log.Error("Failed to get flight",
			zap.Error(err),
			zap.String("flight_id", flightID.String()),
		)
		return nil, fmt.Errorf("get flight: %w", err)
	}
	if fa == nil {
		return nil, apperror.NotFound(fmt.Sprintf("flight %s not found", flightID.String()))
	}

	resp := response.FlightToResponse(fa)
	return &resp, nil
}

func (s *flightService) GetStatusByNumber(ctx context.Context, flightNumber string) (*response.FlightStatusResponse, error) {
	flightNumber = strings.ToUpper(strings.TrimSpace(flightNumber))
	if flightNumber == "" {
		return nil, apperror.Validation("flight number is required", nil)
	}

	flight, err := s.repo.Flight.FindByFlightNumber(ctx, flightNumber)
	if err != nil {
		s.log.Error("Failed to get flight status",
			zap.Error(err),
			zap.String("flight_number", flightNumber),
		)
		return nil, fmt.Errorf("get flight status: %w", err)
	}
	if flight == nil {
		return nil, apperror.NotFound(fmt.Sprintf("flight %s not found", flightNumber))
	}

	return &response.FlightStatusResponse{
		FlightNumber:  flight.FlightNumber,
		Origin:        flight.Origin,
		Destination:   flight.Destination,
		DepartureTime: flight.DepartureTime,
		ArrivalTime:   flight.ArrivalTime,
		Status:        flight.Status,
	}, nil
}

func (s *flightService) GetAirports(ctx context.Context) ([]response.AirportResponse, error) {
	airports, err := s.repo.Airport.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list airports", zap.Error(err))
		return nil, fmt.Errorf("list airports: %w", err)
	}

	responses := make([]response.AirportResponse, len(airports))
	for i, a := range airports {
		responses[i] = response.AirportToResponse(a)
	}
	return responses, nil
}
