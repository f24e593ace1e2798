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

type AdminService interface {
	// Flights
	CreateFlight(ctx context.Context, req *request.CreateFlightRequest) (*response.FlightResponse, error)
	UpdateFlight(ctx context.Context, flightID uuid.UUID, req *request.UpdateFlightRequest) error
	DeleteFlight(ctx context.Context, flightID uuid.UUID) error
	GetAllFlights(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.FlightResponse], error)

	// Aircraft
	CreateAircraft(ctx context.Context, req *request.CreateAircraftRequest) (*response.AircraftResponse, error)
	UpdateAircraft(ctx context.Context, aircraftID uuid.UUID, req *request.UpdateAircraftRequest) error
	DeleteAircraft(ctx context.Context, aircraftID uuid.UUID) error
	GetAllAircraft(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.AircraftResponse], error)

	// Users
	GetAllUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error)
	UpdateUserStatus(ctx context.Context, userID uuid.UUID, req *request.UpdateUserStatusRequest) error

	// Dashboard
	GetStats(ctx context.Context) (*response.StatsResponse, error)
	GetHotFlights(ctx context.Context, limit int) ([]*repository.HotFlight, error)
}

type adminService struct {
	repo  *repository.Repository
	cache FlightCacheStore
	log   *zap.Logger
}

func NewAdminService(repo *repository.Repository, flightCache FlightCacheStore, log *zap.Logger) AdminService {
	return &adminService{
		repo:  repo,
		cache: flightCache,
		log:   log.With(zap.String("service", "admin")),
	}
}

// ==================== FLIGHTS ====================

func (s *adminService) CreateFlight(ctx context.Context, req *request.CreateFlightRequest) (*response.FlightResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create flight validation failed", zap.Any("errors", errs))
		return nil, apperror.Validation("validation failed", errs)
	}

	aircraftID, err := uuid.Parse(req.AircraftID)
	if err != nil {
		return nil, apperror.Validation(fmt.Sprintf("invalid aircraft ID format %s", req.AircraftID), nil)
	}

	departure, err := time.Parse(time.RFC3339, req.DepartureTime)
	if err != nil {
		return nil, apperror.Validation(fmt.Sprintf("invalid departure time %s, expected RFC3339", req.DepartureTime), nil)
	}
	arrival, err := time.Parse(time.RFC3339, req.ArrivalTime)
	if err != nil {
		return nil, apperror.Validation(fmt.Sprintf("invalid arrival time %s, expected RFC3339", req.ArrivalTime), nil)
	}
	if !arrival.After(departure) {
		return nil, apperror.Validation("arrival time must be after departure time", nil)
	}

	aircraft, err := s.repo.Aircraft.FindByID(ctx, aircraftID)
	if err != nil {
		return nil, fmt.Errorf("check aircraft: %w", err)
	}
	if aircraft == nil {
		return nil, apperror.NotFound(fmt.Sprintf("aircraft %s not found", req.AircraftID))
	}
	if aircraft.Status != entity.AircraftStatusActive {
		return nil, apperror.InvalidState(fmt.Sprintf("aircraft %s is %s", aircraft.RegistrationNumber, aircraft.Status))
	}

	origin := strings.ToUpper(req.Origin)
	destination := strings.ToUpper(req.Destination)
	for _, code := range []string{origin, destination} {
		airport, err := s.repo.Airport.FindByCode(ctx, code)
		if err != nil {
			return nil, fmt.Errorf("check airport: %w", err)
		}
		if airport == nil {
			return nil, apperror.NotFound(fmt.Sprintf("airport %s not found", code))
		}
	}

	now := time.Now()
	flight := &entity.Flight{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		FlightNumber:  strings.ToUpper(req.FlightNumber),
		AircraftID:    aircraftID,
		Origin:        origin,
		Destination:   destination,
		DepartureTime: departure,
		ArrivalTime:   arrival,
		EconomyPrice:  req.EconomyPrice,
		BusinessPrice: req.BusinessPrice,
		FirstPrice:    req.FirstPrice,
		Status:        entity.FlightStatusScheduled,
	}

	if err := s.repo.Flight.Create(ctx, flight); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, apperror.Conflict(fmt.Sprintf("flight number %s already exists", flight.FlightNumber))
		}
		s.log.Error("Failed to create flight", zap.Error(err), zap.String("flight_number", flight.FlightNumber))
		return nil, fmt.Errorf("create flight: %w", err)
	}

	s.cache.Invalidate(ctx)
	s.log.Info("Flight created",
		zap.String("flight_id", flight.ID.String()),
		zap.String("flight_number", flight.FlightNumber),
	)

	return &response.FlightResponse{
		ID:            flight.ID.String(),
		FlightNumber:  flight.FlightNumber,
		Origin:        flight.Origin,
		Destination:   flight.Destination,
		DepartureTime: flight.DepartureTime,
		ArrivalTime:   flight.ArrivalTime,
		Status:        flight.Status,
		Fares: response.FaresResponse{
			Economy:  flight.EconomyPrice,
			Business: flight.BusinessPrice,
			First:    flight.FirstPrice,
		},
		Capacity:       aircraft.Capacity,
		AvailableSeats: aircraft.Capacity,
	}, nil
}

func (s *adminService) UpdateFlight(ctx context.Context, flightID uuid.UUID, req *request.UpdateFlightRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return apperror.Validation("validation failed", errs)
	}

	flight, err := s.repo.Flight.FindByID(ctx, flightID)
	if err != nil {
		return fmt.Errorf("find flight: %w", err)
	}
	if flight == nil {
		return apperror.NotFound(fmt.Sprintf("flight %s not found", flightID.String()))
	}

	update := repository.FlightUpdate{
		EconomyPrice:  req.EconomyPrice,
		BusinessPrice: req.BusinessPrice,
		FirstPrice:    req.FirstPrice,
	}
	if req.Status != nil {
		status := entity.FlightStatus(*req.Status)
		update.Status = &status
	}

	departure := flight.DepartureTime
	arrival := flight.ArrivalTime
	if req.DepartureTime != nil {
		t, err := time.Parse(time.RFC3339, *req.DepartureTime)
		if err != nil {
			return apperror.Validation(fmt.Sprintf("invalid departure time %s, expected RFC3339", *req.DepartureTime), nil)
		}
		departure = t
		update.DepartureTime = &t
	}
	if req.ArrivalTime != nil {
		t, err := time.Parse(time.RFC3339, *req.ArrivalTime)
		if err != nil {
			return apperror.Validation(fmt.Sprintf("invalid arrival time %s, expected RFC3339", *req.ArrivalTime), nil)
		}
		arrival = t
		update.ArrivalTime = &t
	}
	if !arrival.After(departure) {
		return apperror.Validation("arrival time must be after departure time", nil)
	}

	if err := s.repo.Flight.UpdateFields(ctx, flightID, update); err != nil {
		s.log.Error("Failed to update flight", zap.Error(err), zap.String("flight_id", flightID.String()))
		return fmt.Errorf("update flight: %w", err)
	}

	s.cache.Invalidate(ctx)
	s.log.Info("Flight updated", zap.String("flight_id", flightID.String()))
	return nil
}

// DeleteFlight refuses while any pending or confirmed booking still points at
// the flight. Cancel the bookings first.
func (s *adminService) DeleteFlight(ctx context.Context, flightID uuid.UUID) error {
	flight, err := s.repo.Flight.FindByID(ctx, flightID)
	if err != nil {
		return fmt.Errorf("find flight: %w", err)
	}
	if flight == nil {
		return apperror.NotFound(fmt.Sprintf("flight %s not found", flightID.String()))
	}

	active, err := s.repo.Booking.CountNonTerminalByFlight(ctx, flightID)
	if err != nil {
		return fmt.Errorf("count flight bookings: %w", err)
	}
	if active > 0 {
		return apperror.InvalidState(fmt.Sprintf("flight %s has %d active booking(s)", flight.FlightNumber, active))
	}

	if err := s.repo.Flight.Delete(ctx, flightID); err != nil {
		s.log.Error("Failed to delete flight", zap.Error(err), zap.String("flight_id", flightID.String()))
		return fmt.Errorf("delete flight: %w", err)
	}

	s.cache.Invalidate(ctx)
	s.log.Info("Flight deleted",
		zap.String("flight_id", flightID.String()),
		zap.String("flight_number", flight.FlightNumber),
	)
	return nil
}

func (s *adminService) GetAllFlights(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.FlightResponse], error) {
	flights, err := s.repo.Flight.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list flights", zap.Error(err))
		return nil, fmt.Errorf("list flights: %w", err)
	}

	total, err := s.repo.Flight.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count flights: %w", err)
	}

	responses := make([]response.FlightResponse, len(flights))
	for i, f := range flights {
		responses[i] = response.FlightResponse{
			ID:            f.ID.String(),
			FlightNumber:  f.FlightNumber,
			Origin:        f.Origin,
			Destination:   f.Destination,
			DepartureTime: f.DepartureTime,
			ArrivalTime:   f.ArrivalTime,
			Status:        f.Status,
			Fares: response.FaresResponse{
				Economy:  f.EconomyPrice,
				Business: f.BusinessPrice,
				First:    f.FirstPrice,
			},
		}
	}

	return response.NewPaginatedResponse(responses, req.Page, req.Limit(), total), nil
}

// ==================== AIRCRAFT ====================

func (s *adminService) CreateAircraft(ctx context.Context, req *request.CreateAircraftRequest) (*response.AircraftResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create aircraft validation failed", zap.Any("errors", errs))
		return nil, apperror.Validation("validation failed", errs)
	}

	status := entity.AircraftStatusActive
	if req.Status != "" {
		status = entity.AircraftStatus(req.Status)
	}

	now := time.Now()
	aircraft := &entity.Aircraft{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Model:              req.Model,
		RegistrationNumber: strings.ToUpper(req.RegistrationNumber),
		Capacity:           req.Capacity,
		Status:             status,
	}

	if err := s.repo.Aircraft.Create(ctx, aircraft); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, apperror.Conflict(fmt.Sprintf("registration number %s already exists", aircraft.RegistrationNumber))
		}
		s.log.Error("Failed to create aircraft", zap.Error(err))
		return nil, fmt.Errorf("create aircraft: %w", err)
	}

	s.log.Info("Aircraft created",
		zap.String("aircraft_id", aircraft.ID.String()),
		zap.String("registration", aircraft.RegistrationNumber),
	)

	resp := response.AircraftToResponse(aircraft)
	return &resp, nil
}

func (s *adminService) UpdateAircraft(ctx context.Context, aircraftID uuid.UUID, req *request.UpdateAircraftRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return apperror.Validation("validation failed", errs)
	}

	aircraft, err := s.repo.Aircraft.FindByID(ctx, aircraftID)
	if err != nil {
		return fmt.Errorf("find aircraft: %w", err)
	}
	if aircraft == nil {
		return apperror.NotFound(fmt.Sprintf("aircraft %s not found", aircraftID.String()))
	}

	if req.Model != nil {
		aircraft.Model = *req.Model
	}
	if req.Capacity != nil {
		aircraft.Capacity = *req.Capacity
	}
	if req.Status != nil {
		aircraft.Status = entity.AircraftStatus(*req.Status)
	}
	aircraft.UpdatedAt = time.Now()

	if err := s.repo.Aircraft.Update(ctx, aircraft); err != nil {
		s.log.Error("Failed to update aircraft", zap.Error(err), zap.String("aircraft_id", aircraftID.String()))
		return fmt.Errorf("update aircraft: %w", err)
	}

	s.log.Info("Aircraft updated", zap.String("aircraft_id", aircraftID.String()))
	return nil
}

func (s *adminService) DeleteAircraft(ctx context.Context, aircraftID uuid.UUID) error {
	aircraft, err := s.repo.Aircraft.FindByID(ctx, aircraftID)
	if err != nil {
		return fmt.Errorf("find aircraft: %w", err)
	}
	if aircraft == nil {
		return apperror.NotFound(fmt.Sprintf("aircraft %s not found", aircraftID.String()))
	}

	flights, err := s.repo.Flight.CountByAircraftID(ctx, aircraftID)
	if err != nil {
		return fmt.Errorf("count aircraft flights: %w", err)
	}
	if flights > 0 {
		return apperror.InvalidState(fmt.Sprintf("aircraft %s is assigned to %d flight(s)", aircraft.RegistrationNumber, flights))
	}

	if err := s.repo.Aircraft.Delete(ctx, aircraftID); err != nil {
		s.log.Error("Failed to delete aircraft", zap.Error(err), zap.String("aircraft_id", aircraftID.String()))
		return fmt.Errorf("delete aircraft: %w", err)
	}

	s.log.Info("Aircraft deleted",
		zap.String("aircraft_id", aircraftID.String()),
		zap.String("registration", aircraft.RegistrationNumber),
	)
	return nil
}

func (s *adminService) GetAllAircraft(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.AircraftResponse], error) {
	aircraft, err := s.repo.Aircraft.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list aircraft", zap.Error(err))
		return nil, fmt.Errorf("list aircraft: %w", err)
	}

	total, err := s.repo.Aircraft.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count aircraft: %w", err)
	}

	responses := make([]response.AircraftResponse, len(aircraft))
	for i, a := range aircraft {
		responses[i] = response.AircraftToResponse(a)
	}

	return response.NewPaginatedResponse(responses, req.Page, req.Limit(), total), nil
}

// ==================== USERS ====================

func (s *adminService) GetAllUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error) {
	users, err := s.repo.User.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list users", zap.Error(err))
		return nil, fmt.Errorf("list users: %w", err)
	}

	total, err := s.repo.User.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	responses := make([]response.UserResponse, len(users))
	for i, u := range users {
		responses[i] = response.UserToResponse(u)
	}

	return response.NewPaginatedResponse(responses, req.Page, req.Limit(), total), nil
}

// UpdateUserStatus suspends or reactivates an account. Suspension takes
// effect on the next request because the middleware re-checks status.
func (s *adminService) UpdateUserStatus(ctx context.Context, userID uuid.UUID, req *request.UpdateUserStatusRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return apperror.Validation("validation failed", errs)
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return apperror.NotFound(fmt.Sprintf("user %s not found", userID.String()))
	}

	if err := s.repo.User.UpdateStatus(ctx, userID, entity.UserStatus(req.Status)); err != nil {
		s.log.Error("Failed to update user status", zap.Error(err), zap.String("user_id", userID.String()))
		return fmt.Errorf("update user status: %w", err)
	}

	s.log.Info("User status updated",
		zap.String("user_id", userID.String()),
		zap.String("from", string(user.Status)),
		zap.String("to", req.Status),
	)
	return nil
}

// ==================== DASHBOARD ====================

func (s *adminService) GetStats(ctx context.Context) (*response.StatsResponse, error) {
	overview, err := s.repo.Report.Overview(ctx)
	if err != nil {
		s.log.Error("Failed to get stats", zap.Error(err))
		return nil, fmt.Errorf("get stats: %w", err)
	}

	return &response.StatsResponse{
		TotalUsers:        overview.TotalUsers,
		TotalFlights:      overview.TotalFlights,
		TotalBookings:     overview.TotalBookings,
		CancelledBookings: overview.CancelledBookings,
		TotalRevenue:      overview.TotalRevenue,
	}, nil
}

func (s *adminService) GetHotFlights(ctx context.Context, limit int) ([]*repository.HotFlight, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}

	flights, err := s.repo.Report.HotFlights(ctx, limit)
	if err != nil {
		s.log.Error("Failed to get hot flights", zap.Error(err))
		return nil, fmt.Errorf("get hot flights: %w", err)
	}
	return flights, nil
}
