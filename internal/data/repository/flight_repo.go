package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"airline-booking/internal/data/entity"
	"airline-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// FlightUpdate enumerates the optional flight fields an admin may change.
// Nil fields are skipped; set fields become parameterized assignments.
type FlightUpdate struct {
	Status        *entity.FlightStatus
	DepartureTime *time.Time
	ArrivalTime   *time.Time
	EconomyPrice  *float64
	BusinessPrice *float64
	FirstPrice    *float64
}

type FlightRepository interface {
	Create(ctx context.Context, flight *entity.Flight) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Flight, error)
	FindByIDTx(ctx context.Context, q database.Queryer, id uuid.UUID) (*entity.Flight, error)
	// FindByIDForUpdateTx locks the flight row for the rest of the
	// transaction, serializing concurrent capacity checks per flight.
	FindByIDForUpdateTx(ctx context.Context, q database.Queryer, id uuid.UUID) (*entity.Flight, error)
	FindByFlightNumber(ctx context.Context, flightNumber string) (*entity.Flight, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Flight, error)
	Count(ctx context.Context) (int64, error)
	CountByAircraftID(ctx context.Context, aircraftID uuid.UUID) (int64, error)
	SearchAvailable(ctx context.Context, origin, destination string, date time.Time) ([]*entity.FlightAvailability, error)
	FindAvailabilityByID(ctx context.Context, id uuid.UUID) (*entity.FlightAvailability, error)
	UpdateFields(ctx context.Context, id uuid.UUID, update FlightUpdate) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type flightRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFlightRepository(db database.PgxIface, log *zap.Logger) FlightRepository {
	return &flightRepository{
		db:  db,
		log: log.With(zap.String("repository", "flight")),
	}
}

const flightColumns = `id, flight_number, aircraft_id, origin, destination, departure_time, arrival_time,
		economy_price, business_price, first_price, status, created_at, updated_at`

func scanFlight(row pgx.Row) (*entity.Flight, error) {
	var flight entity.Flight
	err := row.Scan(
		&flight.ID,
		&flight.FlightNumber,
		&flight.AircraftID,
		&flight.Origin,
		&flight.Destination,
		&flight.DepartureTime,
		&flight.ArrivalTime,
		&flight.EconomyPrice,
		&flight.BusinessPrice,
		&flight.FirstPrice,
		&flight.Status,
		&flight.CreatedAt,
		&flight.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &flight, nil
}

func (r *flightRepository) Create(ctx context.Context, flight *entity.Flight) error {
	query := `
		INSERT INTO flights (id, flight_number, aircraft_id, origin, destination, departure_time, arrival_time,
			economy_price, business_price, first_price, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.db.Exec(ctx, query,
		flight.ID,
		flight.FlightNumber,
		flight.AircraftID,
		flight.Origin,
		flight.Destination,
		flight.DepartureTime,
		flight.ArrivalTime,
		flight.EconomyPrice,
		flight.BusinessPrice,
		flight.FirstPrice,
		flight.Status,
		flight.CreatedAt,
		flight.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create flight",
			zap.Error(err),
			zap.String("flight_number", flight.FlightNumber),
		)
		return fmt.Errorf("create flight %s: %w", flight.FlightNumber, err)
	}

	return nil
}

func (r *flightRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Flight, error) {
	query := `SELECT ` + flightColumns + ` FROM flights WHERE id = $1`

	flight, err := scanFlight(r.db.QueryRow(ctx, query, id))
	if err != nil {
		r.log.Error("Failed to find flight by ID",
			zap.Error(err),
			zap.String("flight_id", id.String()),
		)
		return nil, fmt.Errorf("find flight by ID %s: %w", id.String(), err)
	}

	return flight, nil
}

func (r *flightRepository) FindByIDTx(ctx context.Context, q database.Queryer, id uuid.UUID) (*entity.Flight, error) {
	query := `SELECT ` + flightColumns + ` FROM flights WHERE id = $1`

	flight, err := scanFlight(q.QueryRow(ctx, query, id))
	if err != nil {
		r.log.Error("Failed to find flight by ID",
			zap.Error(err),
			zap.String("flight_id", id.String()),
		)
		return nil, fmt.Errorf("find flight by ID %s: %w", id.String(), err)
	}

	return flight, nil
}

func (r *flightRepository) FindByIDForUpdateTx(ctx context.Context, q database.Queryer, id uuid.UUID) (*entity.Flight, error) {
	query := `SELECT ` + flightColumns + ` FROM flights WHERE id = $1 FOR UPDATE`

	flight, err := scanFlight(q.QueryRow(ctx, query, id))
	if err != nil {
		r.log.Error("Failed to lock flight row",
			zap.Error(err),
			zap.String("flight_id", id.String()),
		)
		return nil, fmt.Errorf("lock flight %s: %w", id.String(), err)
	}

	return flight, nil
}

func (r *flightRepository) FindByFlightNumber(ctx context.Context, flightNumber string) (*entity.Flight, error) {
	query := `SELECT ` + flightColumns + ` FROM flights WHERE flight_number = $1 ORDER BY departure_time DESC LIMIT 1`

	flight, err := scanFlight(r.db.QueryRow(ctx, query, flightNumber))
	if err != nil {
		r.log.Error("Failed to find flight by number",
			zap.Error(err),
			zap.String("flight_number", flightNumber),
		)
		return nil, fmt.Errorf("find flight by number %s: %w", flightNumber, err)
	}

	return flight, nil
}

func (r *flightRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Flight, error) {
	query := `SELECT ` + flightColumns + ` FROM flights ORDER BY departure_time DESC LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find flights", zap.Error(err))
		return nil, fmt.Errorf("find flights: %w", err)
	}
	defer rows.Close()

	return collectFlights(rows, r.log)
}

func collectFlights(rows pgx.Rows, log *zap.Logger) ([]*entity.Flight, error) {
	var flights []*entity.Flight
	for rows.Next() {
		var flight entity.Flight
		err := rows.Scan(
			&flight.ID,
			&flight.FlightNumber,
			&flight.AircraftID,
			&flight.Origin,
			&flight.Destination,
			&flight.DepartureTime,
			&flight.ArrivalTime,
			&flight.EconomyPrice,
			&flight.BusinessPrice,
			&flight.FirstPrice,
			&flight.Status,
			&flight.CreatedAt,
			&flight.UpdatedAt,
		)
		if err != nil {
			log.Error("Failed to scan flight row", zap.Error(err))
			return nil, fmt.Errorf("scan flight row: %w", err)
		}
		flights = append(flights, &flight)
	}

	if err := rows.Err(); err != nil {
		log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate flight rows: %w", err)
	}

	return flights, nil
}

func (r *flightRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM flights`).Scan(&count); err != nil {
		r.log.Error("Failed to count flights", zap.Error(err))
		return 0, fmt.Errorf("count flights: %w", err)
	}
	return count, nil
}

func (r *flightRepository) CountByAircraftID(ctx context.Context, aircraftID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM flights WHERE aircraft_id = $1`

	var count int64
	if err := r.db.QueryRow(ctx, query, aircraftID).Scan(&count); err != nil {
		r.log.Error("Failed to count flights by aircraft",
			zap.Error(err),
			zap.String("aircraft_id", aircraftID.String()),
		)
		return 0, fmt.Errorf("count flights by aircraft %s: %w", aircraftID.String(), err)
	}
	return count, nil
}

// availabilityQuery derives available_seats at query time: aircraft capacity
// minus the passenger sum of non-cancelled bookings.
const availabilityQuery = `
	SELECT f.id, f.flight_number, f.aircraft_id, f.origin, f.destination, f.departure_time, f.arrival_time,
		f.economy_price, f.business_price, f.first_price, f.status, f.created_at, f.updated_at,
		a.capacity,
		a.capacity - COALESCE(booked.passenger_count, 0) AS available_seats
	FROM flights f
	JOIN aircraft a ON a.id = f.aircraft_id
	LEFT JOIN (
		SELECT flight_id, SUM(number_of_passengers) AS passenger_count
		FROM bookings
		WHERE status <> 'cancelled'
		GROUP BY flight_id
	) booked ON booked.flight_id = f.id
`

func scanFlightAvailability(rows pgx.Rows) (*entity.FlightAvailability, error) {
	var fa entity.FlightAvailability
	err := rows.Scan(
		&fa.ID,
		&fa.FlightNumber,
		&fa.AircraftID,
		&fa.Origin,
		&fa.Destination,
		&fa.DepartureTime,
		&fa.ArrivalTime,
		&fa.EconomyPrice,
		&fa.BusinessPrice,
		&fa.FirstPrice,
		&fa.Status,
		&fa.CreatedAt,
		&fa.UpdatedAt,
		&fa.Capacity,
		&fa.AvailableSeats,
	)
	if err != nil {
		return nil, err
	}
	return &fa, nil
}

func (r *flightRepository) SearchAvailable(ctx context.Context, origin, destination string, date time.Time) ([]*entity.FlightAvailability, error) {
	query := availabilityQuery + `
	WHERE f.origin = $1 AND f.destination = $2
		AND f.departure_time >= $3 AND f.departure_time < $4
		AND f.status IN ('scheduled', 'boarding')
	ORDER BY f.departure_time
	`

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	rows, err := r.db.Query(ctx, query, origin, destination, dayStart, dayEnd)
	if err != nil {
		r.log.Error("Failed to search flights",
			zap.Error(err),
			zap.String("origin", origin),
			zap.String("destination", destination),
		)
		return nil, fmt.Errorf("search flights %s-%s: %w", origin, destination, err)
	}
	defer rows.Close()

	var results []*entity.FlightAvailability
	for rows.Next() {
		fa, err := scanFlightAvailability(rows)
		if err != nil {
			r.log.Error("Failed to scan flight availability row", zap.Error(err))
			return nil, fmt.Errorf("scan flight availability row: %w", err)
		}
		results = append(results, fa)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate flight availability rows: %w", err)
	}

	return results, nil
}

func (r *flightRepository) FindAvailabilityByID(ctx context.Context, id uuid.UUID) (*entity.FlightAvailability, error) {
	query := availabilityQuery + ` WHERE f.id = $1`

	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to find flight availability",
			zap.Error(err),
			zap.String("flight_id", id.String()),
		)
		return nil, fmt.Errorf("find flight availability %s: %w", id.String(), err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}

	fa, err := scanFlightAvailability(rows)
	if err != nil {
		r.log.Error("Failed to scan flight availability row", zap.Error(err))
		return nil, fmt.Errorf("scan flight availability row: %w", err)
	}

	return fa, nil
}

func (r *flightRepository) UpdateFields(ctx context.Context, id uuid.UUID, update FlightUpdate) error {
	assignments := []string{"updated_at = NOW()"}
	args := []any{id}

	addField := func(column string, value any) {
		args = append(args, value)
		assignments = append(assignments, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.Status != nil {
		addField("status", *update.Status)
	}
	if update.DepartureTime != nil {
		addField("departure_time", *update.DepartureTime)
	}
	if update.ArrivalTime != nil {
		addField("arrival_time", *update.ArrivalTime)
	}
	if update.EconomyPrice != nil {
		addField("economy_price", *update.EconomyPrice)
	}
	if update.BusinessPrice != nil {
		addField("business_price", *update.BusinessPrice)
	}
	if update.FirstPrice != nil {
		addField("first_price", *update.FirstPrice)
	}

	if len(assignments) == 1 {
		return nil // nothing to update
	}

	query := fmt.Sprintf(`UPDATE flights SET %s WHERE id = $1`, strings.Join(assignments, ", "))

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to update flight",
			zap.Error(err),
			zap.String("flight_id", id.String()),
		)
		return fmt.Errorf("update flight %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("flight %s not found", id.String())
	}

	return nil
}

func (r *flightRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM flights WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete flight",
			zap.Error(err),
			zap.String("flight_id", id.String()),
		)
		return fmt.Errorf("delete flight %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("flight %s not found", id.String())
	}

	r.log.Info("Flight deleted", zap.String("flight_id", id.String()))
	return nil
}
