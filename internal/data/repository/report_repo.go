package repository

import (
	"context"
	"fmt"
	"time"

	"airline-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Aggregate rows for the reporting facade. Plain read models, no invariants.

type Overview struct {
	TotalUsers        int64   `json:"total_users"`
	TotalFlights      int64   `json:"total_flights"`
	TotalBookings     int64   `json:"total_bookings"`
	CancelledBookings int64   `json:"cancelled_bookings"`
	TotalRevenue      float64 `json:"total_revenue"`
}

type RevenueRow struct {
	Month    string  `json:"month"`
	Bookings int64   `json:"bookings"`
	Revenue  float64 `json:"revenue"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type RouteStats struct {
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	Bookings    int64   `json:"bookings"`
	Passengers  int64   `json:"passengers"`
	Revenue     float64 `json:"revenue"`
}

type FlightPerformance struct {
	FlightNumber string    `json:"flight_number"`
	Origin       string    `json:"origin"`
	Destination  string    `json:"destination"`
	Departure    time.Time `json:"departure_time"`
	Capacity     int       `json:"capacity"`
	Booked       int       `json:"booked"`
	LoadFactor   float64   `json:"load_factor"`
}

type HotFlight struct {
	FlightID     uuid.UUID `json:"flight_id"`
	FlightNumber string    `json:"flight_number"`
	Origin       string    `json:"origin"`
	Destination  string    `json:"destination"`
	Departure    time.Time `json:"departure_time"`
	Booked       int64     `json:"booked_passengers"`
}

type ReportRepository interface {
	Overview(ctx context.Context) (*Overview, error)
	RevenueByMonth(ctx context.Context, months int) ([]*RevenueRow, error)
	BookingsByStatus(ctx context.Context) ([]*StatusCount, error)
	TopRoutes(ctx context.Context, limit int) ([]*RouteStats, error)
	FlightPerformance(ctx context.Context, limit int) ([]*FlightPerformance, error)
	HotFlights(ctx context.Context, limit int) ([]*HotFlight, error)
}

type reportRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReportRepository(db database.PgxIface, log *zap.Logger) ReportRepository {
	return &reportRepository{
		db:  db,
		log: log.With(zap.String("repository", "report")),
	}
}

func (r *reportRepository) Overview(ctx context.Context) (*Overview, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM flights),
			(SELECT COUNT(*) FROM bookings),
			(SELECT COUNT(*) FROM bookings WHERE status = 'cancelled'),
			(SELECT COALESCE(SUM(total_amount), 0) FROM bookings WHERE payment_status = 'paid')
	`

	var overview Overview
	err := r.db.QueryRow(ctx, query).Scan(
		&overview.TotalUsers,
		&overview.TotalFlights,
		&overview.TotalBookings,
		&overview.CancelledBookings,
		&overview.TotalRevenue,
	)
	if err != nil {
		r.log.Error("Failed to build overview report", zap.Error(err))
		return nil, fmt.Errorf("overview report: %w", err)
	}

	return &overview, nil
}

func (r *reportRepository) RevenueByMonth(ctx context.Context, months int) ([]*RevenueRow, error) {
	query := `
		SELECT to_char(date_trunc('month', created_at), 'YYYY-MM') AS month,
			COUNT(*), COALESCE(SUM(total_amount), 0)
		FROM bookings
		WHERE payment_status = 'paid' AND created_at >= date_trunc('month', NOW()) - ($1 || ' months')::interval
		GROUP BY 1
		ORDER BY 1
	`

	rows, err := r.db.Query(ctx, query, months)
	if err != nil {
		r.log.Error("Failed to build revenue report", zap.Error(err))
		return nil, fmt.Errorf("revenue report: %w", err)
	}
	defer rows.Close()

	var result []*RevenueRow
	for rows.Next() {
		var row RevenueRow
		if err := rows.Scan(&row.Month, &row.Bookings, &row.Revenue); err != nil {
			r.log.Error("Failed to scan revenue row", zap.Error(err))
			return nil, fmt.Errorf("scan revenue row: %w", err)
		}
		result = append(result, &row)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate revenue rows: %w", err)
	}

	return result, nil
}

func (r *reportRepository) BookingsByStatus(ctx context.Context) ([]*StatusCount, error) {
	query := `SELECT status, COUNT(*) FROM bookings GROUP BY status ORDER BY status`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to build bookings report", zap.Error(err))
		return nil, fmt.Errorf("bookings report: %w", err)
	}
	defer rows.Close()

	var result []*StatusCount
	for rows.Next() {
		var row StatusCount
		if err := rows.Scan(&row.Status, &row.Count); err != nil {
			r.log.Error("Failed to scan status count row", zap.Error(err))
			return nil, fmt.Errorf("scan status count row: %w", err)
		}
		result = append(result, &row)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate status count rows: %w", err)
	}

	return result, nil
}

func (r *reportRepository) TopRoutes(ctx context.Context, limit int) ([]*RouteStats, error) {
	query := `
		SELECT f.origin, f.destination,
			COUNT(b.id), COALESCE(SUM(b.number_of_passengers), 0), COALESCE(SUM(b.total_amount), 0)
		FROM bookings b
		JOIN flights f ON f.id = b.flight_id
		WHERE b.status <> 'cancelled'
		GROUP BY f.origin, f.destination
		ORDER BY COUNT(b.id) DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		r.log.Error("Failed to build routes report", zap.Error(err))
		return nil, fmt.Errorf("routes report: %w", err)
	}
	defer rows.Close()

	var result []*RouteStats
	for rows.Next() {
		var row RouteStats
		if err := rows.Scan(&row.Origin, &row.Destination, &row.Bookings, &row.Passengers, &row.Revenue); err != nil {
			r.log.Error("Failed to scan route stats row", zap.Error(err))
			return nil, fmt.Errorf("scan route stats row: %w", err)
		}
		result = append(result, &row)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate route stats rows: %w", err)
	}

	return result, nil
}

func (r *reportRepository) FlightPerformance(ctx context.Context, limit int) ([]*FlightPerformance, error) {
	query := `
		SELECT f.flight_number, f.origin, f.destination, f.departure_time, a.capacity,
			COALESCE(SUM(b.number_of_passengers) FILTER (WHERE b.status <> 'cancelled'), 0) AS booked
		FROM flights f
		JOIN aircraft a ON a.id = f.aircraft_id
		LEFT JOIN bookings b ON b.flight_id = f.id
		GROUP BY f.id, f.flight_number, f.origin, f.destination, f.departure_time, a.capacity
		ORDER BY f.departure_time DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		r.log.Error("Failed to build performance report", zap.Error(err))
		return nil, fmt.Errorf("performance report: %w", err)
	}
	defer rows.Close()

	var result []*FlightPerformance
	for rows.Next() {
		var row FlightPerformance
		if err := rows.Scan(&row.FlightNumber, &row.Origin, &row.Destination, &row.Departure, &row.Capacity, &row.Booked); err != nil {
			r.log.Error("Failed to scan performance row", zap.Error(err))
			return nil, fmt.Errorf("scan performance row: %w", err)
		}
		if row.Capacity > 0 {
			row.LoadFactor = float64(row.Booked) / float64(row.Capacity)
		}
		result = append(result, &row)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate performance rows: %w", err)
	}

	return result, nil
}

func (r *reportRepository) HotFlights(ctx context.Context, limit int) ([]*HotFlight, error) {
	query := `
		SELECT f.id, f.flight_number, f.origin, f.destination, f.departure_time,
			COALESCE(SUM(b.number_of_passengers), 0) AS booked
		FROM flights f
		JOIN bookings b ON b.flight_id = f.id AND b.status <> 'cancelled'
		WHERE f.departure_time > NOW() AND f.status IN ('scheduled', 'boarding')
		GROUP BY f.id, f.flight_number, f.origin, f.destination, f.departure_time
		ORDER BY booked DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		r.log.Error("Failed to find hot flights", zap.Error(err))
		return nil, fmt.Errorf("hot flights: %w", err)
	}
	defer rows.Close()

	var result []*HotFlight
	for rows.Next() {
		var row HotFlight
		if err := rows.Scan(&row.FlightID, &row.FlightNumber, &row.Origin, &row.Destination, &row.Departure, &row.Booked); err != nil {
			r.log.Error("Failed to scan hot flight row", zap.Error(err))
			return nil, fmt.Errorf("scan hot flight row: %w", err)
		}
		result = append(result, &row)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate hot flight rows: %w", err)
	}

	return result, nil
}
