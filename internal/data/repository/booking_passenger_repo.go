package repository

import (
	"context"
	"fmt"

	"airline-booking/internal/data/entity"
	"airline-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingPassengerRepository interface {
	CreateTx(ctx context.Context, q database.Queryer, link *entity.BookingPassenger) error
	// FindPassengersByBookingID returns the booking's passengers joined with
	// their seat assignments, ordered by link id. Positional seat matching
	// at check-in relies on this order.
	FindPassengersByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.PassengerWithSeat, error)
	FindPassengersByBookingIDTx(ctx context.Context, q database.Queryer, bookingID uuid.UUID) ([]*entity.PassengerWithSeat, error)
	UpdateSeatTx(ctx context.Context, q database.Queryer, linkID int64, seatNumber string) error
}

type bookingPassengerRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingPassengerRepository(db database.PgxIface, log *zap.Logger) BookingPassengerRepository {
	return &bookingPassengerRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking_passenger")),
	}
}

func (r *bookingPassengerRepository) CreateTx(ctx context.Context, q database.Queryer, link *entity.BookingPassenger) error {
	query := `
		INSERT INTO booking_passengers (booking_id, passenger_id, seat_number, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := q.QueryRow(ctx, query,
		link.BookingID,
		link.PassengerID,
		link.SeatNumber,
		link.CreatedAt,
	).Scan(&link.ID)

	if err != nil {
		r.log.Error("Failed to create booking passenger link",
			zap.Error(err),
			zap.String("booking_id", link.BookingID.String()),
			zap.String("passenger_id", link.PassengerID.String()),
		)
		return fmt.Errorf("create booking passenger link for booking %s: %w", link.BookingID.String(), err)
	}

	return nil
}

func (r *bookingPassengerRepository) FindPassengersByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.PassengerWithSeat, error) {
	return r.FindPassengersByBookingIDTx(ctx, r.db, bookingID)
}

func (r *bookingPassengerRepository) FindPassengersByBookingIDTx(ctx context.Context, q database.Queryer, bookingID uuid.UUID) ([]*entity.PassengerWithSeat, error) {
	query := `
		SELECT bp.id, bp.seat_number,
			p.id, p.user_id, p.first_name, p.last_name, p.date_of_birth, p.passport_number, p.created_at, p.updated_at
		FROM booking_passengers bp
		JOIN passengers p ON p.id = bp.passenger_id
		WHERE bp.booking_id = $1
		ORDER BY bp.id
	`

	rows, err := q.Query(ctx, query, bookingID)
	if err != nil {
		r.log.Error("Failed to find passengers by booking ID",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, fmt.Errorf("find passengers by booking ID %s: %w", bookingID.String(), err)
	}
	defer rows.Close()

	var passengers []*entity.PassengerWithSeat
	for rows.Next() {
		var pws entity.PassengerWithSeat
		err := rows.Scan(
			&pws.LinkID,
			&pws.SeatNumber,
			&pws.Passenger.ID,
			&pws.Passenger.UserID,
			&pws.FirstName,
			&pws.LastName,
			&pws.DateOfBirth,
			&pws.PassportNumber,
			&pws.Passenger.CreatedAt,
			&pws.Passenger.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan booking passenger row", zap.Error(err))
			return nil, fmt.Errorf("scan booking passenger row: %w", err)
		}
		passengers = append(passengers, &pws)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate booking passenger rows: %w", err)
	}

	return passengers, nil
}

func (r *bookingPassengerRepository) UpdateSeatTx(ctx context.Context, q database.Queryer, linkID int64, seatNumber string) error {
	query := `UPDATE booking_passengers SET seat_number = $2 WHERE id = $1`

	result, err := q.Exec(ctx, query, linkID, seatNumber)
	if err != nil {
		r.log.Error("Failed to assign seat",
			zap.Error(err),
			zap.Int64("link_id", linkID),
			zap.String("seat_number", seatNumber),
		)
		return fmt.Errorf("assign seat %s to link %d: %w", seatNumber, linkID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking passenger link %d not found", linkID)
	}

	return nil
}
