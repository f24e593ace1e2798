package repository

import (
	"context"
	"fmt"

	"airline-booking/internal/data/entity"
	"airline-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CheckInRepository interface {
	CreateTx(ctx context.Context, q database.Queryer, checkIn *entity.CheckIn) error
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.CheckIn, error)
	FindByBookingIDTx(ctx context.Context, q database.Queryer, bookingID uuid.UUID) (*entity.CheckIn, error)
}

type checkInRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCheckInRepository(db database.PgxIface, log *zap.Logger) CheckInRepository {
	return &checkInRepository{
		db:  db,
		log: log.With(zap.String("repository", "check_in")),
	}
}

func (r *checkInRepository) CreateTx(ctx context.Context, q database.Queryer, checkIn *entity.CheckIn) error {
	query := `
		INSERT INTO check_ins (id, booking_id, confirmed_at, gate_number, boarding_time, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := q.Exec(ctx, query,
		checkIn.ID,
		checkIn.BookingID,
		checkIn.ConfirmedAt,
		checkIn.GateNumber,
		checkIn.BoardingTime,
		checkIn.Status,
		checkIn.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create check-in",
			zap.Error(err),
			zap.String("booking_id", checkIn.BookingID.String()),
		)
		return fmt.Errorf("create check-in for booking %s: %w", checkIn.BookingID.String(), err)
	}

	return nil
}

func (r *checkInRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.CheckIn, error) {
	return r.FindByBookingIDTx(ctx, r.db, bookingID)
}

func (r *checkInRepository) FindByBookingIDTx(ctx context.Context, q database.Queryer, bookingID uuid.UUID) (*entity.CheckIn, error) {
	query := `
		SELECT id, booking_id, confirmed_at, gate_number, boarding_time, status, created_at
		FROM check_ins
		WHERE booking_id = $1
	`

	var checkIn entity.CheckIn
	err := q.QueryRow(ctx, query, bookingID).Scan(
		&checkIn.ID,
		&checkIn.BookingID,
		&checkIn.ConfirmedAt,
		&checkIn.GateNumber,
		&checkIn.BoardingTime,
		&checkIn.Status,
		&checkIn.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find check-in by booking ID",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, fmt.Errorf("find check-in by booking ID %s: %w", bookingID.String(), err)
	}

	return &checkIn, nil
}
