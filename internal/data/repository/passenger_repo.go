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

type PassengerRepository interface {
	Create(ctx context.Context, passenger *entity.Passenger) error
	CreateTx(ctx context.Context, q database.Queryer, passenger *entity.Passenger) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Passenger, error)
	FindByIDTx(ctx context.Context, q database.Queryer, id uuid.UUID) (*entity.Passenger, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Passenger, error)
}

type passengerRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPassengerRepository(db database.PgxIface, log *zap.Logger) PassengerRepository {
	return &passengerRepository{
		db:  db,
		log: log.With(zap.String("repository", "passenger")),
	}
}

const passengerColumns = `id, user_id, first_name, last_name, date_of_birth, passport_number, created_at, updated_at`

func scanPassenger(row pgx.Row) (*entity.Passenger, error) {
	var passenger entity.Passenger
	err := row.Scan(
		&passenger.ID,
		&passenger.UserID,
		&passenger.FirstName,
		&passenger.LastName,
		&passenger.DateOfBirth,
		&passenger.PassportNumber,
		&passenger.CreatedAt,
		&passenger.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &passenger, nil
}

func (r *passengerRepository) Create(ctx context.Context, passenger *entity.Passenger) error {
	return r.CreateTx(ctx, r.db, passenger)
}

func (r *passengerRepository) CreateTx(ctx context.Context, q database.Queryer, passenger *entity.Passenger) error {
	query := `
		INSERT INTO passengers (id, user_id, first_name, last_name, date_of_birth, passport_number, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := q.Exec(ctx, query,
		passenger.ID,
		passenger.UserID,
		passenger.FirstName,
		passenger.LastName,
		passenger.DateOfBirth,
		passenger.PassportNumber,
		passenger.CreatedAt,
		passenger.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create passenger",
			zap.Error(err),
			zap.String("last_name", passenger.LastName),
		)
		return fmt.Errorf("create passenger %s %s: %w", passenger.FirstName, passenger.LastName, err)
	}

	return nil
}

func (r *passengerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Passenger, error) {
	return r.FindByIDTx(ctx, r.db, id)
}

func (r *passengerRepository) FindByIDTx(ctx context.Context, q database.Queryer, id uuid.UUID) (*entity.Passenger, error) {
	query := `SELECT ` + passengerColumns + ` FROM passengers WHERE id = $1`

	passenger, err := scanPassenger(q.QueryRow(ctx, query, id))
	if err != nil {
		r.log.Error("Failed to find passenger by ID",
			zap.Error(err),
			zap.String("passenger_id", id.String()),
		)
		return nil, fmt.Errorf("find passenger by ID %s: %w", id.String(), err)
	}

	return passenger, nil
}

func (r *passengerRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Passenger, error) {
	query := `SELECT ` + passengerColumns + ` FROM passengers WHERE user_id = $1 ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find passengers by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find passengers by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var passengers []*entity.Passenger
	for rows.Next() {
		var passenger entity.Passenger
		err := rows.Scan(
			&passenger.ID,
			&passenger.UserID,
			&passenger.FirstName,
			&passenger.LastName,
			&passenger.DateOfBirth,
			&passenger.PassportNumber,
			&passenger.CreatedAt,
			&passenger.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan passenger row", zap.Error(err))
			return nil, fmt.Errorf("scan passenger row: %w", err)
		}
		passengers = append(passengers, &passenger)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate passenger rows: %w", err)
	}

	return passengers, nil
}
