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

type AircraftRepository interface {
	Create(ctx context.Context, aircraft *entity.Aircraft) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Aircraft, error)
	FindByIDTx(ctx context.Context, q database.Queryer, id uuid.UUID) (*entity.Aircraft, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Aircraft, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, aircraft *entity.Aircraft) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type aircraftRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAircraftRepository(db database.PgxIface, log *zap.Logger) AircraftRepository {
	return &aircraftRepository{
		db:  db,
		log: log.With(zap.String("repository", "aircraft")),
	}
}

const aircraftColumns = `id, model, registration_number, capacity, status, created_at, updated_at`

func (r *aircraftRepository) Create(ctx context.Context, aircraft *entity.Aircraft) error {
	query := `
		INSERT INTO aircraft (id, model, registration_number, capacity, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		aircraft.ID,
		aircraft.Model,
		aircraft.RegistrationNumber,
		aircraft.Capacity,
		aircraft.Status,
		aircraft.CreatedAt,
		aircraft.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create aircraft",
			zap.Error(err),
			zap.String("registration", aircraft.RegistrationNumber),
		)
		return fmt.Errorf("create aircraft %s: %w", aircraft.RegistrationNumber, err)
	}

	return nil
}

func (r *aircraftRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Aircraft, error) {
	return r.FindByIDTx(ctx, r.db, id)
}

func (r *aircraftRepository) FindByIDTx(ctx context.Context, q database.Queryer, id uuid.UUID) (*entity.Aircraft, error) {
	query := `SELECT ` + aircraftColumns + ` FROM aircraft WHERE id = $1`

	var aircraft entity.Aircraft
	err := q.QueryRow(ctx, query, id).Scan(
		&aircraft.ID,
		&aircraft.Model,
		&aircraft.RegistrationNumber,
		&aircraft.Capacity,
		&aircraft.Status,
		&aircraft.CreatedAt,
		&aircraft.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find aircraft by ID",
			zap.Error(err),
			zap.String("aircraft_id", id.String()),
		)
		return nil, fmt.Errorf("find aircraft by ID %s: %w", id.String(), err)
	}

	return &aircraft, nil
}

func (r *aircraftRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Aircraft, error) {
	query := `SELECT ` + aircraftColumns + ` FROM aircraft ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find aircraft", zap.Error(err))
		return nil, fmt.Errorf("find aircraft: %w", err)
	}
	defer rows.Close()

	var fleet []*entity.Aircraft
	for rows.Next() {
		var aircraft entity.Aircraft
		err := rows.Scan(
			&aircraft.ID,
			&aircraft.Model,
			&aircraft.RegistrationNumber,
			&aircraft.Capacity,
			&aircraft.Status,
			&aircraft.CreatedAt,
			&aircraft.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan aircraft row", zap.Error(err))
			return nil, fmt.Errorf("scan aircraft row: %w", err)
		}
		fleet = append(fleet, &aircraft)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate aircraft rows: %w", err)
	}

	return fleet, nil
}

func (r *aircraftRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM aircraft`).Scan(&count); err != nil {
		r.log.Error("Failed to count aircraft", zap.Error(err))
		return 0, fmt.Errorf("count aircraft: %w", err)
	}
	return count, nil
}

func (r *aircraftRepository) Update(ctx context.Context, aircraft *entity.Aircraft) error {
	query := `
		UPDATE aircraft
		SET model = $2, registration_number = $3, capacity = $4, status = $5, updated_at = $6
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		aircraft.ID,
		aircraft.Model,
		aircraft.RegistrationNumber,
		aircraft.Capacity,
		aircraft.Status,
		aircraft.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update aircraft",
			zap.Error(err),
			zap.String("aircraft_id", aircraft.ID.String()),
		)
		return fmt.Errorf("update aircraft %s: %w", aircraft.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("aircraft %s not found", aircraft.ID.String())
	}

	return nil
}

func (r *aircraftRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM aircraft WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete aircraft",
			zap.Error(err),
			zap.String("aircraft_id", id.String()),
		)
		return fmt.Errorf("delete aircraft %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("aircraft %s not found", id.String())
	}

	r.log.Info("Aircraft deleted", zap.String("aircraft_id", id.String()))
	return nil
}
