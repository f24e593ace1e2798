package repository

import (
	"context"
	"fmt"

	"airline-booking/internal/data/entity"
	"airline-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type AirportRepository interface {
	FindByCode(ctx context.Context, code string) (*entity.Airport, error)
	FindAll(ctx context.Context) ([]*entity.Airport, error)
}

type airportRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAirportRepository(db database.PgxIface, log *zap.Logger) AirportRepository {
	return &airportRepository{
		db:  db,
		log: log.With(zap.String("repository", "airport")),
	}
}

func (r *airportRepository) FindByCode(ctx context.Context, code string) (*entity.Airport, error) {
	query := `SELECT code, name, city, country FROM airports WHERE code = $1`

	var airport entity.Airport
	err := r.db.QueryRow(ctx, query, code).Scan(
		&airport.Code,
		&airport.Name,
		&airport.City,
		&airport.Country,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find airport by code",
			zap.Error(err),
			zap.String("code", code),
		)
		return nil, fmt.Errorf("find airport by code %s: %w", code, err)
	}

	return &airport, nil
}

func (r *airportRepository) FindAll(ctx context.Context) ([]*entity.Airport, error) {
	query := `SELECT code, name, city, country FROM airports ORDER BY code`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find airports", zap.Error(err))
		return nil, fmt.Errorf("find airports: %w", err)
	}
	defer rows.Close()

	var airports []*entity.Airport
	for rows.Next() {
		var airport entity.Airport
		if err := rows.Scan(&airport.Code, &airport.Name, &airport.City, &airport.Country); err != nil {
			r.log.Error("Failed to scan airport row", zap.Error(err))
			return nil, fmt.Errorf("scan airport row: %w", err)
		}
		airports = append(airports, &airport)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate airport rows: %w", err)
	}

	return airports, nil
}
