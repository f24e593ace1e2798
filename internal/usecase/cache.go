package usecase

import (
	"context"

	"airline-booking/internal/data/entity"
)

// FlightCacheStore is the caching surface the services need, satisfied by
// cache.FlightCache.
type FlightCacheStore interface {
	GetSearch(ctx context.Context, origin, destination, date string) ([]*entity.FlightAvailability, error)
	SetSearch(ctx context.Context, origin, destination, date string, flights []*entity.FlightAvailability) error
	Invalidate(ctx context.Context)
}
