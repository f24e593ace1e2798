package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"airline-booking/internal/data/entity"
	"airline-booking/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// FlightCache fronts the read-mostly flight catalog. Search results are
// keyed by route/date plus a generation counter; admin flight mutations bump
// the counter, which orphans every cached search at once.
type FlightCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

const generationKey = "flights:gen"

func NewFlightCache(config utils.RedisConfig, log *zap.Logger) *FlightCache {
	return &FlightCache{
		client: redis.NewClient(&redis.Options{
			Addr:     config.Addr,
			Password: config.Password,
			DB:       config.DB,
		}),
		ttl: time.Duration(config.CacheTTL) * time.Second,
		log: log.With(zap.String("cache", "flights")),
	}
}

func (c *FlightCache) searchKey(ctx context.Context, origin, destination, date string) string {
	gen, err := c.client.Get(ctx, generationKey).Result()
	if err != nil {
		gen = "0"
	}
	return fmt.Sprintf("flights:search:%s:%s:%s:%s", gen, origin, destination, date)
}

// GetSearch returns cached search results, or nil on miss
func (c *FlightCache) GetSearch(ctx context.Context, origin, destination, date string) ([]*entity.FlightAvailability, error) {
	data, err := c.client.Get(ctx, c.searchKey(ctx, origin, destination, date)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("get cached flight search: %w", err)
	}

	var flights []*entity.FlightAvailability
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, fmt.Errorf("decode cached flight search: %w", err)
	}
	return flights, nil
}

// SetSearch stores search results with the configured TTL
func (c *FlightCache) SetSearch(ctx context.Context, origin, destination, date string, flights []*entity.FlightAvailability) error {
	data, err := json.Marshal(flights)
	if err != nil {
		return fmt.Errorf("encode flight search: %w", err)
	}

	if err := c.client.Set(ctx, c.searchKey(ctx, origin, destination, date), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache flight search: %w", err)
	}
	return nil
}

// Invalidate bumps the generation counter, dropping all cached searches
func (c *FlightCache) Invalidate(ctx context.Context) {
	if err := c.client.Incr(ctx, generationKey).Err(); err != nil {
		c.log.Warn("Failed to invalidate flight cache", zap.Error(err))
	}
}
