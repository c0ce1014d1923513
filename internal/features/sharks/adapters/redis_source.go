package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"shark-tracker/internal/core/cache"
	"shark-tracker/internal/core/logger"
	"shark-tracker/internal/features/sharks/domain"

	"go.uber.org/zap"
)

const (
	sharksCacheKey = "sharks:collection"
	pingsCacheKey  = "sharks:pings"
)

// ErrCollectionNotFound is returned when a collection has never been seeded.
var ErrCollectionNotFound = errors.New("collection not found")

// RedisDataSource implements ports.DataSource by reading the two collections
// as JSON documents (in the OCEARCH wire format) from the cache.
type RedisDataSource struct {
	cache cache.Cache
}

// NewRedisDataSource creates a new RedisDataSource.
func NewRedisDataSource(c cache.Cache) *RedisDataSource {
	return &RedisDataSource{
		cache: c,
	}
}

// Seed replaces both stored collections. When the pings cannot be written the
// sharks written just before are removed again, so readers never see a
// collection from one seed next to one from another.
func (r *RedisDataSource) Seed(ctx context.Context, sharks []domain.Shark, pings []domain.Ping) error {
	sharksData, err := json.Marshal(domain.SharkResponse{Sharks: nonNil(sharks)})
	if err != nil {
		return fmt.Errorf("failed to marshal sharks: %w", err)
	}
	pingsData, err := json.Marshal(domain.PingResponse{Pings: nonNil(pings)})
	if err != nil {
		return fmt.Errorf("failed to marshal pings: %w", err)
	}

	if err := r.cache.Set(ctx, sharksCacheKey, sharksData, 0); err != nil {
		return fmt.Errorf("failed to save sharks: %w", err)
	}
	if err := r.cache.Set(ctx, pingsCacheKey, pingsData, 0); err != nil {
		if delErr := r.cache.Delete(ctx, sharksCacheKey); delErr != nil {
			logger.Named("sharks.redis").Warn("Failed to roll back sharks after partial seed", zap.Error(delErr))
		}
		return fmt.Errorf("failed to save pings: %w", err)
	}
	return nil
}

// FetchSharks reads the stored shark collection.
func (r *RedisDataSource) FetchSharks(ctx context.Context) ([]domain.Shark, error) {
	var resp domain.SharkResponse
	if err := r.load(ctx, sharksCacheKey, &resp); err != nil {
		return nil, domain.NewFetchError(domain.ResourceSharks, err)
	}
	if err := domain.ValidateSharks(resp.Sharks); err != nil {
		return nil, domain.NewFetchError(domain.ResourceSharks, err)
	}
	return nonNil(resp.Sharks), nil
}

// FetchPings reads the stored ping collection.
func (r *RedisDataSource) FetchPings(ctx context.Context) ([]domain.Ping, error) {
	var resp domain.PingResponse
	if err := r.load(ctx, pingsCacheKey, &resp); err != nil {
		return nil, domain.NewFetchError(domain.ResourcePings, err)
	}
	if err := domain.ValidatePings(resp.Pings); err != nil {
		return nil, domain.NewFetchError(domain.ResourcePings, err)
	}
	return nonNil(resp.Pings), nil
}

// FetchPingsForShark filters FetchPings by owning shark.
func (r *RedisDataSource) FetchPingsForShark(ctx context.Context, sharkID string) ([]domain.Ping, error) {
	pings, err := r.FetchPings(ctx)
	if err != nil {
		return nil, err
	}
	return domain.FilterBySharkID(pings, sharkID), nil
}

func (r *RedisDataSource) load(ctx context.Context, key string, out interface{}) error {
	data, err := r.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, cache.ErrKeyNotFound) {
			return fmt.Errorf("%w: %s", ErrCollectionNotFound, key)
		}
		return fmt.Errorf("failed to read %s: %w", key, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}
	return nil
}
