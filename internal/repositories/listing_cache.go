package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/dkenzhebek/estatefinder/internal/logger"
	"github.com/dkenzhebek/estatefinder/internal/models"
	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned when no cached result exists for a search key.
var ErrCacheMiss = errors.New("search result not found in cache")

// ListingSearchCacheRepository caches listing search results in Redis,
// keyed by the normalized filter string. Entries expire by TTL only; a hit
// returns the exact rows previously stored.
type ListingSearchCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached pages
}

// NewListingSearchCacheRepository creates a new cache repository with the given TTL.
func NewListingSearchCacheRepository(client *redis.Client, expiration time.Duration) *ListingSearchCacheRepository {
	return &ListingSearchCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// Get fetches a cached result page. Returns ErrCacheMiss when absent.
func (r *ListingSearchCacheRepository) Get(ctx context.Context, key string) ([]models.ListingSummary, error) {
	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"error", err,
		)
		if err == redis.Nil {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	var rows []models.ListingSummary
	if err := json.Unmarshal([]byte(val), &rows); err != nil {
		logger.Log.Infow(
			"key", key,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow(
		"key", key,
		"result_count", len(rows),
		"error", nil,
	)

	return rows, nil
}

// Invalidate drops every cached search page. Mutations call this so a
// created, updated or soft-deleted listing is reflected by the next search
// instead of lingering until the TTL runs out.
func (r *ListingSearchCacheRepository) Invalidate(ctx context.Context) error {
	var deleted int64

	iter := r.client.Scan(ctx, 0, "listing_search:*", 100).Iterator()
	for iter.Next(ctx) {
		n, err := r.client.Del(ctx, iter.Val()).Result()
		if err != nil {
			logger.Log.Errorw("failed to drop cached search page", "key", iter.Val(), "error", err)
			return err
		}
		deleted += n
	}
	if err := iter.Err(); err != nil {
		logger.Log.Errorw("search cache scan failed", "error", err)
		return err
	}

	logger.Log.Infow(
		"search cache invalidated",
		"deleted_keys", deleted,
	)

	return nil
}

// Set stores a result page under the given key with the configured TTL.
func (r *ListingSearchCacheRepository) Set(ctx context.Context, key string, rows []models.ListingSummary) error {
	data, err := json.Marshal(rows)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"result_count", len(rows),
		"error", err,
	)

	return err
}
