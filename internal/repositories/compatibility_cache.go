package repositories

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/roommate-matcher/internal/logger"
)

// ErrCacheMiss is returned when no score is cached for a pair.
var ErrCacheMiss = errors.New("compatibility score not found in cache")

// CompatibilityCacheRepository caches pairwise compatibility scores in Redis
type CompatibilityCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached scores
}

// NewCompatibilityCacheRepository creates a new repository instance with optional TTL
func NewCompatibilityCacheRepository(client *redis.Client, expiration time.Duration) *CompatibilityCacheRepository {
	return &CompatibilityCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// compatibilityKey is symmetric: the lower id always comes first.
func compatibilityKey(a, b int64) string {
	return fmt.Sprintf("compatibility:%d:%d", min(a, b), max(a, b))
}

// Get fetches a cached score for the unordered pair. Returns ErrCacheMiss when absent.
func (r *CompatibilityCacheRepository) Get(ctx context.Context, a, b int64) (int, error) {
	key := compatibilityKey(a, b)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.FromContext(ctx).Debugw("cache get",
			"key", key,
			"result", val,
			"error", err,
		)
		if errors.Is(err, redis.Nil) {
			return 0, ErrCacheMiss
		}
		return 0, err
	}

	score, err := strconv.Atoi(val)

	logger.FromContext(ctx).Debugw("cache get",
		"key", key,
		"value", val,
		"result", score,
		"error", err,
	)

	if err != nil {
		return 0, err
	}
	return score, nil
}

// Set caches a score for the unordered pair with expiration
func (r *CompatibilityCacheRepository) Set(ctx context.Context, a, b int64, score int) error {
	key := compatibilityKey(a, b)
	err := r.client.Set(ctx, key, strconv.Itoa(score), r.exp).Err()

	logger.FromContext(ctx).Debugw("cache set",
		"key", key,
		"score", score,
		"error", err,
	)

	return err
}

// InvalidateUser drops every cached score involving the user.
func (r *CompatibilityCacheRepository) InvalidateUser(ctx context.Context, userID int64) error {
	patterns := []string{
		fmt.Sprintf("compatibility:%d:*", userID),
		fmt.Sprintf("compatibility:*:%d", userID),
	}

	var keys []string
	for _, pattern := range patterns {
		iter := r.client.Scan(ctx, 0, pattern, 100).Iterator()
		for iter.Next(ctx) {
			keys = append(keys, iter.Val())
		}
		if err := iter.Err(); err != nil {
			logger.FromContext(ctx).Debugw("cache scan",
				"pattern", pattern,
				"error", err,
			)
			return err
		}
	}

	if len(keys) == 0 {
		return nil
	}

	err := r.client.Del(ctx, keys...).Err()

	logger.FromContext(ctx).Debugw("cache invalidate",
		"user_id", userID,
		"keys", keys,
		"error", err,
	)

	return err
}
