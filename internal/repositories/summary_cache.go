package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/classaway/internal/logger"
	"github.com/sbilibin2017/classaway/internal/models"
)

// SummaryCacheRepository caches dashboard summaries in Redis.
type SummaryCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached summaries
}

func NewSummaryCacheRepository(client *redis.Client, expiration time.Duration) *SummaryCacheRepository {
	return &SummaryCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func summaryKey(userID uuid.UUID) string {
	return fmt.Sprintf("summary:%s", userID)
}

// Get returns the cached summary, or nil on a cache miss.
func (r *SummaryCacheRepository) Get(ctx context.Context, userID uuid.UUID) (*models.Summary, error) {
	key := summaryKey(userID)

	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		logger.Log.Debugw("cache miss", "key", key)
		return nil, nil
	}
	if err != nil {
		logger.Log.Errorw("cache get failed", "key", key, "error", err)
		return nil, err
	}

	var s models.Summary
	if err := json.Unmarshal(val, &s); err != nil {
		logger.Log.Errorw("cache entry corrupt", "key", key, "error", err)
		return nil, err
	}

	logger.Log.Debugw("cache hit", "key", key)
	return &s, nil
}

// Set stores a summary with the repository's expiration.
func (r *SummaryCacheRepository) Set(ctx context.Context, userID uuid.UUID, s *models.Summary) error {
	key := summaryKey(userID)

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Debugw("cache set", "key", key, "error", err)

	return err
}

// Invalidate drops the cached summary of userID.
func (r *SummaryCacheRepository) Invalidate(ctx context.Context, userID uuid.UUID) error {
	key := summaryKey(userID)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Debugw("cache invalidate", "key", key, "error", err)

	return err
}
