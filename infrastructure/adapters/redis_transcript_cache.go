package adapters

import (
	"context"
	"errors"
	"seo-blog-generator/application/ports/outbound"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisTranscriptKeyPrefix = "transcript:"

type redisTranscriptCache struct {
	logger outbound.LoggerPort
	rdb    *redis.Client
	ttl    time.Duration
}

func NewRedisTranscriptCache(logger outbound.LoggerPort, rdb *redis.Client, ttl time.Duration) outbound.TranscriptCachePort {
	return &redisTranscriptCache{
		logger: logger,
		rdb:    rdb,
		ttl:    ttl,
	}
}

// NewRedisClient parses redisURL and checks the connection.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	rdb := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}
	return rdb, nil
}

func (c *redisTranscriptCache) Get(ctx context.Context, videoID string) (string, bool, error) {
	transcript, err := c.rdb.Get(ctx, redisTranscriptKeyPrefix+videoID).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return transcript, true, nil
}

func (c *redisTranscriptCache) Save(ctx context.Context, videoID string, transcript string) error {
	err := c.rdb.Set(ctx, redisTranscriptKeyPrefix+videoID, transcript, c.ttl).Err()
	if err != nil {
		c.logger.ErrorWithFields(err, "Failed to save transcript to redis", map[string]interface{}{
			"video_id": videoID,
		})
	}
	return err
}
