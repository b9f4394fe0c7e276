package config

import (
	"fmt"
	"os"
)

type CacheBackend string

const (
	CacheNone   CacheBackend = "none"
	CacheRedis  CacheBackend = "redis"
	CacheDynamo CacheBackend = "dynamo"
)

type CacheConfig struct {
	Backend    CacheBackend
	RedisURL   string
	TtlMinutes int
}

func GetCacheConfig() (*CacheConfig, error) {
	backend := CacheBackend(getEnvDefault("TRANSCRIPT_CACHE", string(CacheNone)))
	ttl, err := getEnvInt("CACHE_TTL_MINUTES", 24*60)
	if err != nil {
		return nil, err
	}

	conf := &CacheConfig{Backend: backend, TtlMinutes: ttl}
	switch backend {
	case CacheNone, CacheDynamo:
	case CacheRedis:
		conf.RedisURL = os.Getenv("REDIS_URL")
		if conf.RedisURL == "" {
			return nil, fmt.Errorf("REDIS_URL must be set")
		}
	default:
		return nil, fmt.Errorf("TRANSCRIPT_CACHE %q is not supported", backend)
	}
	return conf, nil
}
