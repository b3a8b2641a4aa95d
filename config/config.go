package config

import (
	"os"
	"strconv"
	"time"

	apperr "petfinder/crawlworker/pkg/errors"
)

// Config represents the application configuration
type Config struct {
	// HTTP server configuration
	ServerAddr string

	// Redis configuration
	RedisAddr    string
	RedisDB      int
	RedisPetsKey string

	// Memcache configuration
	MemcacheAddr string

	// Crawler configuration
	CrawlInterval time.Duration
	FetchTimeout  time.Duration
	BlockTime     time.Duration

	// Environment
	Environment string
}

// LoadConfig loads the configuration from environment variables with defaults
func LoadConfig() Config {
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	crawlInterval, _ := strconv.Atoi(getEnv("CRAWL_INTERVAL_SECONDS", "0"))
	fetchTimeout, _ := strconv.Atoi(getEnv("FETCH_TIMEOUT_SECONDS", "15"))
	blockTime, _ := strconv.Atoi(getEnv("BLOCK_TIME_SECONDS", "500"))

	return Config{
		ServerAddr:    getEnv("SERVER_ADDR", ":8000"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:       redisDB,
		RedisPetsKey:  getEnv("REDIS_PETS_KEY", "petfinder:pets"),
		MemcacheAddr:  getEnv("MEMCACHE_ADDR", "localhost:11211"),
		CrawlInterval: time.Duration(crawlInterval) * time.Second,
		FetchTimeout:  time.Duration(fetchTimeout) * time.Second,
		BlockTime:     time.Duration(blockTime) * time.Second,
		Environment:   getEnv("PETFINDER_ENVIRONMENT", "development"),
	}
}

// Validate checks that the configuration is usable
func (c Config) Validate() error {
	if c.ServerAddr == "" {
		return apperr.NewConfiguration("SERVER_ADDR must not be empty", nil)
	}
	if c.RedisAddr == "" {
		return apperr.NewConfiguration("REDIS_ADDR must not be empty", nil)
	}
	if c.RedisPetsKey == "" {
		return apperr.NewConfiguration("REDIS_PETS_KEY must not be empty", nil)
	}
	if c.FetchTimeout <= 0 {
		return apperr.NewConfiguration("FETCH_TIMEOUT_SECONDS must be positive", nil)
	}
	if c.CrawlInterval < 0 {
		return apperr.NewConfiguration("CRAWL_INTERVAL_SECONDS must not be negative", nil)
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
