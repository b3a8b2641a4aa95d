package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"petfinder/crawlworker/config"
	"petfinder/crawlworker/helpers"
	"petfinder/crawlworker/internal/api"
	"petfinder/crawlworker/internal/crawl"
	"petfinder/crawlworker/logger"
	"petfinder/crawlworker/services/cache"
	"petfinder/crawlworker/services/store"
	"petfinder/crawlworker/services/worker"
)

func main() {
	// Load environment variables
	godotenv.Load()

	// Initialize logger first
	logger.Init()
	log := logger.Default

	// Load and validate configuration
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	helpers.SetFetchTimeout(cfg.FetchTimeout)

	log.Info().
		Str("environment", cfg.Environment).
		Str("server_addr", cfg.ServerAddr).
		Dur("crawl_interval", cfg.CrawlInterval).
		Msg("Starting application")

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up signal handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Initialize services
	cacheService := cache.NewMemcacheService(cfg.MemcacheAddr)
	logger.Info("Connected to Memcache at %s", cfg.MemcacheAddr)

	petStore := store.NewRedisStore(cfg.RedisAddr, cfg.RedisDB, cfg.RedisPetsKey)
	defer petStore.Close()
	logger.Info("Connected to Redis at %s (DB: %d, Key: %s)",
		cfg.RedisAddr, cfg.RedisDB, cfg.RedisPetsKey)

	crawlService := crawl.NewService(cacheService, cfg.BlockTime)

	// Start the background worker when an interval is configured
	workerDone := make(chan error, 1)
	if cfg.CrawlInterval > 0 {
		w := worker.NewWorker(ctx, crawlService, petStore, cfg.CrawlInterval)
		go func() {
			log.Info().Msg("Starting pet crawl worker")
			workerDone <- w.Start()
		}()
	}

	// Start the HTTP server
	server := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: api.NewServer(crawlService, petStore).Handler(),
	}
	serverDone := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.ServerAddr).Msg("Starting HTTP server")
		serverDone <- server.ListenAndServe()
	}()

	// Wait for shutdown signal, server failure, or worker error
	select {
	case sig := <-sigChan:
		log.Info().
			Str("signal", sig.String()).
			Msg("Received shutdown signal")
		cancel()
	case err := <-serverDone:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("HTTP server exited with error")
		}
		cancel()
	case err := <-workerDone:
		if err != nil && !errors.Is(err, context.Canceled) {
			log.Error().Err(err).Msg("Worker exited with error")
		} else {
			log.Info().Msg("Worker exited normally")
		}
		cancel()
	}

	// Graceful shutdown
	log.Info().Msg("Shutting down gracefully...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown failed")
	}
}
