package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"macdealtracker/config"
	"macdealtracker/internal/crawler"
	"macdealtracker/internal/history"
	"macdealtracker/logger"
	"macdealtracker/services/cache"
	"macdealtracker/services/notifier"
	"macdealtracker/services/publisher"
	"macdealtracker/services/worker"

	"github.com/joho/godotenv"
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

	log.Info().
		Str("environment", cfg.Environment).
		Strs("search_terms", cfg.SearchTerms).
		Dur("check_interval", cfg.CheckInterval).
		Int("top_deals", cfg.TopDeals).
		Int("retention_days", cfg.RetentionDays).
		Msg("Starting application")

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up signal handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Initialize services
	services := initializeServices(ctx, &cfg)
	defer services.Cleanup()

	// Create crawlers, one per search term
	crawlers := crawler.CreateCrawlers(&cfg, services.Cache)
	if len(crawlers) == 0 {
		log.Fatal().Msg("No crawlers were created")
	}

	log.Info().
		Int("crawler_count", len(crawlers)).
		Msg("Created crawlers")

	// Create and start worker
	w := worker.NewWorker(
		ctx,
		crawlers,
		services.Store,
		services.Publisher,
		services.Notifier,
		cfg.TopDeals,
		cfg.RetentionDays,
		cfg.CheckInterval,
	)

	// Start worker in a goroutine
	workerDone := make(chan error, 1)
	go func() {
		log.Info().Msg("Starting deal tracker worker")
		workerDone <- w.Start()
	}()

	// Wait for shutdown signal or worker error
	select {
	case sig := <-sigChan:
		log.Info().
			Str("signal", sig.String()).
			Msg("Received shutdown signal")
		cancel()
	case err := <-workerDone:
		if err != nil && err != context.Canceled {
			log.Error().Err(err).Msg("Worker exited with error")
		} else {
			log.Info().Msg("Worker exited normally")
		}
	}

	// Graceful shutdown
	log.Info().Msg("Shutting down gracefully...")
}

// Services holds all the initialized services
type Services struct {
	Cache     cache.CacheService
	Publisher publisher.Publisher
	Notifier  notifier.Notifier
	Store     *history.Store
}

// Cleanup cleans up all services
func (s *Services) Cleanup() {
	if s.Publisher != nil {
		s.Publisher.Close()
	}
}

// initializeServices initializes all required services
func initializeServices(ctx context.Context, cfg *config.Config) *Services {
	services := &Services{}

	// Cache service backing the crawler rate-limit guard
	services.Cache = cache.NewMemcacheService(cfg.MemcacheAddr)
	logger.Info("Connected to Memcache at %s", cfg.MemcacheAddr)

	// Publisher for the downstream deal stream
	services.Publisher = publisher.NewRedisPublisher(
		ctx,
		cfg.RedisAddr,
		cfg.RedisDB,
		cfg.RedisStream,
		cfg.RedisStreamMaxLength,
	)
	logger.Info("Connected to Redis at %s (DB: %d, Stream: %s)",
		cfg.RedisAddr, cfg.RedisDB, cfg.RedisStream)

	// Email alerts
	services.Notifier = notifier.NewEmailNotifier(notifier.EmailConfig{
		SMTPServer: cfg.SMTPServer,
		SMTPPort:   cfg.SMTPPort,
		Sender:     cfg.EmailAddress,
		Password:   cfg.EmailPassword,
		Recipient:  cfg.RecipientEmail,
	})
	if !cfg.EmailConfigured() {
		logger.Warn("Email not configured, alerts will be skipped")
	}

	// Persisted deal history
	services.Store = history.NewStore(cfg.HistoryFile)

	return services
}
