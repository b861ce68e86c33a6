package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/neexbeast/farescout/internal/api"
	"github.com/neexbeast/farescout/internal/cache"
	"github.com/neexbeast/farescout/internal/config"
	"github.com/neexbeast/farescout/internal/location"
	"github.com/neexbeast/farescout/internal/source"
	"github.com/neexbeast/farescout/internal/storage"
	"github.com/neexbeast/farescout/migrations"
)

func main() {
	configPath := flag.String("config", "", "optional YAML config file")
	flag.Parse()

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil {
		log.Info("no .env file found, using environment variables")
	}

	if err := run(log, *configPath); err != nil {
		log.Error("server exited with error", "err", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	ctx := context.Background()

	// Connect to PostgreSQL.
	pool, err := storage.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer pool.Close()

	applied, err := storage.RunMigrations(ctx, pool, migrationFS(cfg.MigrationsDir))
	if err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	log.Info("migrations applied", "files", applied)

	// Connect to Redis.
	redisClient, err := cache.Connect(ctx, cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("connecting to redis: %w", err)
	}
	defer func() { _ = redisClient.Close() }()

	// Wire dependencies.
	var sources []source.Source
	if cfg.MockFares {
		sources = append(sources, source.NewMockSource(0))
	}
	for _, u := range cfg.FareSourceURLs {
		sources = append(sources, source.NewHTTPSource(u))
	}
	aggregator := source.NewAggregator(cfg.SourceTimeout, sources...)
	if len(sources) == 0 {
		log.Warn("no fare sources configured, searches will return no offers")
	}

	resolver := location.NewResolver(location.DefaultRegistry())
	repo := storage.NewRepository(pool)
	cacheLayer := cache.NewCache(redisClient, cfg.CacheTTL)
	handlers := api.NewHandlers(resolver, repo, cacheLayer, aggregator, log)

	router := api.NewRouter(handlers, cfg.BearerToken, cfg.RateLimitPerMinute,
		pool, &redisPingerAdapter{client: redisClient}, log)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.SourceTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Error("server goroutine panicked", "recover", r)
				errCh <- fmt.Errorf("server panicked: %v", r)
			}
		}()
		log.Info("server starting", "port", cfg.Port, "sources", aggregator.Sources(), "locations", resolver.Registry().Len())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("listening: %w", err)
		}
	}()

	select {
	case sig := <-quit:
		log.Info("shutdown signal received", "signal", sig)
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}

	log.Info("server shut down cleanly")
	return nil
}

// migrationFS returns dir on disk when it exists, otherwise the embedded set.
func migrationFS(dir string) fs.FS {
	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		return os.DirFS(dir)
	}
	return migrations.FS
}

// redisPingerAdapter adapts redis.Client to the api.Pinger interface.
type redisPingerAdapter struct {
	client *redis.Client
}

func (r *redisPingerAdapter) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
