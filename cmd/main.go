package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/dig"

	rediscache "github.com/coursepilot/searchcache/internal/cache/redis"
	"github.com/coursepilot/searchcache/internal/config"
	"github.com/coursepilot/searchcache/internal/domain"
	embeddingopenai "github.com/coursepilot/searchcache/internal/embedding/openai"
	"github.com/coursepilot/searchcache/internal/http"
	"github.com/coursepilot/searchcache/internal/http/middleware"
	"github.com/coursepilot/searchcache/internal/observability"
	"github.com/coursepilot/searchcache/internal/platform"
)

const shutdownTimeout = 10 * time.Second

func main() {
	container := buildContainer()

	err := container.Invoke(func(server *http.Server) {
		serverErr := make(chan error, 1)
		go func() {
			serverErr <- server.Start()
		}()

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

		select {
		case err := <-serverErr:
			if err != nil {
				log.Fatalf("Server failed: %v", err)
			}
		case <-stop:
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			if err := server.Shutdown(ctx); err != nil {
				log.Fatalf("Shutdown failed: %v", err)
			}
		}
	})
	if err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}
}

func buildContainer() *dig.Container {
	container := dig.New()

	// Configuration
	if err := container.Provide(config.Load); err != nil {
		log.Fatalf("Failed to provide config: %v", err)
	}
	if err := container.Provide(config.ParseDependenciesConfig); err != nil {
		log.Fatalf("Failed to provide config dependencies: %v", err)
	}

	// Observability
	if err := container.Provide(observability.InitLogger); err != nil {
		log.Fatalf("Failed to provide logger: %v", err)
	}
	if err := container.Provide(func() domain.EventPublisher {
		return observability.NewEventBus(slog.Default())
	}); err != nil {
		log.Fatalf("Failed to provide event publisher: %v", err)
	}

	// Shared cache store
	if err := container.Provide(func(cfg *config.RedisConfig) *redis.Client {
		return redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		})
	}); err != nil {
		log.Fatalf("Failed to provide redis client: %v", err)
	}
	if err := container.Provide(func(client *redis.Client, cfg *config.RedisConfig) domain.CacheStore {
		return rediscache.NewStore(client, time.Duration(cfg.OpTimeoutMillis)*time.Millisecond)
	}); err != nil {
		log.Fatalf("Failed to provide cache store: %v", err)
	}
	if err := container.Provide(func(client *redis.Client, cfg *config.RedisConfig) domain.MetricsRecorder {
		return rediscache.NewMetricsRecorder(client, time.Duration(cfg.OpTimeoutMillis)*time.Millisecond)
	}); err != nil {
		log.Fatalf("Failed to provide metrics recorder: %v", err)
	}

	// Host platform collaborators
	if err := container.Provide(func(cfg *embeddingopenai.Config) (*embeddingopenai.Generator, error) {
		return embeddingopenai.NewGenerator(*cfg)
	}); err != nil {
		log.Fatalf("Failed to provide embedding generator: %v", err)
	}
	if err := container.Provide(func(cfg *platform.Config, embedder *embeddingopenai.Generator) *platform.Client {
		return platform.NewClient(*cfg, embedder)
	}); err != nil {
		log.Fatalf("Failed to provide platform client: %v", err)
	}
	if err := container.Provide(func(client *platform.Client) domain.VectorSearcher {
		return client
	}); err != nil {
		log.Fatalf("Failed to provide vector searcher: %v", err)
	}
	if err := container.Provide(func(client *platform.Client) domain.VideoCatalog {
		return client
	}); err != nil {
		log.Fatalf("Failed to provide video catalog: %v", err)
	}

	// Domain services
	if err := container.Provide(domain.NewSearchCacheService); err != nil {
		log.Fatalf("Failed to provide search cache service: %v", err)
	}
	if err := container.Provide(domain.NewInvalidationService); err != nil {
		log.Fatalf("Failed to provide invalidation service: %v", err)
	}

	// HTTP layer
	if err := container.Provide(middleware.BuildMiddlewareChain); err != nil {
		log.Fatalf("Failed to provide middleware chain: %v", err)
	}
	if err := container.Provide(http.NewHandler); err != nil {
		log.Fatalf("Failed to provide HTTP handler: %v", err)
	}
	if err := container.Provide(http.NewServer); err != nil {
		log.Fatalf("Failed to provide HTTP server: %v", err)
	}

	return container
}
