// ABOUTME: Wires configuration into caches, clients, the content store and insight services
// ABOUTME: Shared by every command so serve and the one-shot commands behave the same

package main

import (
	"fmt"
	"net/http"
	"time"

	"biblicalman-api/api/middleware"
	"biblicalman-api/core/feed"
	"biblicalman-api/core/insight"
	"biblicalman-api/core/interfaces"
	"biblicalman-api/core/reader"
	"biblicalman-api/core/store"
	"biblicalman-api/core/workers"
	"biblicalman-api/infrastructure/cache/memory"
	"biblicalman-api/infrastructure/cache/redis"
	"biblicalman-api/infrastructure/cache/sqlite"
	"biblicalman-api/infrastructure/http/standard"
	"biblicalman-api/infrastructure/logger/structured"
	"biblicalman-api/pkg/config"
	"biblicalman-api/pkg/featureflags"
)

type closer interface {
	Close() error
}

type app struct {
	cfg    *config.Config
	logger *structured.Logger
	flags  featureflags.Manager

	cache      interfaces.Cache
	cacheClose closer

	store     *store.Store
	insights  *insight.Service
	worker    *workers.InsightWorker
	sessions  *reader.Sessions
	extractor *reader.SourceExtractor
}

func newApp(cfg *config.Config) (*app, error) {
	logger := structured.New(structured.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})

	a := &app{
		cfg:    cfg,
		logger: logger,
		flags:  featureflags.NewEnvManager("FEATURE_"),
	}
	a.cache, a.cacheClose = newCache(cfg.Cache, logger)

	transport := middleware.NewLoggingRoundTripper(http.DefaultTransport, logger)

	// The relay gets exactly one attempt and no client-side timeout
	relayClient := standard.NewStandardHTTPClient(0,
		standard.WithMaxRetries(0),
		standard.WithTransport(transport),
	)
	aiClient := standard.NewStandardHTTPClient(cfg.AI.Timeout, standard.WithTransport(transport))

	fallback, err := store.LoadFallback(cfg.Feed.FallbackFile)
	if err != nil {
		return nil, fmt.Errorf("loading fallback articles: %w", err)
	}

	relay := feed.NewRelayFetcher(relayClient, cfg.Feed.RelayURL)
	pipeline := feed.NewPipeline(relay, feed.NewParser(cfg.Feed.MaxArticles), cfg.Feed.URL, logger)
	a.store = store.NewStore(fallback, pipeline, logger)

	deps := interfaces.Dependencies{
		Cache:      a.cache,
		HTTPClient: aiClient,
		Logger:     logger,
	}

	provider, err := insight.NewProvider(cfg.AI, aiClient)
	if err != nil {
		// Insights degrade to "unavailable" rather than stopping the service
		logger.Warn("Insight provider not configured", map[string]interface{}{
			"provider": cfg.AI.Provider,
			"error":    err.Error(),
		})
	}
	a.insights = insight.NewService(provider, deps, cfg.AI.InsightCacheTTL)
	a.insights.SetFlags(a.flags)

	a.worker = workers.NewInsightWorker(a.insights, logger, workers.WorkerConfig{
		MaxWorkers: cfg.Reader.Workers,
		QueueSize:  cfg.Reader.QueueSize,
		JobTimeout: cfg.AI.Timeout,
	})
	a.sessions = reader.NewSessions(cfg.Reader.SessionTTL, func() *reader.View {
		return reader.NewView(a.worker, a.flags, logger)
	})
	a.extractor = reader.NewSourceExtractor(deps)

	return a, nil
}

func newCache(cfg config.CacheConfig, logger interfaces.Logger) (interfaces.Cache, closer) {
	switch cfg.Type {
	case "redis":
		c, err := redis.NewRedisCache(cfg.Redis)
		if err == nil {
			logger.Info("Using Redis cache", map[string]interface{}{"address": cfg.Redis.Address})
			return c, c
		}
		logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
			"error": err.Error(),
		})
	case "sqlite":
		c, err := sqlite.NewSQLiteCache(cfg.SQLite.Path)
		if err == nil {
			logger.Info("Using SQLite cache", map[string]interface{}{"path": cfg.SQLite.Path})
			return c, c
		}
		logger.Error("Failed to create SQLite cache, falling back to memory", map[string]interface{}{
			"error": err.Error(),
		})
	}

	logger.Info("Using memory cache", nil)
	return memory.NewMemoryCacheWithDefault(secondsToDuration(cfg.Memory.DefaultExpiration)), nil
}

func (a *app) close() {
	if err := a.worker.Stop(); err != nil {
		a.logger.Warn("Insight worker stop failed", map[string]interface{}{"error": err.Error()})
	}
	if a.cacheClose != nil {
		if err := a.cacheClose.Close(); err != nil {
			a.logger.Warn("Cache close failed", map[string]interface{}{"error": err.Error()})
		}
	}
	_ = a.logger.Close()
}

func secondsToDuration(seconds int) time.Duration {
	if seconds <= 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}
