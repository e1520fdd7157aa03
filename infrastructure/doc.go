// Package infrastructure provides concrete implementations of the interfaces
// defined in core/interfaces: caching, HTTP communication, and logging.
//
// - cache/memory: in-process cache on patrickmn/go-cache
// - cache/redis: shared cache on redis/go-redis, keys prefixed "biblicalman:"
// - cache/sqlite: persistent cache on mattn/go-sqlite3
// - http/standard: net/http client with optional GET retries and JSON POSTs
// - logger/structured: logrus logger with optional lumberjack file rotation
//
// Every cache returns interfaces.ErrCacheMiss for absent or expired keys, so
// callers can swap backends through CACHE_TYPE without code changes.
//
//	cache := memory.NewMemoryCacheWithDefault(time.Hour)
//	err := cache.Set(ctx, "insight:abc", data, 24*time.Hour)
//
// The feed relay client is built without retries; AI provider calls share a
// client with a timeout:
//
//	relayClient := standard.NewStandardHTTPClient(0, standard.WithMaxRetries(0))
//	aiClient := standard.NewStandardHTTPClient(30*time.Second)
//
//	logger := structured.New(structured.Options{Level: "info", Format: "json"})
//	logger.Info("Feed refreshed", map[string]interface{}{"articles": 3})
package infrastructure
