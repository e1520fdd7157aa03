// ABOUTME: serve command runs the HTTP API until SIGINT or SIGTERM
// ABOUTME: Starts the single background refresh of the content store before listening

package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"biblicalman-api/api"
	"biblicalman-api/api/handlers"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 30 * time.Second

func newServeCommand(cmdCtx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cmdCtx.ensureConfig()
			if err != nil {
				return err
			}

			a, err := newApp(cfg)
			if err != nil {
				return err
			}
			defer a.close()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a.logger.Info("Starting Biblical Man API", map[string]interface{}{
				"port":       cfg.Server.Port,
				"cache_type": cfg.Cache.Type,
				"feed_url":   cfg.Feed.URL,
				"version":    version,
			})

			if err := a.worker.Start(); err != nil {
				return err
			}

			// Fire-and-forget: the fallback set is served until this finishes
			a.store.Start(ctx)

			humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
				Logger:     a.logger,
				Flags:      a.flags,
				RateLimit:  cfg.Server.RateLimit,
				RateWindow: cfg.Server.RateWindow,
			})
			handlers.NewArticleHandler(a.store).RegisterRoutes(humaAPI)
			handlers.NewInsightHandler(a.store, a.insights, a.logger).RegisterRoutes(humaAPI)
			handlers.NewReaderHandler(a.store, a.sessions).RegisterRoutes(humaAPI)
			handlers.NewSourceHandler(a.store, a.extractor, a.flags).RegisterRoutes(humaAPI)
			handlers.NewHealthHandler(a.store, a.sessions, a.flags).RegisterRoutes(humaAPI)

			srv := &http.Server{
				Addr:         ":" + cfg.Server.Port,
				Handler:      router,
				ReadTimeout:  15 * time.Second,
				WriteTimeout: 60 * time.Second,
				IdleTimeout:  60 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				a.logger.Info("HTTP server starting", map[string]interface{}{"address": srv.Addr})
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				if err != nil {
					a.logger.Error("HTTP server error", map[string]interface{}{"error": err.Error()})
					return err
				}
			case <-ctx.Done():
			}

			a.logger.Info("Shutting down server...", nil)

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				a.logger.Error("Server forced to shutdown", map[string]interface{}{"error": err.Error()})
				return err
			}

			a.logger.Info("Server stopped", nil)
			return nil
		},
	}
}
