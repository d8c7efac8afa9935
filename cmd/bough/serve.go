package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/aretw0/bough"
	"github.com/aretw0/bough/internal/logging"
	httpAdapter "github.com/aretw0/bough/pkg/adapters/http"
	redisAdapter "github.com/aretw0/bough/pkg/adapters/redis"
	"github.com/aretw0/bough/pkg/observability"
	"github.com/aretw0/bough/pkg/ports"
	"github.com/aretw0/bough/pkg/recommend"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the vacation recommender over HTTP",
	Long:  `Starts a JSON API around the sample vacation tree: POST /traverse runs a traversal, GET /traces/{id} replays a stored trace, GET /metrics exposes prometheus collectors.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetString("port")
		redisAddr, _ := cmd.Flags().GetString("redis")
		redisDB, _ := cmd.Flags().GetInt("redis-db")
		ttl, _ := cmd.Flags().GetDuration("trace-ttl")

		levelFlag, _ := cmd.Flags().GetString("log-level")
		level, err := logging.ParseLevel(levelFlag)
		if err != nil {
			return err
		}
		logger := logging.New(level)

		registry := prometheus.NewRegistry()
		metrics := observability.New(registry)

		// The tree is shared across request goroutines: stamping stays off
		// and every response is built from the per-call result.
		tree := recommend.Build(
			bough.WithoutStamping(),
			bough.WithLogger(logger),
			bough.WithLifecycleHooks(metrics.Hooks()),
		)

		opts := []httpAdapter.Option{
			httpAdapter.WithLogger(logger),
			httpAdapter.WithMetrics(registry),
		}
		if redisAddr != "" {
			var store ports.TraceStore = redisAdapter.New(redisAddr, os.Getenv("BOUGH_REDIS_PASSWORD"), redisDB,
				redisAdapter.WithTTL(ttl),
			)
			opts = append(opts, httpAdapter.WithStore(store))
			logger.Info("trace persistence enabled", "redis", redisAddr, "ttl", ttl)
		}

		srv := &http.Server{
			Addr:    ":" + port,
			Handler: httpAdapter.NewHandler(tree, opts...),
		}

		serverErrors := make(chan error, 1)
		go func() {
			logger.Info("starting bough server", "addr", srv.Addr, "version", bough.Version)
			serverErrors <- srv.ListenAndServe()
		}()

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			return fmt.Errorf("server error: %w", err)

		case sig := <-shutdown:
			logger.Info("shutting down", "signal", sig.String())

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Warn("graceful shutdown did not complete", "error", err)
				if err := srv.Close(); err != nil {
					return fmt.Errorf("could not stop server: %w", err)
				}
			}
			logger.Info("server stopped")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().String("redis", "", "Redis address for trace persistence (empty disables it)")
	serveCmd.Flags().Int("redis-db", 0, "Redis database number")
	serveCmd.Flags().Duration("trace-ttl", 24*time.Hour, "Expiry for stored traces (0 keeps them forever)")
}
