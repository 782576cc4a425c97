// Package scheduleservice starts the Schedax HTTP service.
package scheduleservice

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"

	"github.com/schedax/schedax/internal/api"
	"github.com/schedax/schedax/internal/config"
	"github.com/schedax/schedax/internal/health"
	"github.com/schedax/schedax/internal/kv"
	"github.com/schedax/schedax/internal/kv/memkv"
	"github.com/schedax/schedax/internal/kv/postgreskv"
	"github.com/schedax/schedax/internal/kv/sqlitekv"
	"github.com/schedax/schedax/internal/platform/logger"
	"github.com/schedax/schedax/internal/store"
)

// Run starts the schedule service HTTP server and blocks until shutdown or error.
func Run() error {
	log := logger.New("schedax-service")

	cfg, err := config.New()
	if err != nil {
		log.Error().Err(err).Msg("failed to load configuration")
		return err
	}

	log.Info().
		Str("kv_driver", cfg.KVDriver).
		Int("http_port", cfg.HTTPPort).
		Float64("weekly_capacity_hours", cfg.WeeklyCapacityHours).
		Msg("schedule service starting")

	// Cancellable root context bound to SIGINT/SIGTERM
	ctx, stop := newServerContext()
	defer stop()

	kvStore, err := openKV(ctx, cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("kv store unavailable")
		return err
	}
	recordStore := store.New(kvStore)

	router := api.NewRouter(recordStore, cfg.WeeklyCapacityHours)

	svcHealth := startHealthCheckers(ctx, cfg, log, recordStore)
	if err := waitUntilHealthy(ctx, cfg, svcHealth); err != nil {
		log.Error().Err(err).Msg("startup health check failed")
		return err
	}

	server := newHTTPServer(ctx, cfg, router)
	errCh := serveHTTP(server, log, cfg)

	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down server")
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctxShutdown); err != nil {
			log.Error().Err(err).Msg("server forced to shutdown")
			return err
		}
		log.Info().Msg("server exited")
		return nil
	case err := <-errCh:
		log.Error().Err(err).Msg("HTTP server failed")
		return err
	}
}

// openKV constructs the configured kv driver and verifies connectivity with
// exponential backoff, so a database that is still coming up does not kill
// the service.
func openKV(ctx context.Context, cfg *config.Config, log zerolog.Logger) (kv.Store, error) {
	var (
		st  kv.Store
		err error
	)
	switch cfg.KVDriver {
	case "memory":
		st = memkv.New()
	case "sqlite":
		st, err = sqlitekv.Open(cfg.SQLitePath)
	case "postgres":
		st, err = postgreskv.Open(cfg.PostgresDSN)
	default:
		err = fmt.Errorf("unsupported kv driver: %s", cfg.KVDriver)
	}
	if err != nil {
		return nil, err
	}

	pinger, ok := st.(kv.Pinger)
	if !ok {
		return st, nil
	}
	bo := backoff.WithContext(backoff.NewExponentialBackOff(
		backoff.WithMaxElapsedTime(30*time.Second),
	), ctx)
	op := func() error {
		if err := pinger.Ping(ctx); err != nil {
			log.Warn().Err(err).Msg("kv store not ready, retrying")
			return err
		}
		return nil
	}
	if err := backoff.Retry(op, bo); err != nil {
		return nil, fmt.Errorf("kv store never became reachable: %w", err)
	}
	return st, nil
}

// startHealthCheckers starts the kv checker and the service aggregator and
// binds the health endpoint to it.
func startHealthCheckers(ctx context.Context, cfg *config.Config, log zerolog.Logger, recordStore *store.Store) *health.ServiceHealthChecker {
	probeTimeout := time.Duration(cfg.HealthProbeTimeoutSeconds) * time.Second
	interval := time.Duration(cfg.HealthIntervalSeconds) * time.Second

	var checkers []health.Checker
	if pinger, ok := recordStore.KV().(health.Pinger); ok {
		kvChecker := health.NewPingChecker("kv", pinger, log, probeTimeout)
		go kvChecker.Start(ctx, interval)
		checkers = append(checkers, kvChecker)
	}

	svcHealth := health.NewServiceHealthChecker(log, checkers...)
	go svcHealth.Start(ctx, interval)
	api.BindServiceHealth(svcHealth.IsHealthy)
	return svcHealth
}

func newHTTPServer(ctx context.Context, cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.GetHTTPAddr(),
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
}

func serveHTTP(server *http.Server, log zerolog.Logger, cfg *config.Config) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.HTTPPort).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()
	return errCh
}

// waitUntilHealthy blocks until service health is healthy or the startup window expires.
func waitUntilHealthy(ctx context.Context, cfg *config.Config, svcHealth *health.ServiceHealthChecker) error {
	timeoutSeconds := startupHealthTimeout(cfg.HealthIntervalSeconds)
	deadline := time.Now().Add(time.Duration(timeoutSeconds) * time.Second)
	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()
	for {
		if svcHealth.IsHealthy() {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("startup aborted: dependencies not healthy within %d seconds", timeoutSeconds)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// startupHealthTimeout returns the startup window in seconds: interval*2
// with a 60 second floor, giving checkers time for their first probe cycle.
func startupHealthTimeout(healthIntervalSeconds int) int {
	timeout := healthIntervalSeconds * 2
	if timeout < 60 {
		return 60
	}
	return timeout
}

// newServerContext returns a cancellable context that is cancelled on SIGINT/SIGTERM.
func newServerContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
