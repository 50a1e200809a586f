package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"todoapi/internal/adapter/database/postgres"
	"todoapi/internal/adapter/database/sqlite"
	"todoapi/internal/adapter/telemetry"
	"todoapi/internal/core/port"
	"todoapi/pkg/config"
)

// Run starts the HTTP server and blocks until ctx is cancelled, then
// shuts down gracefully.
func Run(ctx context.Context, cfg *config.AppConfig, logger zerolog.Logger) error {
	uow, cleanup, err := newUnitOfWorkFactory(ctx, cfg, logger)

	if err != nil {
		return err
	}

	defer cleanup()

	metrics := telemetry.NewMetrics()
	container := NewContainer(uow, metrics, logger)
	router := SetupRouter(container, cfg, metrics, logger)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	errCh := make(chan error, 1)

	go func() {
		logger.Info().
			Str("port", cfg.Port).
			Str("environment", cfg.Environment).
			Bool("rate_limit_enabled", cfg.RateLimitEnabled).
			Bool("auth_open_mode", cfg.JWTSecret == "").
			Msg("server starting")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

func newUnitOfWorkFactory(ctx context.Context, cfg *config.AppConfig, logger zerolog.Logger) (port.UnitOfWorkFactory, func(), error) {
	if cfg.DatabaseURL != "" {
		db, err := postgres.NewDB(ctx, cfg)

		if err != nil {
			return nil, nil, err
		}

		logger.Info().Msg("using postgres store")

		return postgres.NewUnitOfWorkFactory(db), db.Close, nil
	}

	db, err := sqlite.NewDB(cfg, logger)

	if err != nil {
		return nil, nil, err
	}

	logger.Info().Str("path", cfg.DatabasePath).Msg("using sqlite store")

	return sqlite.NewUnitOfWorkFactory(db), func() { db.Close() }, nil
}
