// Package app wires configuration, storage, services and the HTTP engine into a runnable server.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/maxviazov/studio-backoffice/internal/config"
	"github.com/maxviazov/studio-backoffice/internal/handler"
	"github.com/maxviazov/studio-backoffice/internal/listquery"
	"github.com/maxviazov/studio-backoffice/internal/service"
)

type App struct {
	cfg     *config.Config
	log     zerolog.Logger
	storage *Storage
	engine  *gin.Engine
}

// New opens storage, applies migrations when the driver asks for it and builds the router.
func New(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*App, error) {
	storage, err := OpenStorage(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	if storage.autoMigrate {
		if err := storage.Migrate("up", logger); err != nil {
			_ = storage.Close()
			return nil, err
		}
	}
	return newApp(cfg, storage, logger), nil
}

func newApp(cfg *config.Config, storage *Storage, logger zerolog.Logger) *App {
	if cfg.App.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	opts := service.ListOptions{
		Limits: listquery.Limits{Default: cfg.Listing.DefaultLimit, Max: cfg.Listing.MaxLimit},
	}
	if cfg.Listing.Snapshot {
		opts.Tx = storage.TxManager()
	}

	engine := handler.New(handler.Options{Logger: logger, RequestTimeout: cfg.App.RequestTimeout})
	handler.Register(engine, storage, routes(storage, opts, logger)...)

	return &App{cfg: cfg, log: logger, storage: storage, engine: engine}
}

func (a *App) Handler() http.Handler { return a.engine }

// Run serves HTTP until ctx is cancelled, then drains in-flight requests within
// the configured shutdown timeout.
func (a *App) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              a.cfg.App.Addr(),
		Handler:           a.engine,
		ReadHeaderTimeout: a.cfg.App.RequestTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info().Str("addr", srv.Addr).Str("driver", a.cfg.Storage.Driver).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.App.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}

func (a *App) Close() error {
	return a.storage.Close()
}
