// Package creditportfolio собирает и запускает HTTP-сервис кредитного портфеля:
// хранилище, миграции, сервисы отчётов и импорта планов, маршруты и сервер.
package creditportfolio

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/Dmytro-Burdeniuk/credit-portfolio/internal/config"
	"github.com/Dmytro-Burdeniuk/credit-portfolio/internal/migrations"
	creditsservice "github.com/Dmytro-Burdeniuk/credit-portfolio/internal/services/credits"
	performanceservice "github.com/Dmytro-Burdeniuk/credit-portfolio/internal/services/performance"
	plansservice "github.com/Dmytro-Burdeniuk/credit-portfolio/internal/services/plans"
	"github.com/Dmytro-Burdeniuk/credit-portfolio/internal/storage/repository"
)

type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
}

func New(_ context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}
	if err = repository.CheckDatabaseReady(db); err != nil {
		return nil, err
	}

	creditsService := creditsservice.New(db, logger)
	plansService := plansservice.New(db, logger)
	performanceService := performanceservice.New(db, logger)

	router := chi.NewRouter()

	RegisterRoutes(router, logger, creditsService, plansService, performanceService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.db.DB.Close()
		return err
	}
}
