// Package creditportfolio предоставляет маршруты для основного приложения.
package creditportfolio

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/Dmytro-Burdeniuk/credit-portfolio/internal/http/handlers/credit/usercredits"
	"github.com/Dmytro-Burdeniuk/credit-portfolio/internal/http/handlers/health"
	"github.com/Dmytro-Burdeniuk/credit-portfolio/internal/http/handlers/plan/planimport"
	"github.com/Dmytro-Burdeniuk/credit-portfolio/internal/http/handlers/report/plansperformance"
	"github.com/Dmytro-Burdeniuk/credit-portfolio/internal/http/handlers/report/yearperformance"
	"github.com/Dmytro-Burdeniuk/credit-portfolio/internal/http/middlewarectx"
	creditsservice "github.com/Dmytro-Burdeniuk/credit-portfolio/internal/services/credits"
	performanceservice "github.com/Dmytro-Burdeniuk/credit-portfolio/internal/services/performance"
	plansservice "github.com/Dmytro-Burdeniuk/credit-portfolio/internal/services/plans"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, creditsService *creditsservice.Service, plansService *plansservice.Service, performanceService *performanceservice.Service) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middlewarectx.RateLimitMiddleware(logger))
		r.Get("/users/{user_id}/credits", usercredits.New(logger, creditsService).ServeHTTP)
		r.Post("/plans/import", planimport.New(logger, plansService).ServeHTTP)
		r.Get("/reports/plans-performance", plansperformance.New(logger, performanceService).ServeHTTP)
		r.Get("/reports/year-performance", yearperformance.New(logger, performanceService).ServeHTTP)
	})

	r.Get("/health", health.New(logger).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
