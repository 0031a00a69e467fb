// Package plansperformance реализует HTTP-обработчик отчёта о выполнении
// планов на отчётную дату.
package plansperformance

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/Dmytro-Burdeniuk/credit-portfolio/internal/http/response"
	"github.com/Dmytro-Burdeniuk/credit-portfolio/internal/lib/sl"
	"github.com/Dmytro-Burdeniuk/credit-portfolio/internal/models"
)

// Handler обрабатывает запросы отчёта о выполнении планов.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики отчёта
}

// Service описывает интерфейс бизнес-логики отчёта о выполнении планов.
type Service interface {
	PlansPerformance(ctx context.Context, targetDate time.Time) ([]models.PlanPerformanceItem, error)
}

// New создает новый Handler с переданным логгером и сервисом отчёта.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP обрабатывает HTTP-запрос отчёта о выполнении планов.
//
// Выполняет:
// - Парсинг отчётной даты из query-параметра target_date (2006-01-02).
// - Вызов сервиса отчёта.
// - Возврат списка планов с процентом выполнения или ошибки.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.report.plansperformance"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	targetDate, err := time.Parse("2006-01-02", r.URL.Query().Get("target_date"))
	if err != nil {
		log.Error("failed to parse target_date", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("target_date must be a date in format 2006-01-02"))
		return
	}

	res, err := h.service.PlansPerformance(r.Context(), targetDate)
	if err != nil {
		log.Error("failed to build plans performance report", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not build plans performance report"))
		return
	}

	log.Info("success to build plans performance report", slog.Int("plans", len(res)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"plans_count": len(res),
		"plans":       res,
	}))
}
