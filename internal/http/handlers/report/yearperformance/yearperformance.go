// Package yearperformance реализует HTTP-обработчик годового отчёта
// с помесячной разбивкой выдач и сборов.
package yearperformance

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/Dmytro-Burdeniuk/credit-portfolio/internal/http/response"
	"github.com/Dmytro-Burdeniuk/credit-portfolio/internal/lib/sl"
	"github.com/Dmytro-Burdeniuk/credit-portfolio/internal/models"
)

// Handler обрабатывает запросы годового отчёта.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики годового отчёта
}

// Service описывает интерфейс бизнес-логики годового отчёта.
type Service interface {
	YearPerformance(ctx context.Context, year int) ([]models.YearPerformanceItem, error)
}

// New создает новый Handler с переданным логгером и сервисом отчёта.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP обрабатывает HTTP-запрос годового отчёта.
//
// Выполняет:
// - Парсинг года из query-параметра year.
// - Вызов сервиса отчёта.
// - Возврат 12 помесячных записей или ошибки.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.report.yearperformance"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year <= 0 {
		log.Error("failed to parse year")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("year must be a positive number"))
		return
	}

	res, err := h.service.YearPerformance(r.Context(), year)
	if err != nil {
		log.Error("failed to build year performance report", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not build year performance report"))
		return
	}

	log.Info("success to build year performance report", slog.Int("year", year))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"months": res,
	}))
}
