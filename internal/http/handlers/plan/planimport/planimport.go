// Package planimport реализует HTTP-обработчик импорта месячных планов.
//
// Handler принимает JSON-запрос со структурированными строками планов,
// валидирует его, вызывает бизнес-логику импорта и возвращает итог:
// количество вставленных планов и список пропущенных строк.
//
// Разбор файловых форматов (Excel и т.п.) — забота клиента: сюда приходят
// уже структурированные строки.
package planimport

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/Dmytro-Burdeniuk/credit-portfolio/internal/http/response"
	"github.com/Dmytro-Burdeniuk/credit-portfolio/internal/lib/sl"
	"github.com/Dmytro-Burdeniuk/credit-portfolio/internal/models"
)

// Handler обрабатывает запросы импорта планов.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики импорта планов
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики импорта планов.
type Service interface {
	ImportPlans(ctx context.Context, rows []models.DummyPlanRow) (*models.PlanImportResult, error)
}

// New создает новый Handler с переданным логгером и сервисом импорта.
// Регистрирует проверку date: у валидатора нет встроенной проверки даты,
// строка обязана парситься в формате 2006-01-02.
func New(log *slog.Logger, service Service) *Handler {
	validate := validator.New()
	_ = validate.RegisterValidation("date", func(fl validator.FieldLevel) bool {
		_, err := time.Parse("2006-01-02", fl.Field().String())
		return err == nil
	})
	return &Handler{
		log:      log,
		service:  service,
		validate: validate,
	}
}

// ServeHTTP обрабатывает HTTP-запрос импорта планов.
//
// Выполняет:
// - Декодирование JSON со строками планов из тела запроса.
// - Валидацию строк (дата, категория, неотрицательная сумма).
// - Вызов сервиса импорта.
// - Возврат итога импорта или ошибочного ответа в формате JSON.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.plan.planimport"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyPlanImport
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	res, err := h.service.ImportPlans(r.Context(), req.Rows)
	if err != nil {
		log.Error("failed to import plans", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not import plans"))
		return
	}

	log.Info("success to import plans",
		slog.Int("inserted", res.InsertedCount), slog.Int("skipped", len(res.Skipped)))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.StatusOKWithData(res))
}
