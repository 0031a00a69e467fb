// Package usercredits реализует HTTP-обработчик для получения отчёта
// по кредитам одного пользователя.
//
// Handler извлекает ID пользователя из URL-параметров, вызывает бизнес-логику
// построения отчёта и возвращает список записей в JSON-формате: для закрытых
// кредитов — с общей суммой платежей, для открытых — с днями просрочки.
package usercredits

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/Dmytro-Burdeniuk/credit-portfolio/internal/http/response"
	"github.com/Dmytro-Burdeniuk/credit-portfolio/internal/lib/sl"
	"github.com/Dmytro-Burdeniuk/credit-portfolio/internal/models"
)

// Handler обрабатывает запросы отчёта по кредитам пользователя.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики отчёта по кредитам
}

// Service описывает интерфейс бизнес-логики отчёта по кредитам пользователя.
type Service interface {
	ListUserCredits(ctx context.Context, userID int64) ([]models.UserCreditReport, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP обрабатывает HTTP-запрос отчёта по кредитам пользователя.
//
// Выполняет:
// - Парсинг ID пользователя из URL.
// - Вызов бизнес-логики построения отчёта.
// - Формирование JSON-ответа с записями или ошибкой.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.credit.usercredits"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userID, err := strconv.ParseInt(chi.URLParam(r, "user_id"), 10, 64)
	if err != nil {
		log.Error("failed to decode user_id from url", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid user_id"))
		return
	}

	res, err := h.service.ListUserCredits(r.Context(), userID)
	if err != nil {
		log.Error("failed to list user credits", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list user credits"))
		return
	}

	log.Info("success to list user credits", slog.Int("count", len(res)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"credits_count": len(res),
		"credits":       res,
	}))
}
