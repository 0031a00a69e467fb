// Package credits содержит бизнес-логику отчёта по кредитам пользователя.
package credits

import (
	"context"
	"log/slog"
	"time"

	"github.com/Dmytro-Burdeniuk/credit-portfolio/internal/lib/period"
	"github.com/Dmytro-Burdeniuk/credit-portfolio/internal/models"
)

// Repository определяет методы хранилища, нужные отчёту по кредитам.
type Repository interface {
	// ListCreditsByUser возвращает кредиты пользователя в порядке вставки.
	ListCreditsByUser(ctx context.Context, userID int64) ([]models.Credit, error)
	// SumPaymentsByCredit возвращает агрегат платежей кредита по типам.
	SumPaymentsByCredit(ctx context.Context, creditID int64) (models.PaymentTotals, error)
}

// Service реализует построение отчёта по кредитам одного пользователя.
type Service struct {
	repo Repository
	log  *slog.Logger
	now  func() time.Time
}

// New создает новый Service с переданным хранилищем и логгером.
func New(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
		now:  time.Now,
	}
}

// ListUserCredits возвращает по одной записи на каждый кредит пользователя.
// Закрытый кредит (есть фактическая дата возврата) даёт запись с общей суммой
// платежей; открытый — с днями просрочки и платежами по телу и процентам.
// Неизвестный пользователь даёт пустой список, а не ошибку.
func (s *Service) ListUserCredits(ctx context.Context, userID int64) ([]models.UserCreditReport, error) {
	credits, err := s.repo.ListCreditsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]models.UserCreditReport, 0, len(credits))
	for _, credit := range credits {
		totals, err := s.repo.SumPaymentsByCredit(ctx, credit.ID)
		if err != nil {
			return nil, err
		}

		state := credit.State()
		switch {
		case state.Closed != nil:
			result = append(result, models.UserCreditClosed{
				IssuanceDate:     credit.IssuanceDate,
				IsClosed:         true,
				Body:             credit.Body,
				Percent:          credit.Percent,
				ActualReturnDate: state.Closed.ActualReturnDate,
				TotalPaymentsSum: totals.Total,
			})
		default:
			overdueDays := period.DaysBetween(state.Open.ReturnDate, s.now())
			if overdueDays < 0 {
				overdueDays = 0
			}
			result = append(result, models.UserCreditOpen{
				IssuanceDate:       credit.IssuanceDate,
				IsClosed:           false,
				Body:               credit.Body,
				Percent:            credit.Percent,
				ReturnDate:         state.Open.ReturnDate,
				OverdueDays:        overdueDays,
				BodyPaymentsSum:    totals.Body,
				PercentPaymentsSum: totals.Percent,
			})
		}
	}

	s.log.Info("built user credits report",
		slog.Int64("user_id", userID), slog.Int("credits", len(result)))
	return result, nil
}
