// Package plans содержит бизнес-логику импорта месячных планов.
package plans

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Dmytro-Burdeniuk/credit-portfolio/internal/models"
	"github.com/Dmytro-Burdeniuk/credit-portfolio/internal/storage/repository"
)

// Repository определяет методы хранилища, нужные импортёру планов.
type Repository interface {
	// GetCategoryByName ищет категорию плана по точному имени;
	// отсутствие записи — repository.ErrNotFound.
	GetCategoryByName(ctx context.Context, name string) (*models.DictionaryEntry, error)
	// PlanExists сообщает, есть ли план с данным периодом и категорией.
	PlanExists(ctx context.Context, period time.Time, categoryID int64) (bool, error)
	// CreatePlans вставляет планы одной транзакцией.
	CreatePlans(ctx context.Context, plans []models.Plan) error
}

// Service реализует импорт планов из структурированных строк.
type Service struct {
	repo Repository
	log  *slog.Logger
}

// New создает новый Service с переданным хранилищем и логгером.
func New(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

type planKey struct {
	period     time.Time
	categoryID int64
}

// ImportPlans обрабатывает строки в порядке поступления: строка с неизвестной
// категорией или с уже существующей парой (период, категория) попадает в
// skipped, остальные накапливаются и вставляются одной транзакцией в конце.
// Пара учитывается и среди ещё не вставленных строк запроса, поэтому повтор
// внутри одного запроса тоже пропускается, а не ломает транзакцию об
// ограничение уникальности планов.
func (s *Service) ImportPlans(ctx context.Context, rows []models.DummyPlanRow) (*models.PlanImportResult, error) {
	skipped := make([]string, 0)
	queued := make(map[planKey]struct{})
	var toInsert []models.Plan

	for _, row := range rows {
		periodDate, err := time.Parse("2006-01-02", row.Period)
		if err != nil {
			return nil, fmt.Errorf("invalid period %q: %w", row.Period, err)
		}

		category, err := s.repo.GetCategoryByName(ctx, row.CategoryName)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				skipped = append(skipped,
					fmt.Sprintf("%s - %s (Category not found)", row.Period, row.CategoryName))
				continue
			}
			return nil, err
		}

		key := planKey{period: periodDate, categoryID: category.ID}
		if _, ok := queued[key]; ok {
			skipped = append(skipped, fmt.Sprintf("%s - %s", row.Period, row.CategoryName))
			continue
		}

		exists, err := s.repo.PlanExists(ctx, periodDate, category.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			skipped = append(skipped, fmt.Sprintf("%s - %s", row.Period, row.CategoryName))
			continue
		}

		queued[key] = struct{}{}
		toInsert = append(toInsert, models.Plan{
			Period:     periodDate,
			Sum:        row.Sum,
			CategoryID: category.ID,
		})
	}

	if len(toInsert) > 0 {
		if err := s.repo.CreatePlans(ctx, toInsert); err != nil {
			return nil, err
		}
	}

	result := &models.PlanImportResult{
		InsertedCount: len(toInsert),
		Skipped:       skipped,
		Message:       fmt.Sprintf("%d plans inserted, %d skipped", len(toInsert), len(skipped)),
	}

	s.log.Info("imported plans",
		slog.Int("inserted", result.InsertedCount), slog.Int("skipped", len(skipped)))
	return result, nil
}
