package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Dmytro-Burdeniuk/credit-portfolio/internal/models"
)

// ListPlansForMonth возвращает планы указанного месяца вместе с именами
// категорий, в порядке вставки.
func (s *Storage) ListPlansForMonth(ctx context.Context, year, month int) ([]models.PlanWithCategory, error) {
	const op = "storage.ListPlansForMonth"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT p.id, p.period, p.sum, p.category_id, d.name
			  FROM plans p
			  JOIN dictionary d ON d.id = p.category_id
			  WHERE EXTRACT(YEAR FROM p.period) = $1
			    AND EXTRACT(MONTH FROM p.period) = $2
			  ORDER BY p.id`
	rows, err := s.DB.QueryContext(ctx, query, year, month)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []models.PlanWithCategory
	for rows.Next() {
		var item models.PlanWithCategory
		if err := rows.Scan(&item.ID, &item.Period, &item.Sum, &item.CategoryID, &item.CategoryName); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// PlanExists сообщает, есть ли уже план с данным периодом и категорией.
func (s *Storage) PlanExists(ctx context.Context, period time.Time, categoryID int64) (bool, error) {
	const op = "storage.PlanExists"
	select {
	case <-ctx.Done():
		return false, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT EXISTS (
			      SELECT 1 FROM plans WHERE period = $1 AND category_id = $2
			  )`
	var exists bool
	if err := s.DB.QueryRowContext(ctx, query, period, categoryID).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return exists, nil
}

// CreatePlans вставляет все переданные планы в одной транзакции.
// Либо вставляются все, либо ни один.
func (s *Storage) CreatePlans(ctx context.Context, plans []models.Plan) error {
	const op = "storage.CreatePlans"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query := `INSERT INTO plans (period, sum, category_id)
			  VALUES ($1, $2, $3)`
	for _, plan := range plans {
		if _, err := tx.ExecContext(ctx, query, plan.Period, plan.Sum, plan.CategoryID); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// SumPlansByCategoryPattern возвращает сумму планов месяца, у которых имя
// категории содержит подстроку pattern без учёта регистра.
func (s *Storage) SumPlansByCategoryPattern(ctx context.Context, year, month int, pattern string) (float64, error) {
	const op = "storage.SumPlansByCategoryPattern"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT COALESCE(SUM(p.sum), 0)
			  FROM plans p
			  JOIN dictionary d ON d.id = p.category_id
			  WHERE EXTRACT(YEAR FROM p.period) = $1
			    AND EXTRACT(MONTH FROM p.period) = $2
			    AND d.name ILIKE '%' || $3 || '%'`
	var total float64
	if err := s.DB.QueryRowContext(ctx, query, year, month, pattern).Scan(&total); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return total, nil
}
