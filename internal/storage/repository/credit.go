package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Dmytro-Burdeniuk/credit-portfolio/internal/models"
)

// ListCreditsByUser возвращает все кредиты пользователя в порядке вставки.
// Для несуществующего пользователя возвращается пустой список.
func (s *Storage) ListCreditsByUser(ctx context.Context, userID int64) ([]models.Credit, error) {
	const op = "storage.ListCreditsByUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_id, issuance_date, return_date, actual_return_date, body, percent
			  FROM credits
			  WHERE user_id = $1
			  ORDER BY id`
	rows, err := s.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []models.Credit
	for rows.Next() {
		var item models.Credit
		if err := rows.Scan(&item.ID, &item.UserID, &item.IssuanceDate, &item.ReturnDate,
			&item.ActualReturnDate, &item.Body, &item.Percent); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// CreateCredit вставляет новый кредит и возвращает его ID.
func (s *Storage) CreateCredit(ctx context.Context, credit models.Credit) (int64, error) {
	const op = "storage.CreateCredit"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO credits (user_id, issuance_date, return_date, actual_return_date, body, percent)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id`
	var newID int64
	err := s.DB.QueryRowContext(ctx, query,
		credit.UserID, credit.IssuanceDate, credit.ReturnDate,
		credit.ActualReturnDate, credit.Body, credit.Percent).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// SumCreditBodyBetween возвращает сумму тел кредитов, выданных
// в диапазоне дат включительно.
func (s *Storage) SumCreditBodyBetween(ctx context.Context, from, to time.Time) (float64, error) {
	const op = "storage.SumCreditBodyBetween"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT COALESCE(SUM(body), 0)
			  FROM credits
			  WHERE issuance_date >= $1 AND issuance_date <= $2`
	var total float64
	if err := s.DB.QueryRowContext(ctx, query, from, to).Scan(&total); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return total, nil
}

// SumCreditBodyForYear возвращает сумму тел кредитов, выданных за год.
func (s *Storage) SumCreditBodyForYear(ctx context.Context, year int) (float64, error) {
	const op = "storage.SumCreditBodyForYear"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT COALESCE(SUM(body), 0)
			  FROM credits
			  WHERE EXTRACT(YEAR FROM issuance_date) = $1`
	var total float64
	if err := s.DB.QueryRowContext(ctx, query, year).Scan(&total); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return total, nil
}

// CountAndSumCreditsBetween возвращает количество и сумму тел кредитов,
// выданных в диапазоне дат включительно.
func (s *Storage) CountAndSumCreditsBetween(ctx context.Context, from, to time.Time) (int, float64, error) {
	const op = "storage.CountAndSumCreditsBetween"
	select {
	case <-ctx.Done():
		return 0, 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT COUNT(*), COALESCE(SUM(body), 0)
			  FROM credits
			  WHERE issuance_date >= $1 AND issuance_date <= $2`
	var count int
	var total float64
	if err := s.DB.QueryRowContext(ctx, query, from, to).Scan(&count, &total); err != nil {
		return 0, 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, total, nil
}
