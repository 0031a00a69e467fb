package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Dmytro-Burdeniuk/credit-portfolio/internal/models"
)

// SumPaymentsByCredit возвращает агрегат платежей одного кредита:
// общую сумму и суммы по типам "тіло" и "відсотки". Сопоставление типа
// регистронезависимое; платежи с другими типами входят только в общую сумму.
func (s *Storage) SumPaymentsByCredit(ctx context.Context, creditID int64) (models.PaymentTotals, error) {
	const op = "storage.SumPaymentsByCredit"
	select {
	case <-ctx.Done():
		return models.PaymentTotals{}, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT
			      COALESCE(SUM(p.amount), 0),
			      COALESCE(SUM(p.amount) FILTER (WHERE LOWER(d.name) = 'тіло'), 0),
			      COALESCE(SUM(p.amount) FILTER (WHERE LOWER(d.name) = 'відсотки'), 0)
			  FROM payments p
			  LEFT JOIN dictionary d ON d.id = p.type_id
			  WHERE p.credit_id = $1`
	var totals models.PaymentTotals
	err := s.DB.QueryRowContext(ctx, query, creditID).
		Scan(&totals.Total, &totals.Body, &totals.Percent)
	if err != nil {
		return models.PaymentTotals{}, fmt.Errorf("%s: %w", op, err)
	}
	return totals, nil
}

// CreatePayment вставляет новый платёж и возвращает его ID.
func (s *Storage) CreatePayment(ctx context.Context, payment models.Payment) (int64, error) {
	const op = "storage.CreatePayment"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO payments (credit_id, type_id, amount, payment_date)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id`
	var newID int64
	err := s.DB.QueryRowContext(ctx, query,
		payment.CreditID, payment.TypeID, payment.Amount, payment.PaymentDate).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// SumPaymentsByTypeNameBetween возвращает сумму платежей с точным именем типа
// в диапазоне дат включительно.
func (s *Storage) SumPaymentsByTypeNameBetween(ctx context.Context, typeName string, from, to time.Time) (float64, error) {
	const op = "storage.SumPaymentsByTypeNameBetween"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT COALESCE(SUM(p.amount), 0)
			  FROM payments p
			  JOIN dictionary d ON d.id = p.type_id
			  WHERE p.payment_date >= $1 AND p.payment_date <= $2
			    AND d.name = $3`
	var total float64
	if err := s.DB.QueryRowContext(ctx, query, from, to, typeName).Scan(&total); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return total, nil
}

// SumPaymentsForYear возвращает сумму типизированных платежей за год.
// Платежи без записи в справочнике не учитываются.
func (s *Storage) SumPaymentsForYear(ctx context.Context, year int) (float64, error) {
	const op = "storage.SumPaymentsForYear"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT COALESCE(SUM(p.amount), 0)
			  FROM payments p
			  JOIN dictionary d ON d.id = p.type_id
			  WHERE EXTRACT(YEAR FROM p.payment_date) = $1`
	var total float64
	if err := s.DB.QueryRowContext(ctx, query, year).Scan(&total); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return total, nil
}

// CountAndSumPaymentsBetween возвращает количество и сумму типизированных
// платежей в диапазоне дат включительно.
func (s *Storage) CountAndSumPaymentsBetween(ctx context.Context, from, to time.Time) (int, float64, error) {
	const op = "storage.CountAndSumPaymentsBetween"
	select {
	case <-ctx.Done():
		return 0, 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT COUNT(*), COALESCE(SUM(p.amount), 0)
			  FROM payments p
			  JOIN dictionary d ON d.id = p.type_id
			  WHERE p.payment_date >= $1 AND p.payment_date <= $2`
	var count int
	var total float64
	if err := s.DB.QueryRowContext(ctx, query, from, to).Scan(&count, &total); err != nil {
		return 0, 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, total, nil
}
