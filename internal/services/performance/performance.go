// Package performance содержит бизнес-логику отчётов о выполнении планов:
// на отчётную дату и помесячно за год.
package performance

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/Dmytro-Burdeniuk/credit-portfolio/internal/lib/period"
	"github.com/Dmytro-Burdeniuk/credit-portfolio/internal/models"
)

// Имена категорий справочника. Ветвление по имени сохранено для
// совместимости с существующими данными; сопоставление регистронезависимое.
const (
	categoryIssue   = "видача"
	categoryCollect = "збір"
)

// Repository определяет агрегатные методы хранилища, нужные отчётам.
type Repository interface {
	// ListPlansForMonth возвращает планы месяца с именами категорий.
	ListPlansForMonth(ctx context.Context, year, month int) ([]models.PlanWithCategory, error)
	// SumCreditBodyBetween — сумма тел кредитов, выданных в диапазоне дат.
	SumCreditBodyBetween(ctx context.Context, from, to time.Time) (float64, error)
	// SumPaymentsByTypeNameBetween — сумма платежей с точным именем типа в диапазоне дат.
	SumPaymentsByTypeNameBetween(ctx context.Context, typeName string, from, to time.Time) (float64, error)
	// SumCreditBodyForYear — сумма тел кредитов, выданных за год.
	SumCreditBodyForYear(ctx context.Context, year int) (float64, error)
	// SumPaymentsForYear — сумма типизированных платежей за год.
	SumPaymentsForYear(ctx context.Context, year int) (float64, error)
	// CountAndSumCreditsBetween — количество и сумма тел кредитов в диапазоне дат.
	CountAndSumCreditsBetween(ctx context.Context, from, to time.Time) (int, float64, error)
	// CountAndSumPaymentsBetween — количество и сумма платежей в диапазоне дат.
	CountAndSumPaymentsBetween(ctx context.Context, from, to time.Time) (int, float64, error)
	// SumPlansByCategoryPattern — сумма планов месяца по вхождению имени категории.
	SumPlansByCategoryPattern(ctx context.Context, year, month int, pattern string) (float64, error)
}

// Service реализует отчёты о выполнении планов.
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

// PlansPerformance возвращает выполнение каждого плана месяца отчётной даты.
// Для категории "видача" факт — сумма выданных кредитов от периода плана до
// отчётной даты включительно; для остальных категорий — сумма платежей с
// точно совпадающим именем типа. План с нулевой суммой даёт 0 процентов
// независимо от факта.
func (s *Service) PlansPerformance(ctx context.Context, targetDate time.Time) ([]models.PlanPerformanceItem, error) {
	plans, err := s.repo.ListPlansForMonth(ctx, targetDate.Year(), int(targetDate.Month()))
	if err != nil {
		return nil, err
	}

	result := make([]models.PlanPerformanceItem, 0, len(plans))
	for _, plan := range plans {
		var actualSum float64
		if strings.EqualFold(plan.CategoryName, categoryIssue) {
			actualSum, err = s.repo.SumCreditBodyBetween(ctx, plan.Period, targetDate)
		} else {
			actualSum, err = s.repo.SumPaymentsByTypeNameBetween(ctx, plan.CategoryName, plan.Period, targetDate)
		}
		if err != nil {
			return nil, err
		}

		var percent float64
		if plan.Sum > 0 {
			percent = actualSum / plan.Sum * 100
		}

		result = append(result, models.PlanPerformanceItem{
			Period:             plan.Period,
			CategoryName:       plan.CategoryName,
			PlannedSum:         plan.Sum,
			ActualSum:          actualSum,
			PerformancePercent: percent,
		})
	}

	s.log.Info("built plans performance report",
		slog.Time("target_date", targetDate), slog.Int("plans", len(result)))
	return result, nil
}

// YearPerformance возвращает ровно 12 записей, по одной на каждый месяц года.
// Годовые суммы выдач и сборов при нуле заменяются единицей, чтобы доли
// месяцев оставались определены; год без данных даёт 12 нулевых записей.
func (s *Service) YearPerformance(ctx context.Context, year int) ([]models.YearPerformanceItem, error) {
	totalIssueYear, err := s.repo.SumCreditBodyForYear(ctx, year)
	if err != nil {
		return nil, err
	}
	if totalIssueYear == 0 {
		totalIssueYear = 1
	}

	totalCollectYear, err := s.repo.SumPaymentsForYear(ctx, year)
	if err != nil {
		return nil, err
	}
	if totalCollectYear == 0 {
		totalCollectYear = 1
	}

	result := make([]models.YearPerformanceItem, 0, 12)
	for month := 1; month <= 12; month++ {
		periodStart, periodEnd := period.MonthBounds(year, month)

		creditsCount, actualIssueSum, err := s.repo.CountAndSumCreditsBetween(ctx, periodStart, periodEnd)
		if err != nil {
			return nil, err
		}

		planIssueSum, err := s.repo.SumPlansByCategoryPattern(ctx, year, month, categoryIssue)
		if err != nil {
			return nil, err
		}

		var issuePercent float64
		if planIssueSum != 0 {
			issuePercent = actualIssueSum / planIssueSum * 100
		}
		issueShare := actualIssueSum / totalIssueYear * 100

		paymentsCount, actualCollectSum, err := s.repo.CountAndSumPaymentsBetween(ctx, periodStart, periodEnd)
		if err != nil {
			return nil, err
		}

		planCollectSum, err := s.repo.SumPlansByCategoryPattern(ctx, year, month, categoryCollect)
		if err != nil {
			return nil, err
		}

		var collectPercent float64
		if planCollectSum != 0 {
			collectPercent = actualCollectSum / planCollectSum * 100
		}
		collectShare := actualCollectSum / totalCollectYear * 100

		result = append(result, models.YearPerformanceItem{
			Period:                    period.Label(month, year),
			CreditsCount:              creditsCount,
			PlanIssueSum:              planIssueSum,
			ActualIssueSum:            actualIssueSum,
			IssuePerformancePercent:   issuePercent,
			PaymentsCount:             paymentsCount,
			PlanCollectSum:            planCollectSum,
			ActualCollectSum:          actualCollectSum,
			CollectPerformancePercent: collectPercent,
			IssueSharePercent:         issueShare,
			CollectSharePercent:       collectShare,
		})
	}

	s.log.Info("built year performance report", slog.Int("year", year))
	return result, nil
}
