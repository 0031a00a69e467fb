package models

import "time"

// UserCreditReport — один кредит в отчёте по пользователю.
// Реализации: UserCreditOpen и UserCreditClosed; форма записи зависит
// от состояния кредита.
type UserCreditReport interface {
	isUserCreditReport()
}

// UserCreditClosed — запись отчёта по закрытому кредиту.
type UserCreditClosed struct {
	IssuanceDate     time.Time `json:"issuance_date"`
	IsClosed         bool      `json:"is_closed"`
	Body             float64   `json:"body"`
	Percent          float64   `json:"percent"`
	ActualReturnDate time.Time `json:"actual_return_date"`
	TotalPaymentsSum float64   `json:"total_payments_sum"`
}

// UserCreditOpen — запись отчёта по открытому кредиту.
type UserCreditOpen struct {
	IssuanceDate       time.Time `json:"issuance_date"`
	IsClosed           bool      `json:"is_closed"`
	Body               float64   `json:"body"`
	Percent            float64   `json:"percent"`
	ReturnDate         time.Time `json:"return_date"`
	OverdueDays        int       `json:"overdue_days"`
	BodyPaymentsSum    float64   `json:"body_payments_sum"`
	PercentPaymentsSum float64   `json:"percent_payments_sum"`
}

func (UserCreditClosed) isUserCreditReport() {}
func (UserCreditOpen) isUserCreditReport()   {}

// PlanPerformanceItem — выполнение одного плана на отчётную дату.
type PlanPerformanceItem struct {
	Period             time.Time `json:"period"`
	CategoryName       string    `json:"category_name"`
	PlannedSum         float64   `json:"planned_sum"`
	ActualSum          float64   `json:"actual_sum"`
	PerformancePercent float64   `json:"performance_percent"`
}

// YearPerformanceItem — один месяц годового отчёта.
// Period имеет формат "MM.YYYY".
type YearPerformanceItem struct {
	Period string `json:"period"`

	CreditsCount            int     `json:"credits_count"`
	PlanIssueSum            float64 `json:"plan_issue_sum"`
	ActualIssueSum          float64 `json:"actual_issue_sum"`
	IssuePerformancePercent float64 `json:"issue_performance_percent"`

	PaymentsCount             int     `json:"payments_count"`
	PlanCollectSum            float64 `json:"plan_collect_sum"`
	ActualCollectSum          float64 `json:"actual_collect_sum"`
	CollectPerformancePercent float64 `json:"collect_performance_percent"`

	IssueSharePercent   float64 `json:"issue_share_percent"`
	CollectSharePercent float64 `json:"collect_share_percent"`
}
