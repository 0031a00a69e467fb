package models

import "time"

// Plan представляет плановую сумму категории на месяц.
// Period хранится конкретной датой, по соглашению — первым числом месяца.
type Plan struct {
	ID         int64     `json:"id"`
	Period     time.Time `json:"period"`
	Sum        float64   `json:"sum"`
	CategoryID int64     `json:"category_id"`
}

// PlanWithCategory — план вместе с именем категории из справочника,
// как его читают отчёты.
type PlanWithCategory struct {
	ID           int64
	Period       time.Time
	Sum          float64
	CategoryID   int64
	CategoryName string
}

// DummyPlanRow используется для приёма одной строки импорта планов из
// JSON-запроса, прежде чем конвертировать её в Plan. Дата приходит строкой;
// тег date — собственная проверка формата 2006-01-02, её регистрирует
// обработчик импорта.
type DummyPlanRow struct {
	Period       string  `json:"period" validate:"required,date"`   // Месяц плана (1 число месяца)
	CategoryName string  `json:"category_name" validate:"required"` // Название категории (видача / збір)
	Sum          float64 `json:"sum" validate:"gte=0"`              // Сумма плана (0 допустимо)
}

// DummyPlanImport — тело запроса импорта планов.
type DummyPlanImport struct {
	Rows []DummyPlanRow `json:"rows" validate:"required,dive"`
}

// PlanImportResult — итог импорта планов.
// Skipped всегда не nil, чтобы в JSON сериализовался пустой список.
type PlanImportResult struct {
	InsertedCount int      `json:"inserted_count"`
	Skipped       []string `json:"skipped"`
	Message       string   `json:"message"`
}
