package models

import "time"

// Payment представляет платёж по кредиту. Тип платежа задаётся ссылкой
// на запись справочника; платежи с нераспознанным типом не учитываются
// ни в теле, ни в процентах, но входят в общую сумму.
type Payment struct {
	ID          int64     `json:"id"`
	CreditID    *int64    `json:"credit_id"` // nil, если кредит удалён
	TypeID      *int64    `json:"type_id"`
	Amount      float64   `json:"amount"`
	PaymentDate time.Time `json:"payment_date"`
}

// PaymentTotals — агрегат платежей одного кредита, разложенный по типам.
// Body и Percent считаются по регистронезависимому совпадению имени типа
// ("тіло" и "відсотки"), Total — по всем платежам без фильтра.
type PaymentTotals struct {
	Total   float64
	Body    float64
	Percent float64
}
