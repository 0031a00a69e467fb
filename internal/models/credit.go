// Package models содержит доменные структуры кредитного портфеля:
// пользователей, кредиты, платежи, планы и общий справочник имён,
// а также схемы запросов и ответов для HTTP-слоя.
package models

import "time"

// Credit представляет выданный кредит.
// Открытость кредита выводится из ActualReturnDate: nil — кредит открыт,
// не nil — закрыт. Отчётный код не читает это поле напрямую, а использует State.
type Credit struct {
	ID               int64      `json:"id"`
	UserID           *int64     `json:"user_id"`       // nil, если пользователь удалён
	IssuanceDate     time.Time  `json:"issuance_date"` // Дата выдачи
	ReturnDate       time.Time  `json:"return_date"`   // Крайняя дата возврата
	ActualReturnDate *time.Time `json:"actual_return_date"`
	Body             float64    `json:"body"`    // Тело кредита
	Percent          float64    `json:"percent"` // Начисленные проценты
}

// CreditState — размеченное представление состояния кредита.
// Ровно одно из полей Open/Closed заполнено.
type CreditState struct {
	Open   *OpenCredit
	Closed *ClosedCredit
}

// OpenCredit — открытый кредит с крайней датой возврата.
type OpenCredit struct {
	ReturnDate time.Time
}

// ClosedCredit — закрытый кредит с датой фактического возврата.
type ClosedCredit struct {
	ActualReturnDate time.Time
}

// State возвращает размеченное состояние кредита, чтобы отчётный код
// не мог наблюдать недопустимую комбинацию полей.
func (c Credit) State() CreditState {
	if c.ActualReturnDate != nil {
		return CreditState{Closed: &ClosedCredit{ActualReturnDate: *c.ActualReturnDate}}
	}
	return CreditState{Open: &OpenCredit{ReturnDate: c.ReturnDate}}
}
