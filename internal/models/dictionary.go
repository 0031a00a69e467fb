package models

// DictionaryRole определяет роль записи справочника: категория плана
// или тип платежа. Роль хранится явно, чтобы не выводить её из имени.
type DictionaryRole string

const (
	// RoleCategory — запись используется как категория плана ("Видача", "Збір").
	RoleCategory DictionaryRole = "category"
	// RolePaymentType — запись используется как тип платежа ("тіло", "відсотки").
	RolePaymentType DictionaryRole = "payment_type"
)

// DictionaryEntry представляет запись общего справочника имён.
// Имя уникально; сопоставление по имени в отчётах остаётся
// регистронезависимым для совместимости с существующими данными.
type DictionaryEntry struct {
	ID   int64          `json:"id"`
	Name string         `json:"name"`
	Role DictionaryRole `json:"role"`
}
