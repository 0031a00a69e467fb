package models

import "time"

// User представляет зарегистрированного клиента портфеля.
// Кредиты пользователя связаны с ним по UserID; при удалении пользователя
// связь в кредите обнуляется на уровне хранилища.
type User struct {
	ID               int64     `json:"id"`
	Login            string    `json:"login"`
	RegistrationDate time.Time `json:"registration_date"`
}
