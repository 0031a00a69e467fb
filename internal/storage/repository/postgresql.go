// Package repository реализует хранилище данных на основе PostgreSQL
// для кредитного портфеля: пользователей, кредитов, платежей, планов и
// общего справочника имён. Предоставляет методы чтения, вставки и
// агрегирования записей для отчётов и импорта планов.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// ErrNotFound возвращается методами поиска, когда запись отсутствует.
// Отчётная логика трактует его как пустой результат, а не как сбой.
var ErrNotFound = errors.New("not found")

// Storage инкапсулирует соединение с базой данных PostgreSQL
// и реализует методы работы с сущностями портфеля.
type Storage struct {
	DB *sql.DB
}

// New создаёт подключение к PostgreSQL и проверяет его доступность.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}

// CheckDatabaseReady проверяет готовность базы данных.
func CheckDatabaseReady(storage *Storage) error {
	var exists bool
	err := storage.DB.QueryRow(`SELECT EXISTS (
        SELECT FROM information_schema.tables
        WHERE table_name = 'credits'
    )`).Scan(&exists)
	if err != nil || !exists {
		return fmt.Errorf("required table credits missing or query error: %w", err)
	}
	return nil
}
