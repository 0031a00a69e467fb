package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dmytro-Burdeniuk/credit-portfolio/internal/models"
)

// CreateUser вставляет нового пользователя и возвращает его ID.
// Логин уникален; нарушение уникальности приходит как ошибка хранилища.
func (s *Storage) CreateUser(ctx context.Context, user models.User) (int64, error) {
	const op = "storage.CreateUser"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO users (login, registration_date)
			  VALUES ($1, $2)
			  RETURNING id`
	var newID int64
	if err := s.DB.QueryRowContext(ctx, query, user.Login, user.RegistrationDate).Scan(&newID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// GetUserByLogin возвращает пользователя по логину или ErrNotFound.
func (s *Storage) GetUserByLogin(ctx context.Context, login string) (*models.User, error) {
	const op = "storage.GetUserByLogin"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, login, registration_date
			  FROM users
			  WHERE login = $1`
	row := s.DB.QueryRowContext(ctx, query, login)

	var result models.User
	if err := row.Scan(&result.ID, &result.Login, &result.RegistrationDate); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}
