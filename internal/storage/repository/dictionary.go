package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dmytro-Burdeniuk/credit-portfolio/internal/models"
)

// GetCategoryByName возвращает запись справочника с ролью категории плана
// по точному совпадению имени. Если записи нет — ErrNotFound.
func (s *Storage) GetCategoryByName(ctx context.Context, name string) (*models.DictionaryEntry, error) {
	const op = "storage.GetCategoryByName"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, role
			  FROM dictionary
			  WHERE name = $1 AND role = $2`
	row := s.DB.QueryRowContext(ctx, query, name, models.RoleCategory)

	var result models.DictionaryEntry
	if err := row.Scan(&result.ID, &result.Name, &result.Role); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// CreateDictionaryEntry вставляет запись справочника и возвращает её ID.
func (s *Storage) CreateDictionaryEntry(ctx context.Context, entry models.DictionaryEntry) (int64, error) {
	const op = "storage.CreateDictionaryEntry"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO dictionary (name, role)
			  VALUES ($1, $2)
			  RETURNING id`
	var newID int64
	if err := s.DB.QueryRowContext(ctx, query, entry.Name, entry.Role).Scan(&newID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}
