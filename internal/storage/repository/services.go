package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/sadfav/user-identity-service/internal/models"
)

// CreateService вставляет новый сервис и возвращает его id.
// Пара (имя, тип) уникальна на уровне базы, поэтому две одновременные
// первые регистрации одного сервиса сходятся на одной строке:
// проигравшая вставка возвращает id уже существующей записи.
func (s *Storage) CreateService(ctx context.Context, serviceType models.ServiceType, name string) (int32, error) {
	const op = "storage.CreateService"

	var id int32
	query := `INSERT INTO services (type, name)
			  VALUES ($1::service_type, $2)
			  ON CONFLICT (name, type) DO UPDATE SET name = EXCLUDED.name
			  RETURNING id`
	if err := s.Pool.QueryRow(ctx, query, string(serviceType), name).Scan(&id); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

// FindServiceID возвращает id сервиса по паре (имя, тип)
// либо nil, если сервис ещё не создан.
func (s *Storage) FindServiceID(ctx context.Context, service models.Service) (*int32, error) {
	const op = "storage.FindServiceID"

	var id int32
	err := s.Pool.QueryRow(ctx,
		`SELECT id FROM services WHERE name = $1 AND type = $2::service_type`,
		service.Name, string(service.Type)).
		Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &id, nil
}
