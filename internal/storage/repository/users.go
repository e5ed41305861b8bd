package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/sadfav/user-identity-service/internal/models"
)

// userRow строка таблицы users в том виде, в каком её отдаёт база.
// Преобразование в models.SavedUser может не удаться: см. toSavedUser.
type userRow struct {
	ID           int64
	Name         *string
	LanguageCode *string
	Location     []float64
	PremiumUntil *time.Time
}

// toSavedUser преобразует строку базы в каноничный профиль.
// Код языка и координаты — два независимых преобразования; ошибка любого
// из них прерывает чтение целиком и возвращает *ConversionError
// с именем испорченного поля.
func (r userRow) toSavedUser() (*models.SavedUser, error) {
	user := &models.SavedUser{
		ID:           r.ID,
		Name:         r.Name,
		PremiumUntil: r.PremiumUntil,
	}
	if r.LanguageCode != nil {
		code, err := models.ParseCode(*r.LanguageCode)
		if err != nil {
			return nil, &ConversionError{Field: "language_code", Err: err}
		}
		user.LanguageCode = &code
	}
	if r.Location != nil {
		location, err := models.LocationFromFloats(r.Location)
		if err != nil {
			return nil, &ConversionError{Field: "location", Err: err}
		}
		user.Location = &location
	}
	return user, nil
}

// ResolveUser возвращает профиль по внутреннему либо внешнему идентификатору.
// Отсутствие строки не является ошибкой: возвращается (nil, nil).
//
// Поиск по внешнему идентификатору не различает сервисы: предполагается,
// что внешние идентификаторы не пересекаются между сервисами.
func (s *Storage) ResolveUser(ctx context.Context, id models.UserID) (*models.SavedUser, error) {
	const op = "storage.ResolveUser"

	var row userRow
	var err error
	if id.IsExternal() {
		err = s.Pool.QueryRow(ctx,
			`SELECT u.id, u.name, u.language_code, u.location, u.premium_until
			 FROM users u
			 JOIN user_service_mappings usm ON u.id = usm.user_id
			 WHERE usm.external_id = $1`, id.Value()).
			Scan(&row.ID, &row.Name, &row.LanguageCode, &row.Location, &row.PremiumUntil)
	} else {
		err = s.Pool.QueryRow(ctx,
			`SELECT id, name, language_code, location, premium_until
			 FROM users
			 WHERE id = $1`, id.Value()).
			Scan(&row.ID, &row.Name, &row.LanguageCode, &row.Location, &row.PremiumUntil)
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return row.toSavedUser()
}

// FindMappedID возвращает внутренний id, сопоставленный паре
// (сервис, внешний id), либо nil, если сопоставления нет.
func (s *Storage) FindMappedID(ctx context.Context, serviceID int32, externalID int64) (*int64, error) {
	const op = "storage.FindMappedID"

	var userID int64
	err := s.Pool.QueryRow(ctx,
		`SELECT user_id FROM user_service_mappings
		 WHERE service_id = $1 AND external_id = $2`, serviceID, externalID).
		Scan(&userID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &userID, nil
}

// RegisterUser создаёт новый профиль и его сопоставление с внешним сервисом
// одной транзакцией; согласие, если оно передано, сохраняется в той же
// транзакции. При нарушении уникальности (service_id, external_id)
// возвращает ErrAlreadyMapped; частичное состояние не остаётся.
func (s *Storage) RegisterUser(ctx context.Context, user models.ExternalUser, serviceID int32, consent json.RawMessage) (int64, error) {
	const op = "storage.RegisterUser"

	tx, err := s.Pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	var userID int64
	if err = tx.QueryRow(ctx,
		`INSERT INTO users (name) VALUES ($1) RETURNING id`, user.Name).
		Scan(&userID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if _, err = tx.Exec(ctx,
		`INSERT INTO user_service_mappings (user_id, service_id, external_id)
		 VALUES ($1, $2, $3)`, userID, serviceID, user.ExternalID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return 0, fmt.Errorf("%s: %w", op, ErrAlreadyMapped)
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if consent != nil {
		if _, err = tx.Exec(ctx,
			`INSERT INTO consents (user_id, service_id, info)
			 VALUES ($1, $2, $3)`, userID, serviceID, consent); err != nil {
			return 0, fmt.Errorf("%s: %w", op, err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return userID, nil
}

// UpdateUserValue применяет обновление одного поля профиля.
// Язык и координаты записываются напрямую; премиум идёт через
// ActivatePremium, потому что это не перезапись, а продление.
// Ноль затронутых строк означает отсутствие профиля: ErrNotFound.
func (s *Storage) UpdateUserValue(ctx context.Context, userID int64, target models.UpdateTarget) error {
	const op = "storage.UpdateUserValue"

	var tag pgconn.CommandTag
	var err error
	switch t := target.(type) {
	case models.LanguageUpdate:
		tag, err = s.Pool.Exec(ctx,
			`UPDATE users SET language_code = $2 WHERE id = $1`, userID, t.Code.String())
	case models.LocationUpdate:
		tag, err = s.Pool.Exec(ctx,
			`UPDATE users SET location = ARRAY[$2::float8, $3::float8] WHERE id = $1`,
			userID, t.Latitude, t.Longitude)
	case models.PremiumUpdate:
		_, err = s.ActivatePremium(ctx, userID, t.Variant)
		return err
	default:
		// Сюда можно попасть только при добавлении нового варианта
		// UpdateTarget без обработки здесь.
		return fmt.Errorf("%s: unsupported update target %T", op, target)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}

// ActivatePremium продлевает премиум-доступ на срок варианта.
// База отсчёта — max(сейчас, текущее окончание): активное продление
// прибавляется к остатку, истёкшее начинается от текущего момента;
// окончание никогда не сдвигается назад. Чтение и запись идут одной
// транзакцией с блокировкой строки, чтобы одновременные продления
// не теряли обновлений.
func (s *Storage) ActivatePremium(ctx context.Context, userID int64, variant models.PremiumVariant) (time.Time, error) {
	const op = "storage.ActivatePremium"

	tx, err := s.Pool.Begin(ctx)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	var current *time.Time
	err = tx.QueryRow(ctx,
		`SELECT premium_until FROM users WHERE id = $1 FOR UPDATE`, userID).
		Scan(&current)
	if errors.Is(err, pgx.ErrNoRows) {
		return time.Time{}, fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", op, err)
	}

	base := time.Now()
	if current != nil && current.After(base) {
		base = *current
	}
	until := variant.AddTo(base)

	if _, err = tx.Exec(ctx,
		`UPDATE users SET premium_until = $2 WHERE id = $1`, userID, until); err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", op, err)
	}
	if err = tx.Commit(ctx); err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", op, err)
	}
	return until, nil
}
