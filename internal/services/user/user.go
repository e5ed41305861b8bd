// Package user содержит бизнес-логику работы с профилями пользователей.
// Это общий слой для REST и gRPC фронтендов: оба делегируют сюда,
// поэтому семантика операций у них совпадает по построению.
package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/sadfav/user-identity-service/internal/lib/sl"
	"github.com/sadfav/user-identity-service/internal/models"
	"github.com/sadfav/user-identity-service/internal/storage/repository"
)

// UserRepository определяет методы хранилища профилей.
type UserRepository interface {
	// ResolveUser возвращает профиль либо nil, если его нет.
	ResolveUser(ctx context.Context, id models.UserID) (*models.SavedUser, error)
	// FindMappedID возвращает внутренний id по паре (сервис, внешний id) либо nil.
	FindMappedID(ctx context.Context, serviceID int32, externalID int64) (*int64, error)
	// RegisterUser создаёт профиль, сопоставление и согласие одной транзакцией.
	RegisterUser(ctx context.Context, user models.ExternalUser, serviceID int32, consent json.RawMessage) (int64, error)
	// UpdateUserValue применяет обновление одного поля.
	UpdateUserValue(ctx context.Context, userID int64, target models.UpdateTarget) error
	// ActivatePremium продлевает премиум-доступ и возвращает новое окончание.
	ActivatePremium(ctx context.Context, userID int64, variant models.PremiumVariant) (time.Time, error)
}

// ServiceRegistry разрешает внешний сервис в его идентификатор.
type ServiceRegistry interface {
	ResolveOrCreate(ctx context.Context, service models.Service) (int32, error)
}

// Cache описывает методы кеширования профилей.
type Cache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Invalidate(ctx context.Context, key string) error
}

// EventPublisher публикует доменные события.
type EventPublisher interface {
	Publish(routingKey string, message any) error
}

// RegisteredEvent событие о регистрации нового пользователя.
type RegisteredEvent struct {
	EventID      string    `json:"event_id"`
	UserID       int64     `json:"user_id"`
	ServiceID    int32     `json:"service_id"`
	ExternalID   int64     `json:"external_id"`
	RegisteredAt time.Time `json:"registered_at"`
}

var registrationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "user_registrations_total",
	Help: "Registration outcomes by status.",
}, []string{"status"})

const profileCacheTTL = 5 * time.Minute

// Service реализует операции над профилями, включая кеширование и события.
type Service struct {
	repo     UserRepository
	registry ServiceRegistry
	cache    Cache
	events   EventPublisher
	log      *slog.Logger
}

// New создает новый экземпляр Service.
func New(repo UserRepository, registry ServiceRegistry, cache Cache, events EventPublisher, log *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		registry: registry,
		cache:    cache,
		events:   events,
		log:      log,
	}
}

func cacheKey(id int64) string { return fmt.Sprintf("user:%d", id) }

// Resolve возвращает каноничный профиль либо nil, если его нет.
// Поиск по внутреннему id идёт через кеш; по внешнему — всегда в базу,
// потому что ключ кеша построен на внутреннем id. Ошибка кеша не
// прерывает чтение: запрос уходит в хранилище.
func (s *Service) Resolve(ctx context.Context, id models.UserID) (*models.SavedUser, error) {
	if id.IsExternal() {
		return s.repo.ResolveUser(ctx, id)
	}

	var cached models.SavedUser
	found, err := s.cache.Get(ctx, cacheKey(id.Value()), &cached)
	if err != nil {
		s.log.Warn("profile cache lookup failed", sl.Err(err))
	}
	if err == nil && found {
		return &cached, nil
	}

	user, err := s.repo.ResolveUser(ctx, id)
	if err != nil || user == nil {
		return user, err
	}

	if err := s.cache.Set(ctx, cacheKey(user.ID), user, profileCacheTTL); err != nil {
		s.log.Warn("failed to cache profile", slog.Int64("id", user.ID), sl.Err(err))
	}
	return user, nil
}

// Register регистрирует внешнего пользователя: разрешает сервис,
// проверяет существующее сопоставление и лишь затем создаёт профиль.
// Предварительная проверка — оптимизация; решающей остаётся уникальность
// (service_id, external_id) в базе: проигранная гонка превращается
// в already_present с id записи конкурента. Повторов здесь нет —
// регистрация не идемпотентна, и тихий повтор создал бы дубликат.
func (s *Service) Register(ctx context.Context, user models.ExternalUser, service models.Service, consent json.RawMessage) (models.RegistrationResult, error) {
	serviceID, err := s.registry.ResolveOrCreate(ctx, service)
	if err != nil {
		registrationsTotal.WithLabelValues("error").Inc()
		return models.RegistrationResult{}, err
	}

	mapped, err := s.repo.FindMappedID(ctx, serviceID, user.ExternalID)
	if err != nil {
		registrationsTotal.WithLabelValues("error").Inc()
		return models.RegistrationResult{}, err
	}
	if mapped != nil {
		registrationsTotal.WithLabelValues(string(models.RegistrationAlreadyPresent)).Inc()
		return models.RegistrationResult{Status: models.RegistrationAlreadyPresent, ID: *mapped}, nil
	}

	id, err := s.repo.RegisterUser(ctx, user, serviceID, consent)
	if errors.Is(err, repository.ErrAlreadyMapped) {
		mapped, lookupErr := s.repo.FindMappedID(ctx, serviceID, user.ExternalID)
		if lookupErr == nil && mapped != nil {
			registrationsTotal.WithLabelValues(string(models.RegistrationAlreadyPresent)).Inc()
			return models.RegistrationResult{Status: models.RegistrationAlreadyPresent, ID: *mapped}, nil
		}
	}
	if err != nil {
		registrationsTotal.WithLabelValues("error").Inc()
		return models.RegistrationResult{}, err
	}

	s.log.Info("registered new user",
		slog.Int64("id", id),
		slog.Int64("external_id", user.ExternalID),
		slog.Int("service_id", int(serviceID)))
	registrationsTotal.WithLabelValues(string(models.RegistrationCreated)).Inc()
	s.publishRegistered(id, serviceID, user.ExternalID)

	return models.RegistrationResult{Status: models.RegistrationCreated, ID: id}, nil
}

// ApplyUpdate применяет обновление одного поля и инвалидирует кеш профиля.
func (s *Service) ApplyUpdate(ctx context.Context, userID int64, target models.UpdateTarget) error {
	if err := s.repo.UpdateUserValue(ctx, userID, target); err != nil {
		return err
	}
	s.invalidate(ctx, userID)
	return nil
}

// ActivatePremium продлевает премиум-доступ и возвращает новое окончание.
func (s *Service) ActivatePremium(ctx context.Context, userID int64, variant models.PremiumVariant) (time.Time, error) {
	until, err := s.repo.ActivatePremium(ctx, userID, variant)
	if err != nil {
		return time.Time{}, err
	}
	s.invalidate(ctx, userID)
	return until, nil
}

func (s *Service) invalidate(ctx context.Context, userID int64) {
	if err := s.cache.Invalidate(ctx, cacheKey(userID)); err != nil {
		s.log.Warn("failed to invalidate profile cache",
			slog.Int64("id", userID), sl.Err(err))
	}
}

// publishRegistered отправляет событие о регистрации. Публикация
// не влияет на результат регистрации: ошибка только логируется.
func (s *Service) publishRegistered(userID int64, serviceID int32, externalID int64) {
	if s.events == nil {
		return
	}
	event := RegisteredEvent{
		EventID:      uuid.NewString(),
		UserID:       userID,
		ServiceID:    serviceID,
		ExternalID:   externalID,
		RegisteredAt: time.Now().UTC(),
	}
	if err := s.events.Publish("registered", event); err != nil {
		s.log.Warn("failed to publish registration event", sl.Err(err))
	}
}
