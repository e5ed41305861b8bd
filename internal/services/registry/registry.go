// Package registry разрешает внешний сервис (имя + тип) в его
// долговременный числовой идентификатор, создавая запись при первом
// обращении. Держит локальный кеш идентификаторов: сервисы никогда
// не переименовываются и не меняют тип, поэтому вытеснение не нужно.
package registry

import (
	"context"
	"log/slog"
	"sync"

	"github.com/sadfav/user-identity-service/internal/models"
)

// ServiceRepository определяет методы хранилища для работы с сервисами.
type ServiceRepository interface {
	// FindServiceID возвращает id по паре (имя, тип) либо nil.
	FindServiceID(ctx context.Context, service models.Service) (*int32, error)
	// CreateService создаёт сервис и возвращает его id.
	CreateService(ctx context.Context, serviceType models.ServiceType, name string) (int32, error)
}

type serviceKey struct {
	name string
	kind models.ServiceType
}

// Registry реализует cache-aside разрешение идентификаторов сервисов.
type Registry struct {
	repo ServiceRepository
	log  *slog.Logger

	mu      sync.RWMutex
	idCache map[serviceKey]int32
}

// New создаёт Registry с пустым кешем.
func New(repo ServiceRepository, log *slog.Logger) *Registry {
	return &Registry{
		repo:    repo,
		log:     log,
		idCache: make(map[serviceKey]int32),
	}
}

// ResolveID возвращает id сервиса либо nil, если сервис ещё не создан.
// Сначала проверяется кеш, при промахе — хранилище; найденное значение
// кладётся в кеш. Блокировка покрывает только доступ к map и никогда
// не держится на время запроса к базе.
func (r *Registry) ResolveID(ctx context.Context, service models.Service) (*int32, error) {
	key := serviceKey{name: service.Name, kind: service.Type}

	r.mu.RLock()
	id, ok := r.idCache[key]
	r.mu.RUnlock()
	if ok {
		return &id, nil
	}

	r.log.Debug("service id cache miss",
		slog.String("name", service.Name), slog.String("type", string(service.Type)))

	fetched, err := r.repo.FindServiceID(ctx, service)
	if err != nil {
		return nil, err
	}
	if fetched == nil {
		return nil, nil
	}

	r.mu.Lock()
	r.idCache[key] = *fetched
	r.mu.Unlock()
	return fetched, nil
}

// Create создаёт сервис в хранилище. Кеш не заполняется: это сделает
// следующий ResolveID. Вызывается только после промаха ResolveID;
// гонку двух одновременных созданий разрешает уникальное ограничение
// (имя, тип) на уровне базы.
func (r *Registry) Create(ctx context.Context, serviceType models.ServiceType, name string) (int32, error) {
	r.log.Info("creating service",
		slog.String("name", name), slog.String("type", string(serviceType)))
	return r.repo.CreateService(ctx, serviceType, name)
}

// ResolveOrCreate возвращает id сервиса, создавая запись при первом
// обращении. Именно эту композицию используют оба фронтенда.
func (r *Registry) ResolveOrCreate(ctx context.Context, service models.Service) (int32, error) {
	id, err := r.ResolveID(ctx, service)
	if err != nil {
		return 0, err
	}
	if id != nil {
		return *id, nil
	}
	return r.Create(ctx, service.Type, service.Name)
}
