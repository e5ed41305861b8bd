package user

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sadfav/user-identity-service/internal/models"
	"github.com/sadfav/user-identity-service/internal/storage/repository"
)

// MockUserRepository реализует интерфейс user.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) ResolveUser(ctx context.Context, id models.UserID) (*models.SavedUser, error) {
	args := m.Called(ctx, id)
	if res := args.Get(0); res != nil {
		return res.(*models.SavedUser), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindMappedID(ctx context.Context, serviceID int32, externalID int64) (*int64, error) {
	args := m.Called(ctx, serviceID, externalID)
	if res := args.Get(0); res != nil {
		return res.(*int64), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) RegisterUser(ctx context.Context, user models.ExternalUser, serviceID int32, consent json.RawMessage) (int64, error) {
	args := m.Called(ctx, user, serviceID, consent)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) UpdateUserValue(ctx context.Context, userID int64, target models.UpdateTarget) error {
	args := m.Called(ctx, userID, target)
	return args.Error(0)
}

func (m *MockUserRepository) ActivatePremium(ctx context.Context, userID int64, variant models.PremiumVariant) (time.Time, error) {
	args := m.Called(ctx, userID, variant)
	return args.Get(0).(time.Time), args.Error(1)
}

var _ UserRepository = (*MockUserRepository)(nil)

// MockRegistry реализует интерфейс user.ServiceRegistry
type MockRegistry struct {
	mock.Mock
}

func (m *MockRegistry) ResolveOrCreate(ctx context.Context, service models.Service) (int32, error) {
	args := m.Called(ctx, service)
	return args.Get(0).(int32), args.Error(1)
}

var _ ServiceRegistry = (*MockRegistry)(nil)

// MockCache реализует интерфейс user.Cache
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string, result any) (bool, error) {
	args := m.Called(ctx, key, result)
	return args.Bool(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Invalidate(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

var _ Cache = (*MockCache)(nil)

// MockPublisher реализует интерфейс user.EventPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(routingKey string, message any) error {
	args := m.Called(routingKey, message)
	return args.Error(0)
}

var _ EventPublisher = (*MockPublisher)(nil)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestResolve_InternalIDCacheMiss(t *testing.T) {
	repo := new(MockUserRepository)
	cache := new(MockCache)
	saved := &models.SavedUser{ID: 1}

	cache.On("Get", mock.Anything, "user:1", mock.Anything).Return(false, nil).Once()
	repo.On("ResolveUser", mock.Anything, models.InternalID(1)).Return(saved, nil).Once()
	cache.On("Set", mock.Anything, "user:1", saved, profileCacheTTL).Return(nil).Once()

	service := New(repo, nil, cache, nil, testLogger())

	got, err := service.Resolve(context.Background(), models.InternalID(1))
	require.NoError(t, err)
	assert.Equal(t, saved, got)

	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestResolve_InternalIDCacheHit(t *testing.T) {
	repo := new(MockUserRepository)
	cache := new(MockCache)

	cache.On("Get", mock.Anything, "user:1", mock.Anything).
		Run(func(args mock.Arguments) {
			out := args.Get(2).(*models.SavedUser)
			out.ID = 1
		}).
		Return(true, nil).Once()

	service := New(repo, nil, cache, nil, testLogger())

	got, err := service.Resolve(context.Background(), models.InternalID(1))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(1), got.ID)

	// до хранилища запрос не дошёл
	repo.AssertNotCalled(t, "ResolveUser", mock.Anything, mock.Anything)
	cache.AssertExpectations(t)
}

func TestResolve_CacheErrorFallsThrough(t *testing.T) {
	repo := new(MockUserRepository)
	cache := new(MockCache)
	saved := &models.SavedUser{ID: 2}

	cache.On("Get", mock.Anything, "user:2", mock.Anything).Return(false, assert.AnError).Once()
	repo.On("ResolveUser", mock.Anything, models.InternalID(2)).Return(saved, nil).Once()
	cache.On("Set", mock.Anything, "user:2", saved, profileCacheTTL).Return(nil).Once()

	service := New(repo, nil, cache, nil, testLogger())

	got, err := service.Resolve(context.Background(), models.InternalID(2))
	require.NoError(t, err)
	assert.Equal(t, saved, got)

	repo.AssertExpectations(t)
}

func TestResolve_ExternalIDBypassesCache(t *testing.T) {
	repo := new(MockUserRepository)
	cache := new(MockCache)
	saved := &models.SavedUser{ID: 3}

	repo.On("ResolveUser", mock.Anything, models.ExternalID(99)).Return(saved, nil).Once()

	service := New(repo, nil, cache, nil, testLogger())

	got, err := service.Resolve(context.Background(), models.ExternalID(99))
	require.NoError(t, err)
	assert.Equal(t, saved, got)

	cache.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}

func TestResolve_AbsentUserIsNotCached(t *testing.T) {
	repo := new(MockUserRepository)
	cache := new(MockCache)

	cache.On("Get", mock.Anything, "user:404", mock.Anything).Return(false, nil).Once()
	repo.On("ResolveUser", mock.Anything, models.InternalID(404)).Return(nil, nil).Once()

	service := New(repo, nil, cache, nil, testLogger())

	got, err := service.Resolve(context.Background(), models.InternalID(404))
	require.NoError(t, err)
	assert.Nil(t, got)

	cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRegister_Created(t *testing.T) {
	repo := new(MockUserRepository)
	registry := new(MockRegistry)
	cache := new(MockCache)
	publisher := new(MockPublisher)

	extUser := models.ExternalUser{ExternalID: 777}
	service := models.Service{Name: "main-bot", Type: models.ServiceTypeTelegramBot}
	consent := json.RawMessage(`{"accepted":true}`)

	registry.On("ResolveOrCreate", mock.Anything, service).Return(int32(1), nil).Once()
	repo.On("FindMappedID", mock.Anything, int32(1), int64(777)).Return(nil, nil).Once()
	repo.On("RegisterUser", mock.Anything, extUser, int32(1), consent).Return(int64(42), nil).Once()
	publisher.On("Publish", "registered", mock.AnythingOfType("user.RegisteredEvent")).Return(nil).Once()

	svc := New(repo, registry, cache, publisher, testLogger())

	res, err := svc.Register(context.Background(), extUser, service, consent)
	require.NoError(t, err)
	assert.Equal(t, models.RegistrationCreated, res.Status)
	assert.Equal(t, int64(42), res.ID)

	repo.AssertExpectations(t)
	registry.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestRegister_AlreadyPresent(t *testing.T) {
	repo := new(MockUserRepository)
	registry := new(MockRegistry)
	publisher := new(MockPublisher)

	extUser := models.ExternalUser{ExternalID: 777}
	service := models.Service{Name: "main-bot", Type: models.ServiceTypeTelegramBot}
	existing := int64(42)

	registry.On("ResolveOrCreate", mock.Anything, service).Return(int32(1), nil).Once()
	repo.On("FindMappedID", mock.Anything, int32(1), int64(777)).Return(&existing, nil).Once()

	svc := New(repo, registry, new(MockCache), publisher, testLogger())

	res, err := svc.Register(context.Background(), extUser, service, nil)
	require.NoError(t, err)
	assert.Equal(t, models.RegistrationAlreadyPresent, res.Status)
	assert.Equal(t, int64(42), res.ID)

	// событие отправляется только при создании нового профиля
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "RegisterUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRegister_LostRaceReturnsAlreadyPresent(t *testing.T) {
	repo := new(MockUserRepository)
	registry := new(MockRegistry)

	extUser := models.ExternalUser{ExternalID: 777}
	service := models.Service{Name: "main-bot", Type: models.ServiceTypeTelegramBot}
	winner := int64(55)

	registry.On("ResolveOrCreate", mock.Anything, service).Return(int32(1), nil).Once()
	// первая проверка ещё не видит конкурента
	repo.On("FindMappedID", mock.Anything, int32(1), int64(777)).Return(nil, nil).Once()
	// вставка проигрывает гонку на уникальном ограничении
	repo.On("RegisterUser", mock.Anything, extUser, int32(1), mock.Anything).
		Return(int64(0), repository.ErrAlreadyMapped).Once()
	// повторное чтение возвращает id победителя
	repo.On("FindMappedID", mock.Anything, int32(1), int64(777)).Return(&winner, nil).Once()

	svc := New(repo, registry, new(MockCache), nil, testLogger())

	res, err := svc.Register(context.Background(), extUser, service, nil)
	require.NoError(t, err)
	assert.Equal(t, models.RegistrationAlreadyPresent, res.Status)
	assert.Equal(t, int64(55), res.ID)

	repo.AssertExpectations(t)
}

func TestRegister_RegistryError(t *testing.T) {
	registry := new(MockRegistry)
	service := models.Service{Name: "main-bot", Type: models.ServiceTypeTelegramBot}

	registry.On("ResolveOrCreate", mock.Anything, service).Return(int32(0), assert.AnError).Once()

	svc := New(new(MockUserRepository), registry, new(MockCache), nil, testLogger())

	_, err := svc.Register(context.Background(), models.ExternalUser{ExternalID: 1}, service, nil)
	assert.Error(t, err)
}

func TestRegister_PublishErrorDoesNotFail(t *testing.T) {
	repo := new(MockUserRepository)
	registry := new(MockRegistry)
	publisher := new(MockPublisher)

	extUser := models.ExternalUser{ExternalID: 10}
	service := models.Service{Name: "site", Type: models.ServiceTypeWebsite}

	registry.On("ResolveOrCreate", mock.Anything, service).Return(int32(2), nil).Once()
	repo.On("FindMappedID", mock.Anything, int32(2), int64(10)).Return(nil, nil).Once()
	repo.On("RegisterUser", mock.Anything, extUser, int32(2), mock.Anything).Return(int64(5), nil).Once()
	publisher.On("Publish", "registered", mock.Anything).Return(assert.AnError).Once()

	svc := New(repo, registry, new(MockCache), publisher, testLogger())

	res, err := svc.Register(context.Background(), extUser, service, nil)
	require.NoError(t, err)
	assert.Equal(t, models.RegistrationCreated, res.Status)
}

func TestApplyUpdate_InvalidatesCache(t *testing.T) {
	repo := new(MockUserRepository)
	cache := new(MockCache)
	target := models.LocationUpdate{Latitude: 55.75, Longitude: 37.61}

	repo.On("UpdateUserValue", mock.Anything, int64(1), target).Return(nil).Once()
	cache.On("Invalidate", mock.Anything, "user:1").Return(nil).Once()

	svc := New(repo, nil, cache, nil, testLogger())

	err := svc.ApplyUpdate(context.Background(), 1, target)
	require.NoError(t, err)

	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestApplyUpdate_ErrorSkipsInvalidation(t *testing.T) {
	repo := new(MockUserRepository)
	cache := new(MockCache)
	target := models.PremiumUpdate{Variant: models.PremiumMonth}

	repo.On("UpdateUserValue", mock.Anything, int64(1), target).Return(repository.ErrNotFound).Once()

	svc := New(repo, nil, cache, nil, testLogger())

	err := svc.ApplyUpdate(context.Background(), 1, target)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	cache.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
}

func TestActivatePremium_InvalidatesCache(t *testing.T) {
	repo := new(MockUserRepository)
	cache := new(MockCache)
	until := time.Now().AddDate(0, 1, 0)

	repo.On("ActivatePremium", mock.Anything, int64(1), models.PremiumMonth).Return(until, nil).Once()
	cache.On("Invalidate", mock.Anything, "user:1").Return(nil).Once()

	svc := New(repo, nil, cache, nil, testLogger())

	got, err := svc.ActivatePremium(context.Background(), 1, models.PremiumMonth)
	require.NoError(t, err)
	assert.Equal(t, until, got)

	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}
