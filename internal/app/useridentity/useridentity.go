// Package useridentity собирает приложение сервиса идентификации:
// хранилище, кеш, брокер событий, бизнес-логику и оба фронтенда.
package useridentity

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/streadway/amqp"
	"google.golang.org/grpc"

	"github.com/sadfav/user-identity-service/internal/cache"
	"github.com/sadfav/user-identity-service/internal/config"
	userpb "github.com/sadfav/user-identity-service/internal/grpc/gen"
	"github.com/sadfav/user-identity-service/internal/grpc/server"
	"github.com/sadfav/user-identity-service/internal/migrations"
	"github.com/sadfav/user-identity-service/internal/rabbitmq"
	"github.com/sadfav/user-identity-service/internal/services/registry"
	userservice "github.com/sadfav/user-identity-service/internal/services/user"
	"github.com/sadfav/user-identity-service/internal/storage/repository"
)

// App агрегирует серверы и соединения приложения.
type App struct {
	httpServer *http.Server
	grpcServer *grpc.Server
	grpcAddr   string
	logger     *slog.Logger
	db         *repository.Storage
	cache      *cache.Cache
	amqpConn   *amqp.Connection
}

// New инициализирует зависимости приложения и собирает серверы.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(ctx, cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(cfg.StorageConnectionString, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	var amqpConn *amqp.Connection
	var publisher userservice.EventPublisher
	if cfg.AddressRabbitMQ != "" {
		amqpConn, err = rabbitmq.Connect(cfg.AddressRabbitMQ, cfg.ConnectRetries, cfg.ConnectDelay)
		if err != nil {
			return nil, err
		}
		ch, err := rabbitmq.SetupChannel(amqpConn, rabbitmq.UserQueues())
		if err != nil {
			return nil, err
		}
		publisher = rabbitmq.NewPublisher(ch)
	} else {
		logger.Info("rabbitmq address is not set, registration events are disabled")
	}

	serviceRegistry := registry.New(db, logger)
	userService := userservice.New(db, serviceRegistry, cacheRedis, publisher, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, userService)

	httpSrv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	grpcSrv := grpc.NewServer()
	userpb.RegisterUserServiceServer(grpcSrv, server.NewUserServer(userService, logger))

	return &App{
		httpServer: httpSrv,
		grpcServer: grpcSrv,
		grpcAddr:   cfg.AddressGRPC,
		logger:     logger,
		db:         db,
		cache:      cacheRedis,
		amqpConn:   amqpConn,
	}, nil
}

// Run запускает оба сервера и блокируется до остановки контекста
// либо первой фатальной ошибки любого из серверов.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 2)

	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.httpServer.Addr))
		err := a.httpServer.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	go func() {
		a.logger.Info("gRPC server starting on", slog.String("address", a.grpcAddr))
		lis, err := net.Listen("tcp", a.grpcAddr)
		if err != nil {
			errCh <- err
			return
		}
		errCh <- a.grpcServer.Serve(lis)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down servers gracefully")
		err := a.httpServer.Shutdown(timeoutCtx)
		a.grpcServer.GracefulStop()
		if a.amqpConn != nil {
			_ = a.amqpConn.Close()
		}
		a.db.Close()
		return err
	}
}
