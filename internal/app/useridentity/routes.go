// Package useridentity предоставляет маршруты для основного приложения.
package useridentity

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sadfav/user-identity-service/internal/http/handlers/user/get"
	"github.com/sadfav/user-identity-service/internal/http/handlers/user/language"
	"github.com/sadfav/user-identity-service/internal/http/handlers/user/location"
	"github.com/sadfav/user-identity-service/internal/http/handlers/user/premium"
	"github.com/sadfav/user-identity-service/internal/http/handlers/user/register"
	"github.com/sadfav/user-identity-service/internal/http/middlewarectx"
	userservice "github.com/sadfav/user-identity-service/internal/services/user"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, userService *userservice.Service) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middlewarectx.RateLimitMiddleware(logger))
		r.Get("/user/{id}", get.New(logger, userService).ServeHTTP)
		r.Get("/user/external/{external_id}", get.NewByExternalID(logger, userService).ServeHTTP)
		r.Put("/user/external", register.New(logger, userService).ServeHTTP)
		r.Post("/user/{id}/language/{code}", language.New(logger, userService).ServeHTTP)
		r.Post("/user/{id}/location", location.New(logger, userService).ServeHTTP)
		r.Post("/user/{id}/premium/activate/{variant}", premium.New(logger, userService).ServeHTTP)
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
