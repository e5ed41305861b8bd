// Package location реализует HTTP-обработчик обновления геопозиции пользователя.
//
// Handler извлекает идентификатор из URL-параметров, координаты из query-строки,
// вызывает бизнес-логику обновления и возвращает результат в JSON-формате.
package location

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/sadfav/user-identity-service/internal/http/response"
	"github.com/sadfav/user-identity-service/internal/lib/sl"
	"github.com/sadfav/user-identity-service/internal/models"
	"github.com/sadfav/user-identity-service/internal/storage/repository"
)

// Handler обрабатывает запросы на обновление геопозиции пользователя.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики обновления профиля
}

// Service описывает интерфейс бизнес-логики обновления профиля.
type Service interface {
	ApplyUpdate(ctx context.Context, userID int64, target models.UpdateTarget) error
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Обновить геопозицию пользователя
// @Description Устанавливает координаты пользователя из query-параметров latitude и longitude.
// @Tags Users
// @Produce  json
// @Param id path int true "Идентификатор пользователя"
// @Param latitude query number true "Широта"
// @Param longitude query number true "Долгота"
// @Success 200 {object} response.Response "Геопозиция обновлена"
// @Failure 400 {object} response.ErrorResponse "Некорректный идентификатор или координаты"
// @Failure 404 {object} response.ErrorResponse "Пользователь не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /user/{id}/location [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.location"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to decode id from url"))
		return
	}

	latitude, err := strconv.ParseFloat(r.URL.Query().Get("latitude"), 64)
	if err != nil {
		log.Error("failed to parse latitude", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("latitude must be a number"))
		return
	}
	longitude, err := strconv.ParseFloat(r.URL.Query().Get("longitude"), 64)
	if err != nil {
		log.Error("failed to parse longitude", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("longitude must be a number"))
		return
	}

	err = h.service.ApplyUpdate(r.Context(), id, models.LocationUpdate{
		Latitude:  latitude,
		Longitude: longitude,
	})
	if errors.Is(err, repository.ErrNotFound) {
		log.Info("user not found", slog.Int64("id", id))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("user not found"))
		return
	}
	if err != nil {
		log.Error("failed to update location", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not update location"))
		return
	}

	log.Info("success to update location", slog.Int64("id", id))
	render.JSON(w, r, response.OK())
}
