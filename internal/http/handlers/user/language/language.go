// Package language реализует HTTP-обработчик смены языка пользователя.
//
// Handler извлекает идентификатор пользователя и код языка из URL-параметров,
// вызывает бизнес-логику обновления и возвращает результат в JSON-формате.
package language

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

// Handler обрабатывает запросы на смену языка пользователя.
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
// @Summary Сменить язык пользователя
// @Description Устанавливает двухбуквенный код языка для пользователя.
// @Tags Users
// @Produce  json
// @Param id path int true "Идентификатор пользователя"
// @Param code path string true "Двухбуквенный код языка"
// @Success 200 {object} response.Response "Язык обновлен"
// @Failure 400 {object} response.ErrorResponse "Некорректный идентификатор или код"
// @Failure 404 {object} response.ErrorResponse "Пользователь не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /user/{id}/language/{code} [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.language"
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

	code, err := models.ParseCode(chi.URLParam(r, "code"))
	if err != nil {
		log.Error("failed to parse language code", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("language code must be two letters"))
		return
	}

	err = h.service.ApplyUpdate(r.Context(), id, models.LanguageUpdate{Code: code})
	if errors.Is(err, repository.ErrNotFound) {
		log.Info("user not found", slog.Int64("id", id))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("user not found"))
		return
	}
	if err != nil {
		log.Error("failed to update language", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not update language"))
		return
	}

	log.Info("success to update language", slog.Int64("id", id), slog.String("code", code.String()))
	render.JSON(w, r, response.OK())
}
