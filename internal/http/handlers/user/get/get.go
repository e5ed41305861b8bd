// Package get реализует HTTP-обработчик для получения профиля пользователя.
//
// Handler извлекает идентификатор из URL-параметров, вызывает бизнес-логику
// разрешения профиля и возвращает его публичное представление в JSON-формате.
// Поддерживаются оба вида идентификаторов: внутренний и внешний.
//
// В случае ошибок формирует соответствующие HTTP-ответы с описанием проблемы.
package get

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/sadfav/user-identity-service/internal/http/response"
	"github.com/sadfav/user-identity-service/internal/lib/sl"
	"github.com/sadfav/user-identity-service/internal/models"
)

// Handler обрабатывает запросы на получение профиля по идентификатору.
type Handler struct {
	log        *slog.Logger // Логгер для записи информации и ошибок
	service    Service      // Сервис бизнес-логики для разрешения профиля
	byExternal bool         // Интерпретировать идентификатор как внешний
}

// Service описывает интерфейс бизнес-логики разрешения профиля.
type Service interface {
	Resolve(ctx context.Context, id models.UserID) (*models.SavedUser, error)
}

// New создает Handler, разрешающий профиль по внутреннему идентификатору.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// NewByExternalID создает Handler, разрешающий профиль по внешнему идентификатору.
func NewByExternalID(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:        log,
		service:    service,
		byExternal: true,
	}
}

// ServeHTTP godoc
// @Summary Получить профиль пользователя
// @Description Возвращает профиль пользователя по внутреннему или внешнему идентификатору.
// @Tags Users
// @Produce  json
// @Param id path int true "Идентификатор пользователя"
// @Success 200 {object} map[string]any "Профиль пользователя"
// @Failure 400 {object} response.ErrorResponse "Некорректный идентификатор"
// @Failure 404 {object} response.ErrorResponse "Пользователь не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /user/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.get"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	param := "id"
	if h.byExternal {
		param = "external_id"
	}

	raw, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to decode id from url"))
		return
	}

	id := models.InternalID(raw)
	if h.byExternal {
		id = models.ExternalID(raw)
	}

	user, err := h.service.Resolve(r.Context(), id)
	if err != nil {
		log.Error("failed to resolve user", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not resolve user"))
		return
	}
	if user == nil {
		log.Info("user not found", slog.Int64("id", raw))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("user not found"))
		return
	}

	log.Info("success to resolve user", slog.Int64("id", user.ID))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"user": user.View(),
	}))
}
