// Package premium реализует HTTP-обработчик активации премиум-доступа.
//
// Handler извлекает идентификатор пользователя и вариант подписки из
// URL-параметров, вызывает бизнес-логику продления и возвращает новую
// дату окончания премиума в JSON-формате.
package premium

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/sadfav/user-identity-service/internal/http/response"
	"github.com/sadfav/user-identity-service/internal/lib/sl"
	"github.com/sadfav/user-identity-service/internal/models"
	"github.com/sadfav/user-identity-service/internal/storage/repository"
)

// Handler обрабатывает запросы на активацию премиум-доступа.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики премиум-доступа
}

// Service описывает интерфейс бизнес-логики премиум-доступа.
type Service interface {
	ActivatePremium(ctx context.Context, userID int64, variant models.PremiumVariant) (time.Time, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Активировать премиум-доступ
// @Description Продлевает премиум-доступ пользователя на срок выбранного варианта.
// @Tags Users
// @Produce  json
// @Param id path int true "Идентификатор пользователя"
// @Param variant path string true "Вариант подписки" Enums(month, quarter, half-year, year)
// @Success 200 {object} map[string]any "Новая дата окончания премиума"
// @Failure 400 {object} response.ErrorResponse "Некорректный идентификатор или вариант"
// @Failure 404 {object} response.ErrorResponse "Пользователь не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /user/{id}/premium/activate/{variant} [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.premium"
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

	variant, err := models.ParsePremiumVariant(chi.URLParam(r, "variant"))
	if err != nil {
		log.Error("failed to parse premium variant", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("unknown premium variant"))
		return
	}

	until, err := h.service.ActivatePremium(r.Context(), id, variant)
	if errors.Is(err, repository.ErrNotFound) {
		log.Info("user not found", slog.Int64("id", id))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("user not found"))
		return
	}
	if err != nil {
		log.Error("failed to activate premium", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not activate premium"))
		return
	}

	log.Info("success to activate premium",
		slog.Int64("id", id),
		slog.Time("active_until", until))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"active_until": until,
	}))
}
