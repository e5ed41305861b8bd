// Package register реализует HTTP-обработчик регистрации внешнего пользователя.
//
// Handler принимает JSON-запрос с данными пользователя, источника и согласия,
// валидирует их, вызывает бизнес-логику регистрации и возвращает результат
// со статусом и внутренним идентификатором в JSON-формате.
//
// В случае ошибок формируются соответствующие HTTP-ответы с описанием проблемы.
package register

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/sadfav/user-identity-service/internal/http/response"
	"github.com/sadfav/user-identity-service/internal/lib/sl"
	"github.com/sadfav/user-identity-service/internal/models"
)

// Handler управляет HTTP-запросами на регистрацию пользователей.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики регистрации
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики регистрации.
type Service interface {
	Register(ctx context.Context, user models.ExternalUser, service models.Service, consent json.RawMessage) (models.RegistrationResult, error)
}

// Request структура тела запроса регистрации.
type Request struct {
	User        models.ExternalUser `json:"user" validate:"required"`
	Service     models.Service      `json:"service" validate:"required"`
	ConsentInfo json.RawMessage     `json:"consent_info,omitempty"`
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Зарегистрировать пользователя
// @Description Создает профиль для внешнего пользователя либо возвращает уже существующий.
// @Tags Users
// @Accept  json
// @Produce  json
// @Param request body register.Request true "Данные регистрации"
// @Success 200 {object} map[string]any "Пользователь уже зарегистрирован"
// @Success 201 {object} map[string]any "Пользователь создан"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или тип сервиса"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при регистрации"
// @Router /user/external [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.register"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.Int64("external_id", req.User.ExternalID))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	if _, err := models.ParseServiceType(string(req.Service.Type)); err != nil {
		log.Error("unknown service type", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("unknown service type"))
		return
	}
	log.Info("all fields are validated")

	res, err := h.service.Register(r.Context(), req.User, req.Service, req.ConsentInfo)
	if err != nil {
		log.Error("failed to register user", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not register user"))
		return
	}

	log.Info("success to register user",
		slog.Int64("id", res.ID),
		slog.String("status", string(res.Status)))
	if res.Status == models.RegistrationCreated {
		w.WriteHeader(http.StatusCreated)
	}
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"status": res.Status,
		"id":     res.ID,
	}))
}
