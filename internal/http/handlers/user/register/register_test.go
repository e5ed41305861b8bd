package register

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sadfav/user-identity-service/internal/models"
)

// MockService реализует интерфейс register.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Register(ctx context.Context, user models.ExternalUser, service models.Service, consent json.RawMessage) (models.RegistrationResult, error) {
	args := m.Called(ctx, user, service, consent)
	return args.Get(0).(models.RegistrationResult), args.Error(1)
}

func TestRegisterHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешная регистрация нового пользователя",
			body: `{"user":{"external_id":777,"name":"alice"},"service":{"name":"main-bot","type":"telegram-bot"},"consent_info":{"accepted":true}}`,
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return(models.RegistrationResult{Status: models.RegistrationCreated, ID: 42}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"status":"created"`,
		},
		{
			name: "пользователь уже зарегистрирован",
			body: `{"user":{"external_id":777},"service":{"name":"main-bot","type":"telegram-bot"}}`,
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return(models.RegistrationResult{Status: models.RegistrationAlreadyPresent, ID: 42}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"status":"already_present"`,
		},
		{
			name:           "некорректный JSON",
			body:           `{"user":`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid request body"}`,
		},
		{
			name:           "отсутствует external_id",
			body:           `{"user":{"name":"alice"},"service":{"name":"main-bot","type":"telegram-bot"}}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `"status":"Error"`,
		},
		{
			name:           "неизвестный тип сервиса",
			body:           `{"user":{"external_id":777},"service":{"name":"main-bot","type":"mobile"}}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"unknown service type"}`,
		},
		{
			name: "ошибка сервиса регистрации",
			body: `{"user":{"external_id":777},"service":{"name":"main-bot","type":"telegram-bot"}}`,
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return(models.RegistrationResult{}, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"could not register user"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPut, "/user/external", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}

func TestRegisterHandlerPassesConsent(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	mockService := new(MockService)
	mockService.On("Register", mock.Anything,
		mock.MatchedBy(func(u models.ExternalUser) bool { return u.ExternalID == 777 }),
		models.Service{Name: "main-bot", Type: models.ServiceTypeTelegramBot},
		mock.MatchedBy(func(c json.RawMessage) bool {
			return strings.Contains(string(c), `"accepted":true`)
		})).
		Return(models.RegistrationResult{Status: models.RegistrationCreated, ID: 1}, nil)

	handler := New(logger, mockService)

	body := `{"user":{"external_id":777},"service":{"name":"main-bot","type":"telegram-bot"},"consent_info":{"accepted":true}}`
	req := httptest.NewRequest(http.MethodPut, "/user/external", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockService.AssertExpectations(t)
}
