package location

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sadfav/user-identity-service/internal/models"
	"github.com/sadfav/user-identity-service/internal/storage/repository"
)

// MockService реализует интерфейс location.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) ApplyUpdate(ctx context.Context, userID int64, target models.UpdateTarget) error {
	args := m.Called(ctx, userID, target)
	return args.Error(0)
}

func TestLocationHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		idParam        string
		query          string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "успешное обновление координат",
			idParam: "1",
			query:   "latitude=55.75&longitude=37.61",
			setupMock: func(m *MockService) {
				m.On("ApplyUpdate", mock.Anything, int64(1),
					models.LocationUpdate{Latitude: 55.75, Longitude: 37.61}).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK"}`,
		},
		{
			name:           "некорректный id в URL",
			idParam:        "abc",
			query:          "latitude=55.75&longitude=37.61",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode id from url"}`,
		},
		{
			name:           "широта не число",
			idParam:        "1",
			query:          "latitude=north&longitude=37.61",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"latitude must be a number"}`,
		},
		{
			name:           "долгота отсутствует",
			idParam:        "1",
			query:          "latitude=55.75",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"longitude must be a number"}`,
		},
		{
			name:    "пользователь не найден",
			idParam: "404",
			query:   "latitude=55.75&longitude=37.61",
			setupMock: func(m *MockService) {
				m.On("ApplyUpdate", mock.Anything, int64(404), mock.Anything).
					Return(repository.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"user not found"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/user/"+tt.idParam+"/location?"+tt.query, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.idParam)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
