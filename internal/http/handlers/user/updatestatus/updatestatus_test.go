package updatestatus

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/magabrotheeeer/gym-manager/internal/models"
	userservice "github.com/magabrotheeeer/gym-manager/internal/services/user"
)

// MockService реализует интерфейс updatestatus.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func TestUpdateStatusHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	userID := primitive.NewObjectID()

	tests := []struct {
		name           string
		url            string
		requestBody    interface{}
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "одобрение пользователя со статусом Pending",
			url:         "/user/" + userID.Hex(),
			requestBody: models.DummyStatusUpdate{Status: "Accepted", Role: "Trainer"},
			setupMock: func(m *MockService) {
				m.On("UpdateStatus", mock.Anything, userID, "Accepted").Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"message":"Status updated successfully"`,
		},
		{
			name:        "возврат в Pending",
			url:         "/user/" + userID.Hex(),
			requestBody: models.DummyStatusUpdate{Status: "Pending"},
			setupMock: func(m *MockService) {
				m.On("UpdateStatus", mock.Anything, userID, "Pending").Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"message":"Status updated successfully"`,
		},
		{
			name:        "повторное одобрение отвечает 404",
			url:         "/user/" + userID.Hex(),
			requestBody: models.DummyStatusUpdate{Status: "Accepted"},
			setupMock: func(m *MockService) {
				m.On("UpdateStatus", mock.Anything, userID, "Accepted").
					Return(userservice.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"error":"User not found or status not changed"`,
		},
		{
			name:        "неизвестный статус отвечает 400",
			url:         "/user/" + userID.Hex(),
			requestBody: models.DummyStatusUpdate{Status: "Foo"},
			setupMock: func(m *MockService) {
				m.On("UpdateStatus", mock.Anything, userID, "Foo").
					Return(fmt.Errorf("%w: %q", userservice.ErrInvalidStatus, "Foo"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"Invalid status value"`,
		},
		{
			name:           "некорректный id в url",
			url:            "/user/abc",
			requestBody:    models.DummyStatusUpdate{Status: "Accepted"},
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"invalid id"`,
		},
		{
			name:           "некорректный JSON",
			url:            "/user/" + userID.Hex(),
			requestBody:    "not a json",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"invalid request body"`,
		},
		{
			name:           "пустой статус не проходит валидацию",
			url:            "/user/" + userID.Hex(),
			requestBody:    models.DummyStatusUpdate{Status: ""},
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Status is a required field`,
		},
		{
			name:        "ошибка сервиса",
			url:         "/user/" + userID.Hex(),
			requestBody: models.DummyStatusUpdate{Status: "Accepted"},
			setupMock: func(m *MockService) {
				m.On("UpdateStatus", mock.Anything, userID, "Accepted").
					Return(errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"error":"Failed to update status."`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			var body []byte
			var err error
			if str, ok := tt.requestBody.(string); ok {
				body = []byte(str)
			} else {
				body, err = json.Marshal(tt.requestBody)
				assert.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPatch, tt.url, bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			ctx := context.WithValue(req.Context(), middleware.RequestIDKey, "req-id")
			req = req.WithContext(ctx)

			// Устанавливаем URL параметр id для chi
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", strings.TrimPrefix(tt.url, "/user/"))
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}
