package usercredits

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Dmytro-Burdeniuk/credit-portfolio/internal/models"
)

// MockService реализует интерфейс usercredits.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) ListUserCredits(ctx context.Context, userID int64) ([]models.UserCreditReport, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.UserCreditReport), args.Error(1)
}

func TestUserCreditsHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	closed := models.UserCreditClosed{
		IssuanceDate:     time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		IsClosed:         true,
		Body:             1000,
		Percent:          150,
		ActualReturnDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		TotalPaymentsSum: 1100,
	}

	tests := []struct {
		name           string
		userID         string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "успешный отчёт по закрытому кредиту",
			userID: "7",
			setupMock: func(m *MockService) {
				m.On("ListUserCredits", mock.Anything, int64(7)).
					Return([]models.UserCreditReport{closed}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"status":"OK","data":{"credits_count":1,"credits":[
				{"issuance_date":"2024-01-10T00:00:00Z","is_closed":true,"body":1000,
				"percent":150,"actual_return_date":"2024-03-01T00:00:00Z","total_payments_sum":1100}]}}`,
		},
		{
			name:   "пользователь без кредитов",
			userID: "42",
			setupMock: func(m *MockService) {
				m.On("ListUserCredits", mock.Anything, int64(42)).
					Return([]models.UserCreditReport{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","data":{"credits_count":0,"credits":[]}}`,
		},
		{
			name:           "некорректный user_id",
			userID:         "abc",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid user_id"}`,
		},
		{
			name:   "ошибка сервиса",
			userID: "7",
			setupMock: func(m *MockService) {
				m.On("ListUserCredits", mock.Anything, int64(7)).
					Return([]models.UserCreditReport{}, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"could not list user credits"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockService)
			tt.setupMock(mockSvc)

			handler := New(logger, mockSvc)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/users/"+tt.userID+"/credits", nil)

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("user_id", tt.userID)
			ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
			ctx = context.WithValue(ctx, middleware.RequestIDKey, "req-id")
			req = req.WithContext(ctx)

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			mockSvc.AssertExpectations(t)
		})
	}
}
