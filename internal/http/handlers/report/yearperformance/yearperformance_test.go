package yearperformance

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Dmytro-Burdeniuk/credit-portfolio/internal/models"
)

// MockService реализует интерфейс yearperformance.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) YearPerformance(ctx context.Context, year int) ([]models.YearPerformanceItem, error) {
	args := m.Called(ctx, year)
	return args.Get(0).([]models.YearPerformanceItem), args.Error(1)
}

func TestYearPerformanceHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	items := []models.YearPerformanceItem{
		{
			Period:                    "01.2021",
			CreditsCount:              4,
			PlanIssueSum:              25000,
			ActualIssueSum:            20000,
			IssuePerformancePercent:   80,
			PaymentsCount:             10,
			PlanCollectSum:            13000,
			ActualCollectSum:          13000,
			CollectPerformancePercent: 100,
			IssueSharePercent:         20,
			CollectSharePercent:       25,
		},
	}

	tests := []struct {
		name           string
		query          string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:  "успешный отчёт",
			query: "?year=2021",
			setupMock: func(m *MockService) {
				m.On("YearPerformance", mock.Anything, 2021).
					Return(items, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"status":"OK","data":{"months":[
				{"period":"01.2021","credits_count":4,"plan_issue_sum":25000,
				"actual_issue_sum":20000,"issue_performance_percent":80,
				"payments_count":10,"plan_collect_sum":13000,"actual_collect_sum":13000,
				"collect_performance_percent":100,"issue_share_percent":20,
				"collect_share_percent":25}]}}`,
		},
		{
			name:           "отсутствует year",
			query:          "",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"year must be a positive number"}`,
		},
		{
			name:           "некорректный year",
			query:          "?year=abc",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"year must be a positive number"}`,
		},
		{
			name:           "отрицательный year",
			query:          "?year=-5",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"year must be a positive number"}`,
		},
		{
			name:  "ошибка сервиса",
			query: "?year=2021",
			setupMock: func(m *MockService) {
				m.On("YearPerformance", mock.Anything, 2021).
					Return([]models.YearPerformanceItem{}, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"could not build year performance report"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockService)
			tt.setupMock(mockSvc)

			handler := New(logger, mockSvc)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/year-performance"+tt.query, nil)
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "req-id"))

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			mockSvc.AssertExpectations(t)
		})
	}
}
