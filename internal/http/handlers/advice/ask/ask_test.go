package ask

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ntx-bassclub/clubhub/internal/services/advice"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Ask(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func TestAskHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "returns generated plan",
			body: `{"prompt":"How should I fish Lake Lewisville in March?"}`,
			setupMock: func(m *MockService) {
				m.On("Ask", mock.Anything, "How should I fish Lake Lewisville in March?").
					Return("Start shallow with a chatterbait.", nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"plan":"Start shallow with a chatterbait."`,
		},
		{
			name: "empty prompt",
			body: `{"prompt":"  "}`,
			setupMock: func(m *MockService) {
				m.On("Ask", mock.Anything, "  ").Return("", advice.ErrEmptyPrompt)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"Prompt is required"`,
		},
		{
			name: "provider failure is squashed",
			body: `{"prompt":"jig colors?"}`,
			setupMock: func(m *MockService) {
				m.On("Ask", mock.Anything, "jig colors?").
					Return("", errors.Join(advice.ErrGeneration, errors.New("upstream 503")))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"error":"Failed to generate plan"`,
		},
		{
			name:           "invalid json",
			body:           `{"prompt":`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"Prompt is required"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/advice", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			mockService.AssertExpectations(t)
		})
	}
}
