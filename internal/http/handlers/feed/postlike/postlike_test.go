package postlike

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ntx-bassclub/clubhub/internal/services/feed"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Like(ctx context.Context, postID string) (int, error) {
	args := m.Called(ctx, postID)
	return args.Int(0), args.Error(1)
}

func TestLikePostHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		postID         string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "like returns new count",
			postID: "post-1",
			setupMock: func(m *MockService) {
				m.On("Like", mock.Anything, "post-1").Return(6, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"likes":6`,
		},
		{
			name:   "unknown post",
			postID: "post-missing",
			setupMock: func(m *MockService) {
				m.On("Like", mock.Anything, "post-missing").Return(0, feed.ErrPostNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `post not found`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/feed/"+tt.postID+"/like", nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.postID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			mockService.AssertExpectations(t)
		})
	}
}
