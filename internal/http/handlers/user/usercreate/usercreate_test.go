package usercreate

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ntx-bassclub/clubhub/internal/http/middlewarectx"
	"github.com/ntx-bassclub/clubhub/internal/models"
	"github.com/ntx-bassclub/clubhub/internal/services/user"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, req user.CreateRequest, requesterRole string) (*models.User, error) {
	args := m.Called(ctx, req, requesterRole)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func TestCreateUserHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	validBody := `{"name":"Jake Miller","email":"jake@ntxbass.org","password":"topwater","role":"member"}`

	tests := []struct {
		name           string
		body           string
		role           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "coach creates member",
			body: validBody,
			role: models.RoleCoach,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, mock.Anything, models.RoleCoach).
					Return(&models.User{UID: "uid-2", Name: "Jake Miller", Role: models.RoleMember}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"uid":"uid-2"`,
		},
		{
			name: "member is rejected",
			body: validBody,
			role: models.RoleMember,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, mock.Anything, models.RoleMember).
					Return(nil, user.ErrNotCoach)
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `only coaches may create users`,
		},
		{
			name: "duplicate email",
			body: validBody,
			role: models.RoleCoach,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, mock.Anything, models.RoleCoach).
					Return(nil, user.ErrEmailTaken)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `email already registered`,
		},
		{
			name:           "bad role value",
			body:           `{"name":"Jake Miller","email":"jake@ntxbass.org","password":"topwater","role":"admiral"}`,
			role:           models.RoleCoach,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Role has an unsupported value`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(tt.body))
			ctx := context.WithValue(req.Context(), middlewarectx.Role, tt.role)
			req = req.WithContext(ctx)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			mockService.AssertExpectations(t)
		})
	}
}
