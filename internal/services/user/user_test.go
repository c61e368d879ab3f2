package user_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ntx-bassclub/clubhub/internal/lib/password"
	"github.com/ntx-bassclub/clubhub/internal/models"
	"github.com/ntx-bassclub/clubhub/internal/services/user"
	"github.com/ntx-bassclub/clubhub/internal/storage/repository"
)

type RepoMock struct {
	mock.Mock
}

func (m *RepoMock) RegisterUser(ctx context.Context, u models.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *RepoMock) ListUsers(ctx context.Context, limit, offset int) ([]*models.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *RepoMock) DeleteUser(ctx context.Context, uid string) error {
	args := m.Called(ctx, uid)
	return args.Error(0)
}

func newService(repo *RepoMock) *user.Service {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return user.New(repo, logger)
}

func TestCreate_CoachCreatesMember(t *testing.T) {
	repo := new(RepoMock)
	svc := newService(repo)

	repo.On("RegisterUser", mock.Anything, mock.MatchedBy(func(u models.User) bool {
		return u.Name == "Jane Doe" &&
			u.Email == "jane@example.com" &&
			u.Role == models.RoleMember &&
			u.UID != "" &&
			u.PasswordHash != "" &&
			u.PasswordHash != "livewell"
	})).Return(nil).Once()

	created, err := svc.Create(context.Background(), user.CreateRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "livewell",
		Role:     models.RoleMember,
	}, models.RoleCoach)
	require.NoError(t, err)
	assert.Equal(t, models.RoleMember, created.Role)
	assert.NoError(t, password.CompareHash(created.PasswordHash, "livewell"))
	repo.AssertExpectations(t)
}

func TestCreate_NonCoachDenied(t *testing.T) {
	repo := new(RepoMock)
	svc := newService(repo)

	for _, role := range []string{models.RoleMember, models.RoleCaptain, ""} {
		_, err := svc.Create(context.Background(), user.CreateRequest{
			Name:     "Someone",
			Email:    "someone@example.com",
			Password: "pw123456",
			Role:     models.RoleMember,
		}, role)
		assert.ErrorIs(t, err, user.ErrNotCoach)
	}
	repo.AssertNotCalled(t, "RegisterUser", mock.Anything, mock.Anything)
}

func TestCreate_DuplicateEmail(t *testing.T) {
	repo := new(RepoMock)
	svc := newService(repo)

	repo.On("RegisterUser", mock.Anything, mock.Anything).
		Return(repository.ErrDuplicateEmail).Once()

	_, err := svc.Create(context.Background(), user.CreateRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "livewell",
		Role:     models.RoleMember,
	}, models.RoleCoach)
	assert.ErrorIs(t, err, user.ErrEmailTaken)
}

func TestCreate_InvalidRole(t *testing.T) {
	repo := new(RepoMock)
	svc := newService(repo)

	_, err := svc.Create(context.Background(), user.CreateRequest{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "livewell",
		Role:     "admiral",
	}, models.RoleCoach)
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}

func TestList_ClampsPagination(t *testing.T) {
	repo := new(RepoMock)
	svc := newService(repo)

	repo.On("ListUsers", mock.Anything, user.DefaultListLimit, 0).
		Return([]*models.User{}, nil).Once()
	_, err := svc.List(context.Background(), 0, -5)
	require.NoError(t, err)

	repo.On("ListUsers", mock.Anything, user.MaxListLimit, 10).
		Return([]*models.User{}, nil).Once()
	_, err = svc.List(context.Background(), 500, 10)
	require.NoError(t, err)

	repo.AssertExpectations(t)
}

func TestDelete(t *testing.T) {
	repo := new(RepoMock)
	svc := newService(repo)

	repo.On("DeleteUser", mock.Anything, "uid-1").Return(nil).Once()
	require.NoError(t, svc.Delete(context.Background(), "uid-1", models.RoleCoach))

	repo.On("DeleteUser", mock.Anything, "uid-missing").Return(repository.ErrNotFound).Once()
	err := svc.Delete(context.Background(), "uid-missing", models.RoleCoach)
	assert.ErrorIs(t, err, user.ErrUserNotFound)

	err = svc.Delete(context.Background(), "uid-1", models.RoleMember)
	assert.ErrorIs(t, err, user.ErrNotCoach)
	repo.AssertExpectations(t)
}
