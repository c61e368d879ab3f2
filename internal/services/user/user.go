// Package user implements roster management: coach-gated account creation
// and deletion plus the paginated member list.
package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ntx-bassclub/clubhub/internal/lib/password"
	"github.com/ntx-bassclub/clubhub/internal/models"
	"github.com/ntx-bassclub/clubhub/internal/storage/repository"
)

// Typed failures the handlers translate into HTTP statuses.
var (
	// ErrNotCoach means the requester does not hold the coach role.
	ErrNotCoach = errors.New("only coaches may manage users")
	// ErrEmailTaken means the email is already registered.
	ErrEmailTaken = errors.New("email already registered")
	// ErrUserNotFound means the addressed user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidRole means the requested role is not member/captain/coach.
	ErrInvalidRole = errors.New("invalid role")
)

// Pagination bounds for List.
const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// Repository describes the user storage the service needs.
type Repository interface {
	RegisterUser(ctx context.Context, user models.User) error
	ListUsers(ctx context.Context, limit, offset int) ([]*models.User, error)
	DeleteUser(ctx context.Context, uid string) error
}

// CreateRequest carries the fields of a new account.
type CreateRequest struct {
	Name     string
	Email    string
	Password string
	Role     string
	Avatar   string
}

// Service implements roster operations.
type Service struct {
	repo Repository
	log  *slog.Logger
}

// New creates a user Service.
func New(repo Repository, log *slog.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Create adds a new member. Only a coach may create accounts; the email
// must be unused. The password is stored as a salted bcrypt hash and the
// join date is today's UTC date.
func (s *Service) Create(ctx context.Context, req CreateRequest, requesterRole string) (*models.User, error) {
	if requesterRole != models.RoleCoach {
		return nil, ErrNotCoach
	}
	if !models.ValidRole(req.Role) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRole, req.Role)
	}

	hash, err := password.GetHash(req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := models.User{
		UID:          uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Avatar:       req.Avatar,
		Role:         req.Role,
		JoinDate:     time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
	}
	if err := s.repo.RegisterUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	s.log.Info("created user",
		slog.String("uid", user.UID), slog.String("role", user.Role))
	return &user, nil
}

// List returns the roster page for the given limit and offset. Out-of-range
// values are clamped to the defaults.
func (s *Service) List(ctx context.Context, limit, offset int) ([]*models.User, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.ListUsers(ctx, limit, offset)
}

// Delete removes an account. Only a coach may delete; deleting a missing
// uid is an explicit ErrUserNotFound, not a silent no-op.
func (s *Service) Delete(ctx context.Context, uid, requesterRole string) error {
	if requesterRole != models.RoleCoach {
		return ErrNotCoach
	}
	if err := s.repo.DeleteUser(ctx, uid); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	s.log.Info("deleted user", slog.String("uid", uid))
	return nil
}
