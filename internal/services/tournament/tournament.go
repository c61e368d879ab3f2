// Package tournament exposes the read-only tournament schedule.
package tournament

import (
	"context"
	"errors"
	"time"

	"github.com/ntx-bassclub/clubhub/internal/models"
	"github.com/ntx-bassclub/clubhub/internal/storage/repository"
)

// ErrTournamentNotFound means the addressed tournament does not exist.
var ErrTournamentNotFound = errors.New("tournament not found")

// Repository describes the tournament storage the service needs.
type Repository interface {
	ListTournaments(ctx context.Context) ([]*models.Tournament, error)
	ListUpcomingTournaments(ctx context.Context, now time.Time) ([]*models.Tournament, error)
	ListPastTournaments(ctx context.Context, now time.Time) ([]*models.Tournament, error)
	GetTournament(ctx context.Context, id string) (*models.Tournament, error)
}

// Service serves schedule reads.
type Service struct {
	repo Repository
	now  func() time.Time
}

// New creates a tournament Service.
func New(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// ListAll returns every tournament, newest first.
func (s *Service) ListAll(ctx context.Context) ([]*models.Tournament, error) {
	return s.repo.ListTournaments(ctx)
}

// ListUpcoming returns events scheduled today or later, soonest first.
func (s *Service) ListUpcoming(ctx context.Context) ([]*models.Tournament, error) {
	return s.repo.ListUpcomingTournaments(ctx, s.now().UTC())
}

// ListPast returns finished events, most recent first.
func (s *Service) ListPast(ctx context.Context) ([]*models.Tournament, error) {
	return s.repo.ListPastTournaments(ctx, s.now().UTC())
}

// Read returns one tournament by id.
func (s *Service) Read(ctx context.Context, id string) (*models.Tournament, error) {
	t, err := s.repo.GetTournament(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, err
	}
	return t, nil
}
