// Package practice records and lists a member's practice sessions.
package practice

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ntx-bassclub/clubhub/internal/models"
)

// ErrInvalidRating means the rating is outside 1..5.
var ErrInvalidRating = errors.New("rating must be between 1 and 5")

// ErrInvalidDuration means the session length is not positive.
var ErrInvalidDuration = errors.New("duration must be positive")

// Repository describes the practice-log storage the service needs.
type Repository interface {
	CreatePracticeLog(ctx context.Context, entry models.PracticeLog) error
	ListPracticeLogs(ctx context.Context, ownerUID string) ([]*models.PracticeLog, error)
}

// CreateRequest carries the fields of a new session log.
type CreateRequest struct {
	Date       time.Time
	Lake       string
	Duration   int
	Conditions models.PracticeConditions
	Techniques []string
	Catches    []models.PracticeCatch
	Notes      string
	Rating     int
}

// Service implements practice-log operations scoped to one owner.
type Service struct {
	repo Repository
	log  *slog.Logger
}

// New creates a practice Service.
func New(repo Repository, log *slog.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Create stores a new session for the owner.
func (s *Service) Create(ctx context.Context, ownerUID string, req CreateRequest) (*models.PracticeLog, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}
	if req.Duration <= 0 {
		return nil, ErrInvalidDuration
	}

	entry := models.PracticeLog{
		ID:         uuid.NewString(),
		OwnerUID:   ownerUID,
		Date:       req.Date,
		Lake:       req.Lake,
		Duration:   req.Duration,
		Conditions: req.Conditions,
		Techniques: req.Techniques,
		Catches:    req.Catches,
		Notes:      req.Notes,
		Rating:     req.Rating,
	}
	if entry.Techniques == nil {
		entry.Techniques = []string{}
	}
	if entry.Catches == nil {
		entry.Catches = []models.PracticeCatch{}
	}
	if err := s.repo.CreatePracticeLog(ctx, entry); err != nil {
		return nil, err
	}
	s.log.Info("created practice log", slog.String("id", entry.ID), slog.String("lake", entry.Lake))
	return &entry, nil
}

// List returns the owner's sessions, newest first.
func (s *Service) List(ctx context.Context, ownerUID string) ([]*models.PracticeLog, error) {
	return s.repo.ListPracticeLogs(ctx, ownerUID)
}
