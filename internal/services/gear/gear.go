// Package gear manages a member's personal tournament checklist.
package gear

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ntx-bassclub/clubhub/internal/models"
	"github.com/ntx-bassclub/clubhub/internal/storage/repository"
)

// Typed failures.
var (
	// ErrItemNotFound means the checklist item does not exist or belongs
	// to another member.
	ErrItemNotFound = errors.New("gear item not found")
	// ErrInvalidCategory means the category is not one of the known ones.
	ErrInvalidCategory = errors.New("invalid gear category")
	// ErrInvalidPriority means the priority is not essential/recommended/optional.
	ErrInvalidPriority = errors.New("invalid gear priority")
)

// Repository describes the gear storage the service needs.
type Repository interface {
	UpsertGearItem(ctx context.Context, item models.GearItem) error
	ListGearItems(ctx context.Context, ownerUID string) ([]*models.GearItem, error)
	DeleteGearItem(ctx context.Context, ownerUID, id string) error
}

// UpsertRequest carries the fields of a checklist item. An empty ID
// creates a new item.
type UpsertRequest struct {
	ID       string
	Name     string
	Category string
	Checked  bool
	Priority string
	Notes    string
}

// Service implements checklist operations scoped to one owner.
type Service struct {
	repo Repository
	log  *slog.Logger
}

// New creates a gear Service.
func New(repo Repository, log *slog.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Upsert creates or updates one of the owner's checklist items.
func (s *Service) Upsert(ctx context.Context, ownerUID string, req UpsertRequest) (*models.GearItem, error) {
	if !models.ValidGearCategory(req.Category) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, req.Category)
	}
	switch req.Priority {
	case models.GearEssential, models.GearRecommended, models.GearOptional:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidPriority, req.Priority)
	}

	item := models.GearItem{
		ID:       req.ID,
		OwnerUID: ownerUID,
		Name:     req.Name,
		Category: req.Category,
		Checked:  req.Checked,
		Priority: req.Priority,
		Notes:    req.Notes,
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if err := s.repo.UpsertGearItem(ctx, item); err != nil {
		// The id exists on another member's checklist; nothing was stored.
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

// List returns the owner's checklist.
func (s *Service) List(ctx context.Context, ownerUID string) ([]*models.GearItem, error) {
	return s.repo.ListGearItems(ctx, ownerUID)
}

// Delete removes one of the owner's checklist items.
func (s *Service) Delete(ctx context.Context, ownerUID, id string) error {
	if err := s.repo.DeleteGearItem(ctx, ownerUID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrItemNotFound
		}
		return err
	}
	return nil
}
