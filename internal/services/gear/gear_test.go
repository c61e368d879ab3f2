package gear_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ntx-bassclub/clubhub/internal/models"
	"github.com/ntx-bassclub/clubhub/internal/services/gear"
	"github.com/ntx-bassclub/clubhub/internal/storage/repository"
)

type RepoMock struct {
	mock.Mock
}

func (m *RepoMock) UpsertGearItem(ctx context.Context, item models.GearItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *RepoMock) ListGearItems(ctx context.Context, ownerUID string) ([]*models.GearItem, error) {
	args := m.Called(ctx, ownerUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.GearItem), args.Error(1)
}

func (m *RepoMock) DeleteGearItem(ctx context.Context, ownerUID, id string) error {
	args := m.Called(ctx, ownerUID, id)
	return args.Error(0)
}

func newService(repo *RepoMock) *gear.Service {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return gear.New(repo, logger)
}

func TestUpsert_NewItemGetsID(t *testing.T) {
	repo := new(RepoMock)
	svc := newService(repo)

	repo.On("UpsertGearItem", mock.Anything, mock.MatchedBy(func(item models.GearItem) bool {
		return item.ID != "" && item.OwnerUID == "uid-1" && item.Category == "lures"
	})).Return(nil).Once()

	item, err := svc.Upsert(context.Background(), "uid-1", gear.UpsertRequest{
		Name:     "Spinnerbait 3/8oz",
		Category: "lures",
		Priority: models.GearRecommended,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, item.ID)
	repo.AssertExpectations(t)
}

func TestUpsert_Validation(t *testing.T) {
	repo := new(RepoMock)
	svc := newService(repo)

	_, err := svc.Upsert(context.Background(), "uid-1", gear.UpsertRequest{
		Name:     "Something",
		Category: "kitchen",
		Priority: models.GearOptional,
	})
	assert.ErrorIs(t, err, gear.ErrInvalidCategory)

	_, err = svc.Upsert(context.Background(), "uid-1", gear.UpsertRequest{
		Name:     "Something",
		Category: "tackle",
		Priority: "urgent",
	})
	assert.ErrorIs(t, err, gear.ErrInvalidPriority)
	repo.AssertNotCalled(t, "UpsertGearItem", mock.Anything, mock.Anything)
}

func TestUpsert_ForeignItemNotStored(t *testing.T) {
	repo := new(RepoMock)
	svc := newService(repo)

	// The id belongs to another member's checklist; storage refuses the
	// write and the caller must not see the echoed item as saved.
	repo.On("UpsertGearItem", mock.Anything, mock.Anything).
		Return(repository.ErrNotFound).Once()

	item, err := svc.Upsert(context.Background(), "uid-2", gear.UpsertRequest{
		ID:       "0b6f9f0e-8d51-4b5c-9a71-091746d9a6a5",
		Name:     "Not yours",
		Category: "rods",
		Priority: models.GearEssential,
	})
	assert.ErrorIs(t, err, gear.ErrItemNotFound)
	assert.Nil(t, item)
	repo.AssertExpectations(t)
}

func TestDelete_NotFound(t *testing.T) {
	repo := new(RepoMock)
	svc := newService(repo)

	repo.On("DeleteGearItem", mock.Anything, "uid-1", "item-1").
		Return(repository.ErrNotFound).Once()

	err := svc.Delete(context.Background(), "uid-1", "item-1")
	assert.ErrorIs(t, err, gear.ErrItemNotFound)
}
