package feed_test

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ntx-bassclub/clubhub/internal/models"
	"github.com/ntx-bassclub/clubhub/internal/rabbitmq"
	"github.com/ntx-bassclub/clubhub/internal/services/feed"
	"github.com/ntx-bassclub/clubhub/internal/storage/repository"
)

type RepoMock struct {
	mock.Mock
}

func (m *RepoMock) CreatePost(ctx context.Context, post models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *RepoMock) ListPosts(ctx context.Context, tournamentID string, limit int, before *time.Time) ([]*models.Post, error) {
	args := m.Called(ctx, tournamentID, limit, before)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Post), args.Error(1)
}

func (m *RepoMock) LikePost(ctx context.Context, id string) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func (m *RepoMock) AddComment(ctx context.Context, postID string, comment models.Comment) error {
	args := m.Called(ctx, postID, comment)
	return args.Error(0)
}

// noopCache always misses so tests exercise the repository path.
type noopCache struct{}

func (noopCache) Get(context.Context, string, any) (bool, error)             { return false, nil }
func (noopCache) Set(context.Context, string, any, time.Duration) error      { return nil }
func (noopCache) Invalidate(context.Context, string) error                   { return nil }

type PublisherMock struct {
	mock.Mock
}

func (m *PublisherMock) PublishGearReminder(event rabbitmq.GearReminderEvent) error {
	args := m.Called(event)
	return args.Error(0)
}

func newService(repo *RepoMock, pub feed.Publisher) *feed.Service {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return feed.New(repo, noopCache{}, pub, logger)
}

func TestCreatePost(t *testing.T) {
	repo := new(RepoMock)
	svc := newService(repo, nil)

	repo.On("CreatePost", mock.Anything, mock.MatchedBy(func(p models.Post) bool {
		return p.ID != "" &&
			p.AuthorUID == "uid-1" &&
			p.AuthorName == "Jane Doe" &&
			p.Content == "Big bite on the north bank" &&
			p.Likes == 0 &&
			len(p.Comments) == 0
	})).Return(nil).Once()

	post, err := svc.CreatePost(context.Background(), "uid-1", "Jane Doe", feed.CreateRequest{
		Content: "  Big bite on the north bank  ",
		Type:    models.PostNote,
	})
	require.NoError(t, err)
	assert.Equal(t, "Big bite on the north bank", post.Content)
	repo.AssertExpectations(t)
}

func TestCreatePost_EmptyContent(t *testing.T) {
	repo := new(RepoMock)
	svc := newService(repo, nil)

	for _, content := range []string{"", "   ", "\n\t "} {
		_, err := svc.CreatePost(context.Background(), "uid-1", "Jane Doe", feed.CreateRequest{
			Content: content,
			Type:    models.PostNote,
		})
		assert.ErrorIs(t, err, feed.ErrEmptyContent)
	}
	repo.AssertNotCalled(t, "CreatePost", mock.Anything, mock.Anything)
}

func TestCreatePost_InvalidType(t *testing.T) {
	repo := new(RepoMock)
	svc := newService(repo, nil)

	_, err := svc.CreatePost(context.Background(), "uid-1", "Jane Doe", feed.CreateRequest{
		Content: "hello",
		Type:    "announcement",
	})
	assert.ErrorIs(t, err, feed.ErrInvalidType)
}

func TestCreatePost_GearReminderPublishes(t *testing.T) {
	repo := new(RepoMock)
	pub := new(PublisherMock)
	svc := newService(repo, pub)

	repo.On("CreatePost", mock.Anything, mock.Anything).Return(nil).Once()
	pub.On("PublishGearReminder", mock.MatchedBy(func(e rabbitmq.GearReminderEvent) bool {
		return e.AuthorName == "Jane Doe" && len(e.Items) == 2 && e.Priority == "high"
	})).Return(nil).Once()

	_, err := svc.CreatePost(context.Background(), "uid-1", "Jane Doe", feed.CreateRequest{
		Content: "Bring rain gear and extra line",
		Type:    models.PostGearReminder,
		GearReminder: &models.GearReminder{
			Items:    []string{"rain gear", "extra line"},
			Priority: "high",
		},
	})
	require.NoError(t, err)
	pub.AssertExpectations(t)
}

func TestCreatePost_PublishFailureIsNotFatal(t *testing.T) {
	repo := new(RepoMock)
	pub := new(PublisherMock)
	svc := newService(repo, pub)

	repo.On("CreatePost", mock.Anything, mock.Anything).Return(nil).Once()
	pub.On("PublishGearReminder", mock.Anything).Return(assert.AnError).Once()

	_, err := svc.CreatePost(context.Background(), "uid-1", "Jane Doe", feed.CreateRequest{
		Content:      "Checklists out",
		Type:         models.PostGearReminder,
		GearReminder: &models.GearReminder{Items: []string{"pliers"}, Priority: "low"},
	})
	assert.NoError(t, err)
}

func TestList_FilterAndClamp(t *testing.T) {
	repo := new(RepoMock)
	svc := newService(repo, nil)

	repo.On("ListPosts", mock.Anything, "1", feed.MaxListLimit, (*time.Time)(nil)).
		Return([]*models.Post{{ID: "p1", TournamentID: "1"}}, nil).Once()

	posts, err := svc.List(context.Background(), "1", 1000, nil)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "1", posts[0].TournamentID)
	repo.AssertExpectations(t)
}

func TestLike(t *testing.T) {
	repo := new(RepoMock)
	svc := newService(repo, nil)

	repo.On("LikePost", mock.Anything, "p1").Return(4, nil).Once()
	likes, err := svc.Like(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, 4, likes)

	repo.On("LikePost", mock.Anything, "missing").Return(0, repository.ErrNotFound).Once()
	_, err = svc.Like(context.Background(), "missing")
	assert.ErrorIs(t, err, feed.ErrPostNotFound)
}

func TestAddComment(t *testing.T) {
	repo := new(RepoMock)
	svc := newService(repo, nil)

	repo.On("AddComment", mock.Anything, "p1", mock.MatchedBy(func(c models.Comment) bool {
		return c.Content == "Nice fish!" && c.AuthorName == "Coach A" && c.ID != ""
	})).Return(nil).Once()

	comment, err := svc.AddComment(context.Background(), "p1", "uid-2", "Coach A", " Nice fish! ")
	require.NoError(t, err)
	assert.Equal(t, "Nice fish!", comment.Content)

	_, err = svc.AddComment(context.Background(), "p1", "uid-2", "Coach A", "   ")
	assert.ErrorIs(t, err, feed.ErrEmptyContent)
	repo.AssertExpectations(t)
}
