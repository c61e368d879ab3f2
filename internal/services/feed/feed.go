// Package feed implements the social timeline: post creation, listing with
// a tournament filter, atomic likes and comments. The unfiltered first page
// is cached in redis; gear-reminder posts additionally publish a
// notification event.
package feed

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ntx-bassclub/clubhub/internal/lib/sl"
	"github.com/ntx-bassclub/clubhub/internal/models"
	"github.com/ntx-bassclub/clubhub/internal/rabbitmq"
	"github.com/ntx-bassclub/clubhub/internal/storage/repository"
)

// Typed failures the handlers translate into HTTP statuses.
var (
	// ErrEmptyContent means the content was empty after trimming whitespace.
	ErrEmptyContent = errors.New("post content is empty")
	// ErrPostNotFound means the addressed post does not exist.
	ErrPostNotFound = errors.New("post not found")
	// ErrInvalidType means the post type is not one of the four feed types.
	ErrInvalidType = errors.New("invalid post type")
)

// Pagination bounds for List.
const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

const (
	feedCacheKey = "feed:firstpage"
	feedCacheTTL = 30 * time.Second
)

// Repository describes the post storage the service needs.
type Repository interface {
	CreatePost(ctx context.Context, post models.Post) error
	ListPosts(ctx context.Context, tournamentID string, limit int, before *time.Time) ([]*models.Post, error)
	LikePost(ctx context.Context, id string) (int, error)
	AddComment(ctx context.Context, postID string, comment models.Comment) error
}

// Cache describes the feed page cache.
type Cache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Invalidate(ctx context.Context, key string) error
}

// Publisher forwards gear-reminder events to the notification queue.
// A nil publisher disables notifications.
type Publisher interface {
	PublishGearReminder(event rabbitmq.GearReminderEvent) error
}

// CreateRequest carries the fields of a new post.
type CreateRequest struct {
	Content      string
	Type         string
	TournamentID string
	Images       []string
	CatchDetails *models.CatchDetails
	GearReminder *models.GearReminder
}

// Service implements the feed operations.
type Service struct {
	repo      Repository
	cache     Cache
	publisher Publisher
	log       *slog.Logger
}

// New creates a feed Service. publisher may be nil.
func New(repo Repository, cache Cache, publisher Publisher, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		cache:     cache,
		publisher: publisher,
		log:       log,
	}
}

// CreatePost stores a new post for the author. Content that is empty after
// trimming is rejected with ErrEmptyContent. A gear-reminder post also
// publishes a notification event; publish failures are logged, not returned.
func (s *Service) CreatePost(ctx context.Context, authorUID, authorName string, req CreateRequest) (*models.Post, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, ErrEmptyContent
	}
	if !models.ValidPostType(req.Type) {
		return nil, ErrInvalidType
	}

	post := models.Post{
		ID:           uuid.NewString(),
		AuthorUID:    authorUID,
		AuthorName:   authorName,
		Content:      content,
		Type:         req.Type,
		Timestamp:    time.Now().UTC(),
		TournamentID: req.TournamentID,
		Images:       req.Images,
		Likes:        0,
		Comments:     []models.Comment{},
		CatchDetails: req.CatchDetails,
		GearReminder: req.GearReminder,
	}
	if err := s.repo.CreatePost(ctx, post); err != nil {
		return nil, err
	}
	s.invalidateFirstPage(ctx)

	if post.Type == models.PostGearReminder && s.publisher != nil {
		event := rabbitmq.GearReminderEvent{
			PostID:     post.ID,
			AuthorName: post.AuthorName,
			Content:    post.Content,
		}
		if post.GearReminder != nil {
			event.Items = post.GearReminder.Items
			event.Priority = post.GearReminder.Priority
		}
		if err := s.publisher.PublishGearReminder(event); err != nil {
			s.log.Warn("failed to publish gear reminder", sl.Err(err))
		}
	}

	s.log.Info("created post", slog.String("id", post.ID), slog.String("type", post.Type))
	return &post, nil
}

// List returns posts newest first, optionally filtered by tournament and
// restricted to posts older than the before cursor. The unfiltered first
// page is served from cache when warm.
func (s *Service) List(ctx context.Context, tournamentID string, limit int, before *time.Time) ([]*models.Post, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	cacheable := tournamentID == "" && before == nil && limit == DefaultListLimit
	if cacheable {
		var cached []*models.Post
		found, err := s.cache.Get(ctx, feedCacheKey, &cached)
		if err != nil {
			s.log.Warn("feed cache read failed", sl.Err(err))
		} else if found {
			return cached, nil
		}
	}

	posts, err := s.repo.ListPosts(ctx, tournamentID, limit, before)
	if err != nil {
		return nil, err
	}

	if cacheable {
		if err := s.cache.Set(ctx, feedCacheKey, posts, feedCacheTTL); err != nil {
			s.log.Warn("feed cache write failed", sl.Err(err))
		}
	}
	return posts, nil
}

// Like increments the post's like counter by exactly one and returns the
// new count. The increment is atomic at the storage layer.
func (s *Service) Like(ctx context.Context, postID string) (int, error) {
	likes, err := s.repo.LikePost(ctx, postID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, ErrPostNotFound
		}
		return 0, err
	}
	s.invalidateFirstPage(ctx)
	return likes, nil
}

// AddComment appends a comment to the post. Comment content follows the
// same trimmed-non-empty rule as post content.
func (s *Service) AddComment(ctx context.Context, postID, authorUID, authorName, content string) (*models.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}
	comment := models.Comment{
		ID:         uuid.NewString(),
		AuthorUID:  authorUID,
		AuthorName: authorName,
		Content:    content,
		Timestamp:  time.Now().UTC(),
	}
	if err := s.repo.AddComment(ctx, postID, comment); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	s.invalidateFirstPage(ctx)
	return &comment, nil
}

func (s *Service) invalidateFirstPage(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, feedCacheKey); err != nil {
		s.log.Warn("feed cache invalidation failed", sl.Err(err))
	}
}
