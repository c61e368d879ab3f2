package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ntx-bassclub/clubhub/internal/models"
)

// CreatePost stores a new feed post with its structured JSON payloads.
func (s *Storage) CreatePost(ctx context.Context, post models.Post) error {
	const op = "storage.CreatePost"

	images, err := json.Marshal(post.Images)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	comments, err := json.Marshal(post.Comments)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	var catchDetails, gearReminder []byte
	if post.CatchDetails != nil {
		if catchDetails, err = json.Marshal(post.CatchDetails); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}
	if post.GearReminder != nil {
		if gearReminder, err = json.Marshal(post.GearReminder); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	query := `INSERT INTO posts (id, author_uid, author_name, content, type, ts,
			      tournament_id, images, likes, comments, catch_details, gear_reminder)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);`
	if _, err = s.DB.ExecContext(ctx, query,
		post.ID, post.AuthorUID, post.AuthorName, post.Content, post.Type,
		post.Timestamp, nullIfEmpty(post.TournamentID), images, post.Likes,
		comments, catchDetails, gearReminder); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ListPosts returns posts newest first. When tournamentID is non-empty only
// posts tagged to that tournament are returned. The before cursor, when set,
// restricts to posts strictly older than the given time.
func (s *Storage) ListPosts(ctx context.Context, tournamentID string, limit int, before *time.Time) ([]*models.Post, error) {
	const op = "storage.ListPosts"

	query := `SELECT id, author_uid, author_name, content, type, ts,
			      tournament_id, images, likes, comments, catch_details, gear_reminder
			  FROM posts
			  WHERE ($1 = '' OR tournament_id = $1)
			    AND ($2::timestamptz IS NULL OR ts < $2)
			  ORDER BY ts DESC
			  LIMIT $3`
	rows, err := s.DB.QueryContext(ctx, query, tournamentID, before, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, post)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// GetPost returns a single post by id or ErrNotFound.
func (s *Storage) GetPost(ctx context.Context, id string) (*models.Post, error) {
	const op = "storage.GetPost"

	query := `SELECT id, author_uid, author_name, content, type, ts,
			      tournament_id, images, likes, comments, catch_details, gear_reminder
			  FROM posts
			  WHERE id = $1`
	row := s.DB.QueryRowContext(ctx, query, id)
	post, err := scanPost(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isInvalidID(err) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return post, nil
}

// LikePost increments the like counter in a single statement and returns
// the new count. Concurrent likes never lose increments because the update
// happens inside the database, not read-modify-write in the application.
func (s *Storage) LikePost(ctx context.Context, id string) (int, error) {
	const op = "storage.LikePost"

	var likes int
	err := s.DB.QueryRowContext(ctx,
		`UPDATE posts SET likes = likes + 1 WHERE id = $1 RETURNING likes`, id).Scan(&likes)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isInvalidID(err) {
			return 0, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return likes, nil
}

// AddComment appends a comment to the post's comment array, preserving
// insertion order. Returns ErrNotFound when the post does not exist.
func (s *Storage) AddComment(ctx context.Context, postID string, comment models.Comment) error {
	const op = "storage.AddComment"

	body, err := json.Marshal(comment)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	res, err := s.DB.ExecContext(ctx,
		`UPDATE posts SET comments = comments || $2::jsonb WHERE id = $1`, postID, body)
	if err != nil {
		if isInvalidID(err) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (*models.Post, error) {
	var p models.Post
	var tournamentID sql.NullString
	var images, comments []byte
	var catchDetails, gearReminder []byte

	if err := row.Scan(&p.ID, &p.AuthorUID, &p.AuthorName, &p.Content, &p.Type,
		&p.Timestamp, &tournamentID, &images, &p.Likes, &comments,
		&catchDetails, &gearReminder); err != nil {
		return nil, err
	}
	p.TournamentID = tournamentID.String

	if len(images) > 0 {
		if err := json.Unmarshal(images, &p.Images); err != nil {
			return nil, err
		}
	}
	if len(comments) > 0 {
		if err := json.Unmarshal(comments, &p.Comments); err != nil {
			return nil, err
		}
	}
	if p.Comments == nil {
		p.Comments = []models.Comment{}
	}
	if len(catchDetails) > 0 {
		p.CatchDetails = &models.CatchDetails{}
		if err := json.Unmarshal(catchDetails, p.CatchDetails); err != nil {
			return nil, err
		}
	}
	if len(gearReminder) > 0 {
		p.GearReminder = &models.GearReminder{}
		if err := json.Unmarshal(gearReminder, p.GearReminder); err != nil {
			return nil, err
		}
	}
	return &p, nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
