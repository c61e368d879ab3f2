package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ntx-bassclub/clubhub/internal/models"
)

const tournamentColumns = `id, name, date, location, lake, status, description`

// ListTournaments returns every tournament, newest first.
func (s *Storage) ListTournaments(ctx context.Context) ([]*models.Tournament, error) {
	const op = "storage.ListTournaments"

	query := `SELECT ` + tournamentColumns + `
			  FROM tournaments
			  ORDER BY date DESC`
	return s.queryTournaments(ctx, op, query)
}

// ListUpcomingTournaments returns tournaments on or after the given date,
// soonest first.
func (s *Storage) ListUpcomingTournaments(ctx context.Context, now time.Time) ([]*models.Tournament, error) {
	const op = "storage.ListUpcomingTournaments"

	query := `SELECT ` + tournamentColumns + `
			  FROM tournaments
			  WHERE date >= $1
			  ORDER BY date`
	return s.queryTournaments(ctx, op, query, now)
}

// ListPastTournaments returns tournaments before the given date, most
// recent first.
func (s *Storage) ListPastTournaments(ctx context.Context, now time.Time) ([]*models.Tournament, error) {
	const op = "storage.ListPastTournaments"

	query := `SELECT ` + tournamentColumns + `
			  FROM tournaments
			  WHERE date < $1
			  ORDER BY date DESC`
	return s.queryTournaments(ctx, op, query, now)
}

// GetTournament returns one tournament by id or ErrNotFound.
func (s *Storage) GetTournament(ctx context.Context, id string) (*models.Tournament, error) {
	const op = "storage.GetTournament"

	query := `SELECT ` + tournamentColumns + `
			  FROM tournaments
			  WHERE id = $1`
	t := &models.Tournament{}
	var description sql.NullString
	row := s.DB.QueryRowContext(ctx, query, id)
	if err := row.Scan(&t.ID, &t.Name, &t.Date, &t.Location, &t.Lake,
		&t.Status, &description); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	t.Description = description.String
	return t, nil
}

func (s *Storage) queryTournaments(ctx context.Context, op, query string, args ...any) ([]*models.Tournament, error) {
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Tournament
	for rows.Next() {
		var t models.Tournament
		var description sql.NullString
		if err = rows.Scan(&t.ID, &t.Name, &t.Date, &t.Location, &t.Lake,
			&t.Status, &description); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		t.Description = description.String
		result = append(result, &t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
