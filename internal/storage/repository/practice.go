package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/ntx-bassclub/clubhub/internal/models"
)

// CreatePracticeLog stores a practice session.
func (s *Storage) CreatePracticeLog(ctx context.Context, entry models.PracticeLog) error {
	const op = "storage.CreatePracticeLog"

	conditions, err := json.Marshal(entry.Conditions)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	techniques, err := json.Marshal(entry.Techniques)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	catches, err := json.Marshal(entry.Catches)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query := `INSERT INTO practice_logs (id, owner_uid, date, lake, duration,
			      conditions, techniques, catches, notes, rating)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`
	if _, err = s.DB.ExecContext(ctx, query,
		entry.ID, entry.OwnerUID, entry.Date, entry.Lake, entry.Duration,
		conditions, techniques, catches, entry.Notes, entry.Rating); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ListPracticeLogs returns the owner's sessions, newest first.
func (s *Storage) ListPracticeLogs(ctx context.Context, ownerUID string) ([]*models.PracticeLog, error) {
	const op = "storage.ListPracticeLogs"

	query := `SELECT id, owner_uid, date, lake, duration,
			      conditions, techniques, catches, notes, rating
			  FROM practice_logs
			  WHERE owner_uid = $1
			  ORDER BY date DESC`
	rows, err := s.DB.QueryContext(ctx, query, ownerUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.PracticeLog
	for rows.Next() {
		var entry models.PracticeLog
		var notes sql.NullString
		var conditions, techniques, catches []byte
		if err = rows.Scan(&entry.ID, &entry.OwnerUID, &entry.Date, &entry.Lake,
			&entry.Duration, &conditions, &techniques, &catches,
			&notes, &entry.Rating); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		entry.Notes = notes.String
		if err = json.Unmarshal(conditions, &entry.Conditions); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if err = json.Unmarshal(techniques, &entry.Techniques); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if err = json.Unmarshal(catches, &entry.Catches); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &entry)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
