package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ntx-bassclub/clubhub/internal/models"
)

// RegisterUser stores a new user. Returns ErrDuplicateEmail when the email
// is already taken.
func (s *Storage) RegisterUser(ctx context.Context, user models.User) error {
	const op = "storage.RegisterUser"

	query := `INSERT INTO users (uid, name, email, password_hash, avatar, role, join_date)
			  VALUES ($1, $2, $3, $4, $5, $6, $7);`
	if _, err := s.DB.ExecContext(ctx, query,
		user.UID, user.Name, user.Email, user.PasswordHash, user.Avatar,
		user.Role, user.JoinDate); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%s: %w", op, ErrDuplicateEmail)
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// GetUserByEmail returns the user with the given email or ErrNotFound.
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.GetUserByEmail"

	query := `SELECT uid, name, email, password_hash, avatar, role, join_date
			  FROM users
			  WHERE email = $1`
	u := &models.User{}
	var avatar sql.NullString
	row := s.DB.QueryRowContext(ctx, query, email)
	if err := row.Scan(&u.UID, &u.Name, &u.Email, &u.PasswordHash,
		&avatar, &u.Role, &u.JoinDate); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	u.Avatar = avatar.String
	return u, nil
}

// GetUser returns the user with the given uid or ErrNotFound.
func (s *Storage) GetUser(ctx context.Context, uid string) (*models.User, error) {
	const op = "storage.GetUser"

	query := `SELECT uid, name, email, password_hash, avatar, role, join_date
			  FROM users
			  WHERE uid = $1`
	u := &models.User{}
	var avatar sql.NullString
	row := s.DB.QueryRowContext(ctx, query, uid)
	if err := row.Scan(&u.UID, &u.Name, &u.Email, &u.PasswordHash,
		&avatar, &u.Role, &u.JoinDate); err != nil {
		if errors.Is(err, sql.ErrNoRows) || isInvalidID(err) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	u.Avatar = avatar.String
	return u, nil
}

// ListUsers returns users ordered by join date then name, with
// limit/offset pagination.
func (s *Storage) ListUsers(ctx context.Context, limit, offset int) ([]*models.User, error) {
	const op = "storage.ListUsers"

	query := `SELECT uid, name, email, password_hash, avatar, role, join_date
			  FROM users
			  ORDER BY join_date, name
			  LIMIT $1 OFFSET $2`
	rows, err := s.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.User
	for rows.Next() {
		var u models.User
		var avatar sql.NullString
		if err = rows.Scan(&u.UID, &u.Name, &u.Email, &u.PasswordHash,
			&avatar, &u.Role, &u.JoinDate); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		u.Avatar = avatar.String
		result = append(result, &u)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// DeleteUser removes the user with the given uid. Returns ErrNotFound
// when no such user exists.
func (s *Storage) DeleteUser(ctx context.Context, uid string) error {
	const op = "storage.DeleteUser"

	res, err := s.DB.ExecContext(ctx, `DELETE FROM users WHERE uid = $1`, uid)
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

// ListMemberEmails returns the email addresses of every club member,
// used by the reminder sender.
func (s *Storage) ListMemberEmails(ctx context.Context) ([]string, error) {
	const op = "storage.ListMemberEmails"

	rows, err := s.DB.QueryContext(ctx, `SELECT email FROM users ORDER BY email`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var emails []string
	for rows.Next() {
		var email string
		if err = rows.Scan(&email); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		emails = append(emails, email)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return emails, nil
}
