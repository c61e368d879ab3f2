package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ntx-bassclub/clubhub/internal/models"
)

// UpsertGearItem inserts or replaces a checklist item. Ownership never
// changes on update: the WHERE clause pins the owner.
func (s *Storage) UpsertGearItem(ctx context.Context, item models.GearItem) error {
	const op = "storage.UpsertGearItem"

	query := `INSERT INTO gear_items (id, owner_uid, name, category, is_checked, priority, notes)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  ON CONFLICT (id) DO UPDATE
			  SET name = EXCLUDED.name,
			      category = EXCLUDED.category,
			      is_checked = EXCLUDED.is_checked,
			      priority = EXCLUDED.priority,
			      notes = EXCLUDED.notes
			  WHERE gear_items.owner_uid = EXCLUDED.owner_uid;`
	res, err := s.DB.ExecContext(ctx, query,
		item.ID, item.OwnerUID, item.Name, item.Category, item.Checked,
		item.Priority, item.Notes)
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
	// Zero rows means the id exists under another owner and the owner
	// pin filtered the update out. Nothing was stored.
	if affected == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}

// ListGearItems returns the owner's checklist ordered by category then name.
func (s *Storage) ListGearItems(ctx context.Context, ownerUID string) ([]*models.GearItem, error) {
	const op = "storage.ListGearItems"

	query := `SELECT id, owner_uid, name, category, is_checked, priority, notes
			  FROM gear_items
			  WHERE owner_uid = $1
			  ORDER BY category, name`
	rows, err := s.DB.QueryContext(ctx, query, ownerUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.GearItem
	for rows.Next() {
		var item models.GearItem
		var notes sql.NullString
		if err = rows.Scan(&item.ID, &item.OwnerUID, &item.Name, &item.Category,
			&item.Checked, &item.Priority, &notes); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		item.Notes = notes.String
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// DeleteGearItem removes one of the owner's checklist items. Returns
// ErrNotFound when the item does not exist or belongs to someone else.
func (s *Storage) DeleteGearItem(ctx context.Context, ownerUID, id string) error {
	const op = "storage.DeleteGearItem"

	res, err := s.DB.ExecContext(ctx,
		`DELETE FROM gear_items WHERE id = $1 AND owner_uid = $2`, id, ownerUID)
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
