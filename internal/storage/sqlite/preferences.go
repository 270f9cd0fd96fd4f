package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mmynk/moneyquest/internal/models"
	"github.com/mmynk/moneyquest/internal/storage"
)

// SetPreference inserts or replaces a user's value.
func (s *SQLiteStore) SetPreference(ctx context.Context, pref *models.Preference) error {
	if pref.UpdatedAt == 0 {
		pref.UpdatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO preferences (user_id, pref_key, value, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT (user_id, pref_key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		pref.UserID, pref.Key, pref.Value, pref.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to set preference: %w", err)
	}

	return nil
}

// GetPreference retrieves a user's value by key.
func (s *SQLiteStore) GetPreference(ctx context.Context, userID, key string) (*models.Preference, error) {
	pref := &models.Preference{}
	err := s.db.QueryRowContext(ctx,
		"SELECT user_id, pref_key, value, updated_at FROM preferences WHERE user_id = ? AND pref_key = ?",
		userID, key,
	).Scan(&pref.UserID, &pref.Key, &pref.Value, &pref.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("preference %q: %w", key, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get preference: %w", err)
	}

	return pref, nil
}

// ListPreferences retrieves all of a user's values ordered by key.
func (s *SQLiteStore) ListPreferences(ctx context.Context, userID string) ([]*models.Preference, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT user_id, pref_key, value, updated_at FROM preferences WHERE user_id = ? ORDER BY pref_key",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list preferences: %w", err)
	}
	defer rows.Close()

	var prefs []*models.Preference
	for rows.Next() {
		pref := &models.Preference{}
		if err := rows.Scan(&pref.UserID, &pref.Key, &pref.Value, &pref.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan preference: %w", err)
		}
		prefs = append(prefs, pref)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate preferences: %w", err)
	}

	return prefs, nil
}

// DeletePreference removes a user's value.
func (s *SQLiteStore) DeletePreference(ctx context.Context, userID, key string) error {
	result, err := s.db.ExecContext(ctx,
		"DELETE FROM preferences WHERE user_id = ? AND pref_key = ?",
		userID, key,
	)
	if err != nil {
		return fmt.Errorf("failed to delete preference: %w", err)
	}
	return requireAffected(result, "preference", key)
}
