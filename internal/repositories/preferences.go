package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/kylejschultz/caddyy-sub000/internal/models"
	"github.com/kylejschultz/caddyy-sub000/internal/shared"
)

// ViewPreferenceRepository persists [models.ViewPreference] rows in SQLite.
type ViewPreferenceRepository struct {
	db *sql.DB
}

var _ models.Repository[*models.ViewPreference] = (*ViewPreferenceRepository)(nil)

// NewViewPreferenceRepository creates a repository over an open database.
func NewViewPreferenceRepository(db *sql.DB) *ViewPreferenceRepository {
	return &ViewPreferenceRepository{db: db}
}

// Create inserts a new preference row.
func (r *ViewPreferenceRepository) Create(pref *models.ViewPreference) error {
	if err := pref.Validate(); err != nil {
		return err
	}
	payload, err := pref.EncodePayload()
	if err != nil {
		return err
	}
	_, err = r.db.Exec(
		`INSERT INTO view_preferences (id, screen_key, payload, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		pref.ID(), pref.ScreenKey, payload, pref.CreatedAt(), pref.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to create view preference: %w", err)
	}
	return nil
}

// Get retrieves a preference by id.
func (r *ViewPreferenceRepository) Get(id string) (*models.ViewPreference, error) {
	return r.scanOne(`SELECT id, screen_key, payload, created_at, updated_at FROM view_preferences WHERE id = ?`, id)
}

// GetByScreenKey retrieves the preference for a screen, or nil when none is stored.
func (r *ViewPreferenceRepository) GetByScreenKey(screenKey string) (*models.ViewPreference, error) {
	pref, err := r.scanOne(`SELECT id, screen_key, payload, created_at, updated_at FROM view_preferences WHERE screen_key = ?`, screenKey)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return pref, err
}

func (r *ViewPreferenceRepository) scanOne(query string, arg any) (*models.ViewPreference, error) {
	var (
		id, screenKey, payload string
		created, updated       time.Time
	)
	err := r.db.QueryRow(query, arg).Scan(&id, &screenKey, &payload, &created, &updated)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to query view preference: %w", err)
	}
	return models.RestoreViewPreference(id, screenKey, payload, created, updated)
}

// Upsert stores the preference for a screen key, creating the row on first
// save and replacing the payload on subsequent saves.
func (r *ViewPreferenceRepository) Upsert(screenKey string, payload models.ViewPreferencePayload) (*models.ViewPreference, error) {
	existing, err := r.GetByScreenKey(screenKey)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		pref := models.NewViewPreference(shared.GenerateID(), screenKey, payload)
		if err := r.Create(pref); err != nil {
			return nil, err
		}
		return pref, nil
	}

	existing.Payload = payload
	existing.Touch()
	encoded, err := existing.EncodePayload()
	if err != nil {
		return nil, err
	}
	if _, err := r.db.Exec(
		`UPDATE view_preferences SET payload = ?, updated_at = ? WHERE screen_key = ?`,
		encoded, existing.UpdatedAt(), screenKey,
	); err != nil {
		return nil, fmt.Errorf("failed to update view preference: %w", err)
	}
	return existing, nil
}

// Delete removes a preference row by id. Deleting a missing id is not an
// error.
func (r *ViewPreferenceRepository) Delete(id string) error {
	if _, err := r.db.Exec(`DELETE FROM view_preferences WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete view preference: %w", err)
	}
	return nil
}

// DeleteByScreenKey removes the preference for a screen key. Deleting a
// missing key is not an error.
func (r *ViewPreferenceRepository) DeleteByScreenKey(screenKey string) error {
	if _, err := r.db.Exec(`DELETE FROM view_preferences WHERE screen_key = ?`, screenKey); err != nil {
		return fmt.Errorf("failed to delete view preference: %w", err)
	}
	return nil
}

// List returns all stored preferences ordered by screen key.
func (r *ViewPreferenceRepository) List() ([]*models.ViewPreference, error) {
	rows, err := r.db.Query(`SELECT id, screen_key, payload, created_at, updated_at FROM view_preferences ORDER BY screen_key`)
	if err != nil {
		return nil, fmt.Errorf("failed to list view preferences: %w", err)
	}
	defer rows.Close()

	var prefs []*models.ViewPreference
	for rows.Next() {
		var (
			id, screenKey, payload string
			created, updated       time.Time
		)
		if err := rows.Scan(&id, &screenKey, &payload, &created, &updated); err != nil {
			return nil, fmt.Errorf("failed to scan view preference: %w", err)
		}
		pref, err := models.RestoreViewPreference(id, screenKey, payload, created, updated)
		if err != nil {
			return nil, err
		}
		prefs = append(prefs, pref)
	}
	return prefs, rows.Err()
}
