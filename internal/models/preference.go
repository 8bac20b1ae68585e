package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// ViewPreference stores per-screen UI preferences (column visibility, default
// filter, default sort) keyed by a fixed screen identifier such as
// "import_review" or "collection_tv".
type ViewPreference struct {
	id        string
	ScreenKey string
	Payload   ViewPreferencePayload
	created   time.Time
	updated   time.Time
}

// ViewPreferencePayload is the JSON blob persisted for one screen.
type ViewPreferencePayload struct {
	VisibleColumns []string `json:"visible_columns,omitempty"`
	DefaultFilter  string   `json:"default_filter,omitempty"`
	DefaultSort    string   `json:"default_sort,omitempty"`
}

// NewViewPreference creates a ViewPreference for the given screen key.
func NewViewPreference(id, screenKey string, payload ViewPreferencePayload) *ViewPreference {
	now := time.Now()
	return &ViewPreference{
		id:        id,
		ScreenKey: screenKey,
		Payload:   payload,
		created:   now,
		updated:   now,
	}
}

// RestoreViewPreference rebuilds a ViewPreference from persisted columns.
func RestoreViewPreference(id, screenKey, payload string, created, updated time.Time) (*ViewPreference, error) {
	var p ViewPreferencePayload
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		return nil, fmt.Errorf("failed to decode preference payload: %w", err)
	}
	return &ViewPreference{id: id, ScreenKey: screenKey, Payload: p, created: created, updated: updated}, nil
}

func (v *ViewPreference) ID() string           { return v.id }
func (v *ViewPreference) CreatedAt() time.Time { return v.created }
func (v *ViewPreference) UpdatedAt() time.Time { return v.updated }

// Validate checks required fields.
func (v *ViewPreference) Validate() error {
	if v.id == "" {
		return fmt.Errorf("view preference id is required")
	}
	if v.ScreenKey == "" {
		return fmt.Errorf("view preference screen key is required")
	}
	return nil
}

// EncodePayload serializes the payload for storage.
func (v *ViewPreference) EncodePayload() (string, error) {
	data, err := json.Marshal(v.Payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode preference payload: %w", err)
	}
	return string(data), nil
}

// Touch updates the modification timestamp.
func (v *ViewPreference) Touch() { v.updated = time.Now() }
