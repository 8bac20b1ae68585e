package models

import (
	"time"
)

// Model is implemented by entities persisted in the local database.
type Model interface {
	ID() string           // ID returns the unique identifier for this model
	CreatedAt() time.Time // CreatedAt returns when this model was created
	UpdatedAt() time.Time // UpdatedAt returns when this model was last updated
	Validate() error      // Validate checks the model's data before it is written
}

// Repository defines the storage operations persistent models share.
// Lookups by domain key (such as a screen key) live on the concrete types.
type Repository[T Model] interface {
	Create(model T) error     // Create inserts a new row
	Get(id string) (T, error) // Get retrieves a row by primary key
	Delete(id string) error   // Delete removes a row by primary key
	List() ([]T, error)       // List retrieves all rows
}
