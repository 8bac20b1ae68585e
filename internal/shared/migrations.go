package shared

import (
	"database/sql"
	"embed"
	"fmt"
)

//go:embed sql/*.sql
var schemaFS embed.FS

// schemaVersion names one up/down script pair under sql/.
type schemaVersion struct {
	version int
	name    string
}

// Schema history, oldest first. A new version means adding
// sql/<name>_up.sql and sql/<name>_down.sql and appending an entry here.
var schemaVersions = []schemaVersion{
	{version: 0, name: "0000_create_tables"},
}

func (v schemaVersion) script(direction string) (string, error) {
	data, err := schemaFS.ReadFile(fmt.Sprintf("sql/%s_%s.sql", v.name, direction))
	if err != nil {
		return "", fmt.Errorf("failed to read migration %s (%s): %w", v.name, direction, err)
	}
	return string(data), nil
}

// RunMigrations applies every schema version not yet recorded in
// schema_migrations, in order. Calling it on an up-to-date database is a
// no-op.
func RunMigrations(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (
		version INTEGER PRIMARY KEY,
		applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	for _, v := range schemaVersions {
		var applied bool
		if err := db.QueryRow(`SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = ?)`, v.version).Scan(&applied); err != nil {
			return fmt.Errorf("failed to check migration status: %w", err)
		}
		if applied {
			continue
		}

		up, err := v.script("up")
		if err != nil {
			return err
		}
		if err := execMigration(db, up, `INSERT INTO schema_migrations (version) VALUES (?)`, v.version); err != nil {
			return fmt.Errorf("failed to apply migration %d: %w", v.version, err)
		}
	}
	return nil
}

// RollbackMigration reverts the most recently applied schema version.
func RollbackMigration(db *sql.DB) error {
	var current sql.NullInt64
	if err := db.QueryRow(`SELECT MAX(version) FROM schema_migrations`).Scan(&current); err != nil {
		return fmt.Errorf("failed to check migrations: %w", err)
	}
	if !current.Valid {
		return fmt.Errorf("no migrations to roll back")
	}

	for i := len(schemaVersions) - 1; i >= 0; i-- {
		v := schemaVersions[i]
		if int64(v.version) != current.Int64 {
			continue
		}
		down, err := v.script("down")
		if err != nil {
			return err
		}
		if err := execMigration(db, down, `DELETE FROM schema_migrations WHERE version = ?`, v.version); err != nil {
			return fmt.Errorf("failed to roll back migration %d: %w", v.version, err)
		}
		return nil
	}
	return fmt.Errorf("migration version %d not in the schema history", current.Int64)
}

// execMigration runs a migration script and its bookkeeping statement in one
// transaction. The sqlite driver executes multi-statement scripts in a single
// Exec call.
func execMigration(db *sql.DB, script, record string, version int) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(script); err != nil {
		return fmt.Errorf("failed to execute migration script: %w", err)
	}
	if _, err := tx.Exec(record, version); err != nil {
		return err
	}
	return tx.Commit()
}
