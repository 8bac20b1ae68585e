package shared

import (
	"testing"
)

func TestRunMigrations(t *testing.T) {
	db, err := NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	defer db.Close()
	ConfigureDatabase(db, 1, 1)

	if err := RunMigrations(db); err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	// The preferences table must exist after migrating.
	if _, err := db.Exec(`INSERT INTO view_preferences (id, screen_key, payload, created_at, updated_at)
		VALUES ('id-1', 'import_review', '{}', CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)`); err != nil {
		t.Errorf("insert into migrated table: %v", err)
	}

	// Running again is a no-op.
	if err := RunMigrations(db); err != nil {
		t.Errorf("second run: %v", err)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM view_preferences").Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("rows = %d, want the insert preserved across reruns", count)
	}
}

func TestRollbackMigration(t *testing.T) {
	db, err := NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	defer db.Close()
	ConfigureDatabase(db, 1, 1)

	if err := RunMigrations(db); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
	if err := RollbackMigration(db); err != nil {
		t.Fatalf("rollback: %v", err)
	}

	if _, err := db.Exec("SELECT 1 FROM view_preferences"); err == nil {
		t.Error("expected table dropped after rollback")
	}

	if err := RollbackMigration(db); err == nil {
		t.Error("expected error when nothing is left to roll back")
	}
}

func TestOpenPreferencesDB(t *testing.T) {
	db, err := OpenPreferencesDB(DatabaseConfig{Path: ":memory:", MaxOpenConns: 1, MaxIdleConns: 1})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	// The schema must already be in place.
	if _, err := db.Exec(`INSERT INTO view_preferences (id, screen_key, payload, created_at, updated_at)
		VALUES ('id-1', 'collection_tv', '{}', CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)`); err != nil {
		t.Errorf("insert: %v", err)
	}
}
