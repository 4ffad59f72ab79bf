package database

import (
	"context"
	"path/filepath"
	"testing"
)

func TestOpenAndMigrate(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "etf_tracker.db")

	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer db.Close()

	for range 2 {
		if err := Migrate(ctx, db); err != nil {
			t.Fatalf("Migrate failed: %v", err)
		}
	}

	v, err := Version(ctx, db)
	if err != nil {
		t.Fatalf("Version failed: %v", err)
	}
	if v != 1 {
		t.Errorf("Expected schema version 1, got %d", v)
	}

	if _, err := db.Exec(`INSERT INTO preference (key, value, updated_at) VALUES ('dark_mode', 'true', '2025-12-05T10:00:00Z')`); err != nil {
		t.Errorf("Expected preference table, got %v", err)
	}

	if err := HealthCheck(db); err != nil {
		t.Errorf("HealthCheck failed: %v", err)
	}
}
