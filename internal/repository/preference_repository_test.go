package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/apperrors"
	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/model"
	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/repository"
	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/testutil"
)

func TestPreferenceRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("returns ErrPreferenceNotFound for unset key", func(t *testing.T) {
		repo := repository.NewPreferenceRepository(testutil.SetupTestDB(t), nil)

		if _, err := repo.GetBool(ctx, model.PreferenceDarkMode); !errors.Is(err, apperrors.ErrPreferenceNotFound) {
			t.Errorf("Expected ErrPreferenceNotFound, got %v", err)
		}
	})

	t.Run("overwrites existing value", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewPreferenceRepository(db, nil)

		for _, v := range []bool{true, false} {
			if err := repo.SetBool(ctx, model.PreferenceDarkMode, v); err != nil {
				t.Fatalf("SetBool failed: %v", err)
			}
		}

		got, err := repo.GetBool(ctx, model.PreferenceDarkMode)
		if err != nil {
			t.Fatalf("GetBool failed: %v", err)
		}
		if got {
			t.Error("Expected last write to win")
		}

		var count int
		if err := db.QueryRow(`SELECT COUNT(*) FROM preference`).Scan(&count); err != nil {
			t.Fatalf("Failed to count rows: %v", err)
		}
		if count != 1 {
			t.Errorf("Expected 1 row, got %d", count)
		}
	})

	t.Run("unparseable plain value is an error", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewPreferenceRepository(db, nil)

		if _, err := db.Exec(`INSERT INTO preference (key, value) VALUES (?, 'maybe')`, model.PreferenceIsPremium); err != nil {
			t.Fatalf("Failed to insert: %v", err)
		}
		if _, err := repo.GetBool(ctx, model.PreferenceIsPremium); err == nil {
			t.Error("Expected parse error")
		}
	})
}
