package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/fernet/fernet-go"
	"go.uber.org/zap"

	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/model"
	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/repository"
	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/service"
)

// TestAnalysisDate is the analysis timestamp used by test documents.
const TestAnalysisDate = "2025-12-05T10:00:00.000Z"

func NewTestPreferenceService(t *testing.T, db *sql.DB, keys ...*fernet.Key) *service.PreferenceService {
	t.Helper()

	return service.NewPreferenceService(
		repository.NewPreferenceRepository(db, keys),
		zap.NewNop(),
	)
}

func NewTestEntitlementService(t *testing.T, db *sql.DB) *service.EntitlementService {
	t.Helper()

	svc, err := service.NewEntitlementService(
		context.Background(),
		NewTestPreferenceService(t, db),
		model.DefaultFreeLimit,
		zap.NewNop(),
	)
	if err != nil {
		t.Fatalf("Failed to create entitlement service: %v", err)
	}
	return svc
}

// NewTestLoader creates a loader over an in-memory document with the given
// funds and runs one load. It fails the test if the load does not succeed.
func NewTestLoader(t *testing.T, etfs ...model.ETF) *service.DataLoaderService {
	t.Helper()

	loader := service.NewDataLoaderService(
		NewMemorySource(AnalysisJSON(t, TestAnalysisDate, etfs...)),
		zap.NewNop(),
	)
	if res := loader.Load(); res.Status != model.LoadStatusLoaded {
		t.Fatalf("Failed to load test analysis: %s", res.Error)
	}
	return loader
}

func NewTestETFService(t *testing.T, db *sql.DB, loader *service.DataLoaderService) (*service.ETFService, *service.EntitlementService) {
	t.Helper()

	entitlements := NewTestEntitlementService(t, db)
	return service.NewETFService(loader, entitlements), entitlements
}

func NewTestSystemService(t *testing.T, db *sql.DB, loader *service.DataLoaderService) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db, loader)
}

func NewTestContactService(t *testing.T) *service.ContactService {
	t.Helper()

	return service.NewContactService(service.SupportAddress, zap.NewNop())
}

// SetPremium persists and applies the premium flag through the service.
func SetPremium(t *testing.T, svc *service.EntitlementService, isPremium bool) {
	t.Helper()

	if svc.IsPremium() == isPremium {
		return
	}
	if _, err := svc.Toggle(context.Background()); err != nil {
		t.Fatalf("Failed to toggle premium: %v", err)
	}
}
