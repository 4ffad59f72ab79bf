package service

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/model"
)

// EntitlementService holds the premium flag. It is constructed once and passed
// to every component that needs it; writes go through Upgrade, Restore and
// Toggle only, and are serialized.
//
// Entitlement is binary and permanent once granted. There is no trial period.
type EntitlementService struct {
	prefs     *PreferenceService
	freeLimit int
	logger    *zap.Logger

	mu        sync.RWMutex
	isPremium bool

	changes notifier[model.EntitlementState]
}

// NewEntitlementService creates the entitlement state, initialized from the
// preference store.
func NewEntitlementService(ctx context.Context, prefs *PreferenceService, freeLimit int, logger *zap.Logger) (*EntitlementService, error) {
	isPremium, err := prefs.Flag(ctx, model.PreferenceIsPremium)
	if err != nil {
		return nil, fmt.Errorf("failed to read entitlement: %w", err)
	}
	return &EntitlementService{
		prefs:     prefs,
		freeLimit: freeLimit,
		logger:    logger,
		isPremium: isPremium,
	}, nil
}

// IsPremium reports the current premium flag.
func (s *EntitlementService) IsPremium() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isPremium
}

// State returns the current entitlement state.
func (s *EntitlementService) State() model.EntitlementState {
	return model.EntitlementState{IsPremium: s.IsPremium()}
}

// FreeLimit returns the number of funds shown to a non-premium user.
func (s *EntitlementService) FreeLimit() int {
	return s.freeLimit
}

// CanAccess reports whether the capability is available at the current tier.
func (s *EntitlementService) CanAccess(c model.Capability) bool {
	return model.CanAccess(c, s.IsPremium())
}

// Upgrade grants premium and persists it.
func (s *EntitlementService) Upgrade(ctx context.Context) (model.EntitlementState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set(ctx, true)
}

// Toggle flips the premium flag and persists it.
func (s *EntitlementService) Toggle(ctx context.Context) (model.EntitlementState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set(ctx, !s.isPremium)
}

// Restore re-reads the persisted premium flag.
func (s *EntitlementService) Restore(ctx context.Context) (model.EntitlementState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	isPremium, err := s.prefs.Flag(ctx, model.PreferenceIsPremium)
	if err != nil {
		return model.EntitlementState{IsPremium: s.isPremium}, fmt.Errorf("failed to restore entitlement: %w", err)
	}
	return s.apply(isPremium), nil
}

// Subscribe returns a channel receiving the state after every mutation.
func (s *EntitlementService) Subscribe() (<-chan model.EntitlementState, func()) {
	return s.changes.subscribe()
}

// set persists first so a failed write leaves the in-memory flag unchanged.
// Callers hold s.mu.
func (s *EntitlementService) set(ctx context.Context, isPremium bool) (model.EntitlementState, error) {
	if err := s.prefs.SetFlag(ctx, model.PreferenceIsPremium, isPremium); err != nil {
		return model.EntitlementState{IsPremium: s.isPremium}, fmt.Errorf("failed to persist entitlement: %w", err)
	}
	return s.apply(isPremium), nil
}

func (s *EntitlementService) apply(isPremium bool) model.EntitlementState {
	if isPremium != s.isPremium {
		s.logger.Info("entitlement changed", zap.Bool("is_premium", isPremium))
	}
	s.isPremium = isPremium
	state := model.EntitlementState{IsPremium: isPremium}
	s.changes.publish(state)
	return state
}
