package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/apperrors"
	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/model"
	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/repository"
)

// PreferenceService handles the persisted boolean preferences.
type PreferenceService struct {
	prefRepo *repository.PreferenceRepository
	logger   *zap.Logger
}

// NewPreferenceService creates a new PreferenceService with the provided repository dependency.
func NewPreferenceService(prefRepo *repository.PreferenceRepository, logger *zap.Logger) *PreferenceService {
	return &PreferenceService{
		prefRepo: prefRepo,
		logger:   logger,
	}
}

// Flag reads a boolean preference. A key that was never written reads as
// false. A sealed value that fails verification also reads as false and is
// logged, so a tampered store cannot grant anything.
func (s *PreferenceService) Flag(ctx context.Context, key string) (bool, error) {
	v, err := s.prefRepo.GetBool(ctx, key)
	switch {
	case err == nil:
		return v, nil
	case errors.Is(err, apperrors.ErrPreferenceNotFound):
		return false, nil
	case errors.Is(err, apperrors.ErrInvalidPreferenceToken):
		s.logger.Warn("ignoring preference that failed verification", zap.String("key", key))
		return false, nil
	default:
		return false, err
	}
}

// SetFlag persists a boolean preference.
func (s *PreferenceService) SetFlag(ctx context.Context, key string, value bool) error {
	return s.prefRepo.SetBool(ctx, key, value)
}

// Preferences returns every persisted flag.
func (s *PreferenceService) Preferences(ctx context.Context) (model.Preferences, error) {
	darkMode, err := s.Flag(ctx, model.PreferenceDarkMode)
	if err != nil {
		return model.Preferences{}, err
	}
	isPremium, err := s.Flag(ctx, model.PreferenceIsPremium)
	if err != nil {
		return model.Preferences{}, err
	}
	return model.Preferences{DarkMode: darkMode, IsPremium: isPremium}, nil
}

// SetDarkMode persists the dark-mode preference.
func (s *PreferenceService) SetDarkMode(ctx context.Context, enabled bool) error {
	return s.SetFlag(ctx, model.PreferenceDarkMode, enabled)
}
