package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/fernet/fernet-go"

	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/apperrors"
)

// PreferenceRepository provides data access methods for the preference table,
// a small key-value store of boolean flags.
//
// When keys are configured, values are sealed as fernet tokens. The first key
// seals new values; all keys are tried when reading, which allows rotation.
type PreferenceRepository struct {
	db   *sql.DB
	keys []*fernet.Key
}

// NewPreferenceRepository creates a new PreferenceRepository. keys may be empty,
// in which case values are stored in plain text.
func NewPreferenceRepository(db *sql.DB, keys []*fernet.Key) *PreferenceRepository {
	return &PreferenceRepository{db: db, keys: keys}
}

// GetBool returns the flag stored under key.
// Returns ErrPreferenceNotFound when the key was never written and
// ErrInvalidPreferenceToken when a sealed value does not verify.
func (r *PreferenceRepository) GetBool(ctx context.Context, key string) (bool, error) {
	var raw string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM preference WHERE key = ?`, key).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, apperrors.ErrPreferenceNotFound
		}
		return false, fmt.Errorf("failed to query preference %s: %w", key, err)
	}

	plain, err := r.open(raw)
	if err != nil {
		return false, fmt.Errorf("preference %s: %w", key, err)
	}

	v, err := strconv.ParseBool(plain)
	if err != nil {
		return false, fmt.Errorf("failed to parse preference %s: %w", key, err)
	}
	return v, nil
}

// SetBool stores value under key, replacing any previous value.
func (r *PreferenceRepository) SetBool(ctx context.Context, key string, value bool) error {
	sealed, err := r.seal(strconv.FormatBool(value))
	if err != nil {
		return fmt.Errorf("failed to seal preference %s: %w", key, err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO preference (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, sealed, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to store preference %s: %w", key, err)
	}
	return nil
}

func (r *PreferenceRepository) seal(plain string) (string, error) {
	if len(r.keys) == 0 {
		return plain, nil
	}
	tok, err := fernet.EncryptAndSign([]byte(plain), r.keys[0])
	if err != nil {
		return "", err
	}
	return string(tok), nil
}

func (r *PreferenceRepository) open(raw string) (string, error) {
	if len(r.keys) == 0 {
		return raw, nil
	}
	// A negative ttl disables expiry; preferences never expire.
	msg := fernet.VerifyAndDecrypt([]byte(raw), -1, r.keys)
	if msg == nil {
		return "", apperrors.ErrInvalidPreferenceToken
	}
	return string(msg), nil
}
