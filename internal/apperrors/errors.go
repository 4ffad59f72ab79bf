package apperrors

import (
	"errors"
	"fmt"
)

// Domain entity errors represent missing or invalid entities in the system.
var (
	// ErrResourceNotFound indicates the bundled analysis document could not be located.
	// This is a packaging defect rather than a recoverable runtime condition.
	ErrResourceNotFound = errors.New("resource not found")

	// ErrETFNotFound indicates that no fund with the given ticker exists in the snapshot.
	ErrETFNotFound = errors.New("etf not found")

	// ErrSnapshotNotLoaded indicates the data has not finished loading, or failed to load.
	ErrSnapshotNotLoaded = errors.New("etf data not loaded")

	// ErrPreferenceNotFound indicates a preference key has never been written.
	ErrPreferenceNotFound = errors.New("preference not found")

	// ErrInvalidPreferenceToken indicates a sealed preference failed verification.
	ErrInvalidPreferenceToken = errors.New("preference token failed verification")
)

// Business logic errors represent validation failures or gated features.
var (
	// ErrFeatureLocked indicates the requested capability requires premium.
	ErrFeatureLocked = errors.New("feature requires premium")

	// ErrInvalidSortKey indicates an unknown sort key.
	ErrInvalidSortKey = errors.New("invalid sort key")

	// ErrNegativeShares indicates a negative shares-held quantity.
	ErrNegativeShares = errors.New("shares cannot be negative")

	// ErrDuplicateTicker indicates two records in one document share a ticker.
	ErrDuplicateTicker = errors.New("duplicate ticker")

	// ErrMissingRequiredField indicates that a required field is missing or empty.
	ErrMissingRequiredField = errors.New("missing required field")
)

// Operation failure errors represent system-level failures when retrieving or processing data.
var (
	ErrFailedToRetrieveETFs        = errors.New("failed to retrieve etfs")
	ErrFailedToRetrievePreferences = errors.New("failed to retrieve preferences")
	ErrFailedToUpdatePreference    = errors.New("failed to update preference")
	ErrFailedToUpdateEntitlement   = errors.New("failed to update entitlement")
	ErrFailedToGetVersionInfo      = errors.New("failed to get version information")
	ErrFailedToSubmitContact       = errors.New("failed to submit contact form")
)

// DecodeError wraps a failure to decode the analysis document. Its message is
// the decoder's message and is shown to the user as-is.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode analysis: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
