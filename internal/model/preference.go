package model

// Preference keys persisted in the preference store.
const (
	PreferenceDarkMode  = "dark_mode"
	PreferenceIsPremium = "is_premium"
)

// Preferences is the full set of persisted flags.
type Preferences struct {
	DarkMode  bool `json:"darkMode"`
	IsPremium bool `json:"isPremium"`
}
