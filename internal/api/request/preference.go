package request

// DarkModeRequest represents the request body for updating the dark-mode preference.
type DarkModeRequest struct {
	Enabled *bool `json:"enabled"`
}
