package handlers

import (
	"net/http"

	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/api/request"
	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/api/response"
	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/apperrors"
	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/service"
)

// PreferenceHandler handles HTTP requests for persisted preferences.
type PreferenceHandler struct {
	preferenceService *service.PreferenceService
}

// NewPreferenceHandler creates a new PreferenceHandler with the provided service dependency.
func NewPreferenceHandler(preferenceService *service.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{
		preferenceService: preferenceService,
	}
}

// Preferences handles GET requests for all persisted flags.
//
// Endpoint: GET /api/preference
// Response: 200 OK with Preferences
// Error: 500 Internal Server Error if retrieval fails
func (h *PreferenceHandler) Preferences(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.preferenceService.Preferences(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrievePreferences.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, prefs)
}

// SetDarkMode handles PUT requests updating the dark-mode preference.
//
// Endpoint: PUT /api/preference/dark-mode
// Request Body: DarkModeRequest (enabled)
// Response: 200 OK with Preferences
// Error: 400 Bad Request if the body is invalid or enabled is missing
// Error: 500 Internal Server Error if the update fails
func (h *PreferenceHandler) SetDarkMode(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.DarkModeRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if req.Enabled == nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", "enabled: enabled is required")
		return
	}

	if err := h.preferenceService.SetDarkMode(r.Context(), *req.Enabled); err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToUpdatePreference.Error(), err.Error())
		return
	}

	h.Preferences(w, r)
}
