package handlers

import (
	"net/http"

	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/api/response"
	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/apperrors"
	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/model"
	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/service"
)

// SystemHandler handles system-related HTTP requests
type SystemHandler struct {
	systemService *service.SystemService
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(systemService *service.SystemService) *SystemHandler {
	return &SystemHandler{
		systemService: systemService,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status   string           `json:"status"`
	Database string           `json:"database"`
	Data     model.LoadStatus `json:"data"`
	Error    string           `json:"error,omitempty"`
}

// Health checks the health of the system, the database connectivity and
// the state of the analysis data. A failed data load is reported but does not
// make the service unhealthy: the client shows it with a retry action.
func (h *SystemHandler) Health(w http.ResponseWriter, _ *http.Request) {
	data := h.systemService.LoadStatus()

	// Check database health
	if err := h.systemService.CheckHealth(); err != nil {
		response.RespondJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:   "unhealthy",
			Database: "disconnected",
			Data:     data,
			Error:    err.Error(),
		})
		return
	}

	// System is healthy
	response.RespondJSON(w, http.StatusOK, HealthResponse{
		Status:   "healthy",
		Database: "connected",
		Data:     data,
	})
}

// Version handles GET requests to retrieve version information.
//
// Endpoint: GET /api/system/version
// Response: 200 OK with VersionInfo
// Error: 500 Internal Server Error if version check fails
func (h *SystemHandler) Version(w http.ResponseWriter, r *http.Request) {
	version, err := h.systemService.CheckVersion(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToGetVersionInfo.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, version)
}
