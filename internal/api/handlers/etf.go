package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/api/request"
	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/api/response"
	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/apperrors"
	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/model"
	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/service"
)

// ETFHandler handles HTTP requests for ETF endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the etfService and the data loader.
type ETFHandler struct {
	etfService *service.ETFService
	loader     *service.DataLoaderService
}

// NewETFHandler creates a new ETFHandler with the provided service dependencies.
func NewETFHandler(etfService *service.ETFService, loader *service.DataLoaderService) *ETFHandler {
	return &ETFHandler{
		etfService: etfService,
		loader:     loader,
	}
}

// LoadStatusResponse describes the state of the analysis data.
type LoadStatusResponse struct {
	Status       model.LoadStatus `json:"status"`
	AnalysisDate string           `json:"analysisDate,omitempty"`
	Count        int              `json:"count"`
	Error        string           `json:"error,omitempty"`
}

func newLoadStatusResponse(s model.LoadState) LoadStatusResponse {
	resp := LoadStatusResponse{Status: s.Status, Error: s.Error}
	if s.Snapshot != nil {
		resp.AnalysisDate = s.Snapshot.AnalysisDisplay
		resp.Count = s.Snapshot.Len()
	}
	return resp
}

// ETFs handles GET requests for the derived fund list.
//
// Endpoint: GET /api/etf?sort=score|yield|performance&search=...&shares=100
// Response: 200 OK with ETFListResponse
// Error: 400 Bad Request if sort is unknown or shares is negative
// Error: 503 Service Unavailable while data is loading or after a failed load
func (h *ETFHandler) ETFs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params, err := request.ParseViewParams(q.Get("sort"), q.Get("search"), q.Get("shares"))
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid query parameters", err.Error())
		return
	}

	list, err := h.etfService.List(params)
	if err != nil {
		h.respondETFError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, list)
}

// ETF handles GET requests for a single fund.
//
// Endpoint: GET /api/etf/{ticker}?shares=100
// Response: 200 OK with ETFDetail
// Error: 400 Bad Request if the ticker is invalid (validated by middleware) or shares is negative
// Error: 403 Forbidden if the fund is outside the free list and the tier lacks unlimitedList
// Error: 404 Not Found if the ticker is not in the snapshot
// Error: 503 Service Unavailable while data is not loaded
func (h *ETFHandler) ETF(w http.ResponseWriter, r *http.Request) {
	ticker := strings.ToUpper(chi.URLParam(r, "ticker"))

	shares, err := request.ParseShares(r.URL.Query().Get("shares"))
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid query parameters", err.Error())
		return
	}

	detail, err := h.etfService.Detail(ticker, shares)
	if err != nil {
		h.respondETFError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, detail)
}

// Calendar handles GET requests for the ex-dividend calendar.
//
// Endpoint: GET /api/etf/calendar
// Response: 200 OK with array of CalendarEntry
// Error: 403 Forbidden without the calendar capability
// Error: 503 Service Unavailable while data is not loaded
func (h *ETFHandler) Calendar(w http.ResponseWriter, _ *http.Request) {
	entries, err := h.etfService.Calendar()
	if err != nil {
		h.respondETFError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, entries)
}

// Status handles GET requests for the load status.
//
// Endpoint: GET /api/etf/status
// Response: 200 OK with LoadStatusResponse
func (h *ETFHandler) Status(w http.ResponseWriter, _ *http.Request) {
	response.RespondJSON(w, http.StatusOK, newLoadStatusResponse(h.loader.State()))
}

// Reload handles POST requests retrying the load.
//
// Endpoint: POST /api/etf/reload
// Response: 200 OK with LoadStatusResponse when loaded
// Error: 503 Service Unavailable with LoadStatusResponse when the load failed
func (h *ETFHandler) Reload(w http.ResponseWriter, _ *http.Request) {
	result := h.loader.Load()

	status := http.StatusOK
	if result.Status != model.LoadStatusLoaded {
		status = http.StatusServiceUnavailable
	}
	response.RespondJSON(w, status, newLoadStatusResponse(result))
}

func (h *ETFHandler) respondETFError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperrors.ErrSnapshotNotLoaded):
		response.RespondError(w, http.StatusServiceUnavailable, err.Error(), newLoadStatusResponse(h.loader.State()))
	case errors.Is(err, apperrors.ErrETFNotFound):
		response.RespondError(w, http.StatusNotFound, apperrors.ErrETFNotFound.Error(), "")
	case errors.Is(err, apperrors.ErrFeatureLocked):
		response.RespondError(w, http.StatusForbidden, apperrors.ErrFeatureLocked.Error(), "")
	default:
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveETFs.Error(), err.Error())
	}
}
