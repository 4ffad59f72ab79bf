package handlers

import (
	"context"
	"net/http"

	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/api/response"
	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/apperrors"
	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/model"
	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/service"
)

// EntitlementHandler handles HTTP requests for the premium entitlement.
type EntitlementHandler struct {
	entitlementService *service.EntitlementService
}

// NewEntitlementHandler creates a new EntitlementHandler with the provided service dependency.
func NewEntitlementHandler(entitlementService *service.EntitlementService) *EntitlementHandler {
	return &EntitlementHandler{
		entitlementService: entitlementService,
	}
}

// EntitlementResponse describes the current tier and what it unlocks.
type EntitlementResponse struct {
	IsPremium       bool                      `json:"isPremium"`
	FreeLimit       int                       `json:"freeLimit"`
	Capabilities    map[model.Capability]bool `json:"capabilities"`
	FreeFeatures    []string                  `json:"freeFeatures"`
	PremiumFeatures []string                  `json:"premiumFeatures"`
}

func (h *EntitlementHandler) newResponse(s model.EntitlementState) EntitlementResponse {
	return EntitlementResponse{
		IsPremium:       s.IsPremium,
		FreeLimit:       h.entitlementService.FreeLimit(),
		Capabilities:    model.CapabilityMap(s.IsPremium),
		FreeFeatures:    model.FreeFeatures,
		PremiumFeatures: model.PremiumFeatures,
	}
}

// Entitlement handles GET requests for the current entitlement.
//
// Endpoint: GET /api/entitlement
// Response: 200 OK with EntitlementResponse
func (h *EntitlementHandler) Entitlement(w http.ResponseWriter, _ *http.Request) {
	response.RespondJSON(w, http.StatusOK, h.newResponse(h.entitlementService.State()))
}

// Upgrade handles POST requests granting premium.
//
// Endpoint: POST /api/entitlement/upgrade
// Response: 200 OK with EntitlementResponse
// Error: 500 Internal Server Error if the flag cannot be persisted
func (h *EntitlementHandler) Upgrade(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.entitlementService.Upgrade)
}

// Restore handles POST requests restoring the persisted entitlement.
//
// Endpoint: POST /api/entitlement/restore
// Response: 200 OK with EntitlementResponse
// Error: 500 Internal Server Error if the flag cannot be read
func (h *EntitlementHandler) Restore(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.entitlementService.Restore)
}

// Toggle handles POST requests flipping premium on or off.
//
// Endpoint: POST /api/entitlement/toggle
// Response: 200 OK with EntitlementResponse
// Error: 500 Internal Server Error if the flag cannot be persisted
func (h *EntitlementHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.entitlementService.Toggle)
}

func (h *EntitlementHandler) mutate(
	w http.ResponseWriter,
	r *http.Request,
	action func(context.Context) (model.EntitlementState, error),
) {
	state, err := action(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToUpdateEntitlement.Error(), err.Error())
		return
	}
	response.RespondJSON(w, http.StatusOK, h.newResponse(state))
}
