package handlers

import (
	"net/http"

	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/api/request"
	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/api/response"
	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/apperrors"
	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/service"
	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/validation"
)

// ContactHandler handles contact form submissions.
type ContactHandler struct {
	contactService *service.ContactService
}

// NewContactHandler creates a new ContactHandler with the provided service dependency.
func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

// Submit handles POST requests from the contact form.
// The message is not delivered anywhere; the client only receives a receipt.
//
// Endpoint: POST /api/contact
// Request Body: ContactRequest (name, email, message, optional category and subject)
// Response: 202 Accepted with ContactReceipt
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if the message cannot be composed
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.ContactRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateContact(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	receipt, err := h.contactService.Submit(r.Context(), req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToSubmitContact.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusAccepted, receipt)
}
