package validation

import (
	"fmt"
	"strings"

	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/api/request"
	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/model"
)

// ValidateContact checks the contact form: name and message must be non-empty
// and the email must contain an "@". Whitespace counts as content. An empty
// category is allowed.
func ValidateContact(req request.ContactRequest) error {
	errors := make(map[string]string)

	if req.Name == "" {
		errors["name"] = "name is required"
	}

	if req.Email == "" {
		errors["email"] = "email is required"
	} else if !strings.Contains(req.Email, "@") {
		errors["email"] = "email must contain @"
	}

	if req.Message == "" {
		errors["message"] = "message is required"
	}

	if req.Category != "" && !model.ValidContactCategories[model.ContactCategory(req.Category)] {
		errors["category"] = fmt.Sprintf("invalid category: %s", req.Category)
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
