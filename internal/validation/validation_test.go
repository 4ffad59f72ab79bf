package validation

import (
	"errors"
	"testing"

	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/api/request"
)

func TestValidateTicker(t *testing.T) {
	valid := []string{"DIV", "SCHD", "BRK.B", "VUSA-L", "1234"}
	for _, ticker := range valid {
		if err := ValidateTicker(ticker); err != nil {
			t.Errorf("Expected %q to be valid, got %v", ticker, err)
		}
	}

	invalid := []string{"", "schd", ".DIV", "TOOLONGTICKER", "DI V", "DIV;"}
	for _, ticker := range invalid {
		if err := ValidateTicker(ticker); !errors.Is(err, ErrInvalidTicker) {
			t.Errorf("Expected %q to be invalid, got %v", ticker, err)
		}
	}
}

func TestValidateContact(t *testing.T) {
	valid := request.ContactRequest{
		Name:    "Jo",
		Email:   "jo@example.com",
		Message: "Hello",
	}

	t.Run("accepts a minimal request", func(t *testing.T) {
		if err := ValidateContact(valid); err != nil {
			t.Errorf("Expected valid, got %v", err)
		}
	})

	t.Run("accepts a known category", func(t *testing.T) {
		req := valid
		req.Category = "Report a Bug"
		if err := ValidateContact(req); err != nil {
			t.Errorf("Expected valid, got %v", err)
		}
	})

	t.Run("accepts whitespace-only name and message", func(t *testing.T) {
		req := valid
		req.Name = " "
		req.Message = "\t"
		if err := ValidateContact(req); err != nil {
			t.Errorf("Expected valid, got %v", err)
		}
	})

	tests := []struct {
		name   string
		modify func(*request.ContactRequest)
		field  string
	}{
		{"empty name", func(r *request.ContactRequest) { r.Name = "" }, "name"},
		{"missing email", func(r *request.ContactRequest) { r.Email = "" }, "email"},
		{"email without at", func(r *request.ContactRequest) { r.Email = "jo.example.com" }, "email"},
		{"missing message", func(r *request.ContactRequest) { r.Message = "" }, "message"},
		{"unknown category", func(r *request.ContactRequest) { r.Category = "Spam" }, "category"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.modify(&req)

			err := ValidateContact(req)

			var verr *Error
			if !errors.As(err, &verr) {
				t.Fatalf("Expected *Error, got %v", err)
			}
			if _, ok := verr.Fields[tt.field]; !ok {
				t.Errorf("Expected error on %s, got %v", tt.field, verr.Fields)
			}
		})
	}

	t.Run("reports every field in a stable order", func(t *testing.T) {
		err := ValidateContact(request.ContactRequest{})
		want := "email: email is required; message: message is required; name: name is required"
		if err == nil || err.Error() != want {
			t.Errorf("Expected %q, got %v", want, err)
		}
	})
}
