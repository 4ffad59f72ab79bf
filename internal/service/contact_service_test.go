package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/api/request"
	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/model"
	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/service"
	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/testutil"
)

func TestContactService_Submit(t *testing.T) {
	svc := testutil.NewTestContactService(t)

	receipt, err := svc.Submit(context.Background(), request.ContactRequest{
		Name:    "Jo",
		Email:   "jo@example.com",
		Message: "Where is VYM?",
	})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if _, err := uuid.Parse(receipt.ID); err != nil {
		t.Errorf("Expected UUID receipt id, got '%s'", receipt.ID)
	}
	want := "Thank you for contacting us! We'll respond to jo@example.com within 24-48 hours."
	if receipt.Message != want {
		t.Errorf("Expected '%s', got '%s'", want, receipt.Message)
	}
}

func TestContactService_Compose(t *testing.T) {
	svc := testutil.NewTestContactService(t)

	raw, err := svc.Compose(model.ContactMessage{
		Name:     "Jo",
		Email:    "jo@example.com",
		Category: model.ContactGeneral,
		Message:  "Hello",
	})
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}

	msg := string(raw)
	for _, want := range []string{
		"To: " + service.SupportAddress,
		"Reply-To:",
		"jo@example.com",
		"No subject",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("Expected message to contain %q:\n%s", want, msg)
		}
	}
}

func TestContactBody(t *testing.T) {
	got := service.ContactBody(model.ContactMessage{
		Name:     "Jo",
		Email:    "jo@example.com",
		Category: model.ContactGeneral,
		Subject:  "Data",
		Message:  "Hello",
	})

	want := "Name: Jo\nEmail: jo@example.com\nCategory: General Inquiry\nSubject: Data\n\nMessage:\nHello"
	if got != want {
		t.Errorf("Expected:\n%s\ngot:\n%s", want, got)
	}
}
