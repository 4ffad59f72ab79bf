package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	gomail "gopkg.in/mail.v2"

	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/api/request"
	"github.com/ndewijer/Dividend-ETF-Tracker-Backend/internal/model"
)

// SupportAddress receives contact form messages.
const SupportAddress = "support@dividendtracker.app"

// ContactService accepts contact form submissions. Nothing is sent: the
// message is composed in memory and logged.
type ContactService struct {
	recipient string
	logger    *zap.Logger
}

// NewContactService creates a new ContactService addressed to recipient.
func NewContactService(recipient string, logger *zap.Logger) *ContactService {
	return &ContactService{
		recipient: recipient,
		logger:    logger,
	}
}

// Submit composes the message for a validated request and returns a receipt.
func (s *ContactService) Submit(_ context.Context, req request.ContactRequest) (model.ContactReceipt, error) {
	msg := model.ContactMessage{
		Name:     req.Name,
		Email:    req.Email,
		Category: model.ContactCategory(req.Category),
		Subject:  req.Subject,
		Message:  req.Message,
	}
	if msg.Category == "" {
		msg.Category = model.ContactGeneral
	}

	raw, err := s.Compose(msg)
	if err != nil {
		return model.ContactReceipt{}, fmt.Errorf("failed to compose contact message: %w", err)
	}

	id := uuid.New().String()
	s.logger.Info("contact form submitted",
		zap.String("id", id),
		zap.String("category", string(msg.Category)),
		zap.ByteString("message", raw))

	return model.ContactReceipt{
		ID:      id,
		Message: fmt.Sprintf("Thank you for contacting us! We'll respond to %s within 24-48 hours.", msg.Email),
	}, nil
}

// Compose renders msg as a MIME message addressed to the support inbox.
func (s *ContactService) Compose(msg model.ContactMessage) ([]byte, error) {
	m := gomail.NewMessage()
	m.SetHeader("From", s.recipient)
	m.SetAddressHeader("Reply-To", msg.Email, msg.Name)
	m.SetHeader("To", s.recipient)
	m.SetHeader("Subject", fmt.Sprintf("[%s] %s", msg.Category, subjectOrDefault(msg.Subject)))
	m.SetBody("text/plain", ContactBody(msg))

	var buf bytes.Buffer
	if _, err := m.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ContactBody formats the plain-text body of a contact message.
func ContactBody(msg model.ContactMessage) string {
	return fmt.Sprintf("Name: %s\nEmail: %s\nCategory: %s\nSubject: %s\n\nMessage:\n%s",
		msg.Name, msg.Email, msg.Category, subjectOrDefault(msg.Subject), msg.Message)
}

func subjectOrDefault(subject string) string {
	if subject == "" {
		return "No subject"
	}
	return subject
}
