package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/chapterweb/chaptersite/internal/validation"
)

const maxContactMessageLen = 5000

type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Normalize trims the fields and checks all three are present and well formed.
func (m *ContactMessage) Normalize() error {
	m.Name = strings.TrimSpace(m.Name)
	m.Email = strings.TrimSpace(m.Email)
	m.Message = strings.TrimSpace(m.Message)

	if m.Name == "" || m.Email == "" || m.Message == "" {
		return newValidationError("", "name, email and message are required")
	}

	err := validation.ValidateLength("name", m.Name, 100)
	if err != nil {
		return newValidationError("name", err.Error())
	}

	err = validation.ValidateEmail(m.Email)
	if err != nil {
		return newValidationError("email", err.Error())
	}

	err = validation.ValidateLength("message", m.Message, maxContactMessageLen)
	if err != nil {
		return newValidationError("message", err.Error())
	}

	return nil
}

type ContactService struct {
	email *EmailService
}

func NewContactService(email *EmailService) *ContactService {
	return &ContactService{email: email}
}

// Send relays msg to the inbox and auto-replies to the sender.
// It succeeds only if both mails go out.
func (s *ContactService) Send(ctx context.Context, msg ContactMessage) error {
	err := msg.Normalize()
	if err != nil {
		contactMessagesTotal.WithLabelValues("invalid").Inc()
		return err
	}

	err = s.email.SendContactNotification(ctx, msg)
	if err != nil {
		contactMessagesTotal.WithLabelValues("error").Inc()
		slog.Error("failed to send contact notification", "error", err, "from", msg.Email)
		return fmt.Errorf("send notification: %w", err)
	}

	err = s.email.SendContactAutoReply(ctx, msg)
	if err != nil {
		contactMessagesTotal.WithLabelValues("error").Inc()
		slog.Error("failed to send contact auto-reply", "error", err, "to", msg.Email)
		return fmt.Errorf("send auto-reply: %w", err)
	}

	contactMessagesTotal.WithLabelValues("sent").Inc()
	return nil
}
