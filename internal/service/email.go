package service

import (
	"context"
	"log/slog"

	"github.com/resend/resend-go/v2"
)

// EmailSender is the part of the Resend client the email service uses.
type EmailSender interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

type EmailService struct {
	sender    EmailSender
	fromEmail string
	inbox     string
	isDev     bool
	appURL    string
	appName   string
}

func NewEmailService(apiKey, fromEmail, inbox, appURL, appName string, isDev bool) *EmailService {
	var sender EmailSender
	if apiKey != "" && !isDev {
		sender = resend.NewClient(apiKey).Emails
	}
	return NewEmailServiceWithSender(sender, fromEmail, inbox, appURL, appName, isDev)
}

// NewEmailServiceWithSender builds the service around an existing sender.
// A nil sender outside development makes every send fail with ErrEmailNotConfigured.
func NewEmailServiceWithSender(sender EmailSender, fromEmail, inbox, appURL, appName string, isDev bool) *EmailService {
	return &EmailService{
		sender:    sender,
		fromEmail: fromEmail,
		inbox:     inbox,
		isDev:     isDev,
		appURL:    appURL,
		appName:   appName,
	}
}

// SendContactNotification forwards a contact form message to the chapter inbox.
// Replies go straight to the visitor.
func (s *EmailService) SendContactNotification(ctx context.Context, msg ContactMessage) error {
	subject, body := contactNotificationTemplate(msg, s.appName)
	return s.send(ctx, "contact_notification", &resend.SendEmailRequest{
		From:    s.fromEmail,
		To:      []string{s.inbox},
		ReplyTo: msg.Email,
		Subject: subject,
		Text:    body,
	})
}

// SendContactAutoReply confirms receipt to the visitor.
func (s *EmailService) SendContactAutoReply(ctx context.Context, msg ContactMessage) error {
	subject, body := contactAutoReplyTemplate(msg, s.appURL, s.appName)
	return s.send(ctx, "contact_auto_reply", &resend.SendEmailRequest{
		From:    s.fromEmail,
		To:      []string{msg.Email},
		Subject: subject,
		Text:    body,
	})
}

func (s *EmailService) send(ctx context.Context, kind string, params *resend.SendEmailRequest) error {
	if s.isDev {
		slog.Info("email sent (dev mode)", "type", kind, "to", params.To, "subject", params.Subject)
		return nil
	}

	if s.sender == nil {
		return ErrEmailNotConfigured
	}

	_, err := s.sender.SendWithContext(ctx, params)
	if err != nil {
		return err
	}

	slog.Info("email sent", "type", kind, "to", params.To)
	return nil
}
