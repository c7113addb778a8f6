package service

import (
	"context"
	"errors"
	"testing"

	"github.com/resend/resend-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent   []*resend.SendEmailRequest
	failOn int // 1-based send number that fails, 0 never
}

func (f *fakeSender) SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	f.sent = append(f.sent, params)
	if f.failOn == len(f.sent) {
		return nil, errors.New("resend: 422 validation_error")
	}
	return &resend.SendEmailResponse{Id: "msg_123"}, nil
}

func newTestContact(sender EmailSender) *ContactService {
	email := NewEmailServiceWithSender(sender, "Chapter <noreply@chapter.example>", "inbox@chapter.example", "https://chapter.example", "Chapter", false)
	return NewContactService(email)
}

func TestContactSendsNotificationAndAutoReply(t *testing.T) {
	sender := &fakeSender{}
	svc := newTestContact(sender)

	err := svc.Send(context.Background(), ContactMessage{
		Name:    "  Priya ",
		Email:   "priya@student.example",
		Message: "How do I join the chapter?",
	})
	require.NoError(t, err)
	require.Len(t, sender.sent, 2)

	notification := sender.sent[0]
	assert.Equal(t, []string{"inbox@chapter.example"}, notification.To)
	assert.Equal(t, "priya@student.example", notification.ReplyTo)
	assert.Contains(t, notification.Subject, "Priya")
	assert.Contains(t, notification.Text, "How do I join the chapter?")

	reply := sender.sent[1]
	assert.Equal(t, []string{"priya@student.example"}, reply.To)
	assert.Contains(t, reply.Text, "Hi Priya,")
}

func TestContactRequiresAllFields(t *testing.T) {
	cases := []ContactMessage{
		{Email: "a@b.example", Message: "hi"},
		{Name: "A", Message: "hi"},
		{Name: "A", Email: "a@b.example", Message: "   "},
		{Name: "A", Email: "not-an-email", Message: "hi"},
	}

	for _, msg := range cases {
		sender := &fakeSender{}
		err := newTestContact(sender).Send(context.Background(), msg)

		var valErr *ValidationError
		assert.ErrorAs(t, err, &valErr, "%+v", msg)
		assert.Empty(t, sender.sent, "nothing sent for %+v", msg)
	}
}

func TestContactFailsWhenEitherSendFails(t *testing.T) {
	for _, failOn := range []int{1, 2} {
		sender := &fakeSender{failOn: failOn}
		err := newTestContact(sender).Send(context.Background(), ContactMessage{
			Name: "A", Email: "a@b.example", Message: "hi",
		})
		require.Error(t, err)

		var valErr *ValidationError
		assert.False(t, errors.As(err, &valErr))
		assert.Len(t, sender.sent, failOn, "stops at the failed send")
	}
}

func TestContactWithoutAPIKey(t *testing.T) {
	err := newTestContact(nil).Send(context.Background(), ContactMessage{
		Name: "A", Email: "a@b.example", Message: "hi",
	})
	assert.ErrorIs(t, err, ErrEmailNotConfigured)
}

func TestContactDevModeLogsOnly(t *testing.T) {
	email := NewEmailService("", "noreply@chapter.example", "inbox@chapter.example", "http://localhost:8090", "Chapter", true)
	err := NewContactService(email).Send(context.Background(), ContactMessage{
		Name: "A", Email: "a@b.example", Message: "hi",
	})
	assert.NoError(t, err)
}
