package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/resend/resend-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chapterweb/chaptersite/internal/service"
)

type stubSender struct {
	sent int
	err  error
}

func (s *stubSender) SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.sent++
	return &resend.SendEmailResponse{Id: "msg"}, nil
}

func newContactHandler(sender *stubSender) *ContactHandler {
	email := service.NewEmailServiceWithSender(sender, "Chapter <noreply@chapter.example>", "inbox@chapter.example", "https://chapter.example", "Chapter", false)
	return NewContactHandler(service.NewContactService(email))
}

func postContact(h *ContactHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Send(rec, req)
	return rec
}

func TestContactSend(t *testing.T) {
	sender := &stubSender{}
	rec := postContact(newContactHandler(sender), `{"name":"Asha","email":"asha@example.com","message":"Hello!"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, sender.sent)

	var body contactResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.NotEmpty(t, body.Message)
}

func TestContactSendRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"name":`},
		{"missing message", `{"name":"Asha","email":"asha@example.com"}`},
		{"bad email", `{"name":"Asha","email":"not-an-email","message":"hi"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := &stubSender{}
			rec := postContact(newContactHandler(sender), tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Zero(t, sender.sent)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestContactSendProviderFailure(t *testing.T) {
	rec := postContact(newContactHandler(&stubSender{err: errors.New("provider down")}),
		`{"name":"Asha","email":"asha@example.com","message":"Hello!"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to send message")
	assert.NotContains(t, rec.Body.String(), "provider down")
}

func TestContactPreflight(t *testing.T) {
	rec := httptest.NewRecorder()
	newContactHandler(&stubSender{}).Preflight(rec, httptest.NewRequest(http.MethodOptions, "/api/contact", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "POST, OPTIONS", rec.Header().Get("Allow"))
}
