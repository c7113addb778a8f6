package handler

import (
	"errors"
	"net/http"

	"github.com/chapterweb/chaptersite/internal/service"
)

type ContactHandler struct {
	contactService *service.ContactService
}

func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

type contactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Send relays the contact form: 200 when both mails went out, 400 for bad input, 500 otherwise.
func (h *ContactHandler) Send(w http.ResponseWriter, r *http.Request) {
	var msg service.ContactMessage
	err := decodeJSON(w, r, &msg)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	err = h.contactService.Send(r.Context(), msg)
	if err != nil {
		var valErr *service.ValidationError
		if errors.As(err, &valErr) {
			writeError(w, http.StatusBadRequest, valErr.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to send message. Please try again later.")
		return
	}

	writeJSON(w, http.StatusOK, contactResponse{
		Success: true,
		Message: "Thanks for reaching out! We will get back to you soon.",
	})
}

// Preflight answers OPTIONS requests that reach the mux without CORS preflight headers.
func (h *ContactHandler) Preflight(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", "POST, OPTIONS")
	w.WriteHeader(http.StatusNoContent)
}
