package handler

import (
	"net/http"

	"github.com/chapterweb/chaptersite/internal/service"
)

type HighlightHandler struct {
	highlightService *service.HighlightService
	maxSizeMB        int
}

func NewHighlightHandler(highlightService *service.HighlightService, maxSizeMB int) *HighlightHandler {
	return &HighlightHandler{
		highlightService: highlightService,
		maxSizeMB:        maxSizeMB,
	}
}

func (h *HighlightHandler) List(w http.ResponseWriter, r *http.Request) {
	highlights, err := h.highlightService.Highlights()
	if err != nil {
		writeServiceError(w, r, err, "Failed to load highlights")
		return
	}
	writeJSON(w, http.StatusOK, highlights)
}

func (h *HighlightHandler) Create(w http.ResponseWriter, r *http.Request) {
	err := parseMultipart(w, r, h.maxSizeMB, 1)
	if err != nil {
		writeServiceError(w, r, err, "Failed to add highlight")
		return
	}

	file, err := formFile(r, "file")
	if err != nil {
		writeServiceError(w, r, err, "Failed to add highlight")
		return
	}

	highlight, err := h.highlightService.Create(r.Context(), service.HighlightInput{
		Title:         r.FormValue("title"),
		Description:   r.FormValue("description"),
		InstagramLink: r.FormValue("instagram_link"),
	}, file)
	if err != nil {
		writeServiceError(w, r, err, "Failed to add highlight")
		return
	}
	writeJSON(w, http.StatusCreated, highlight)
}

func (h *HighlightHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.highlightService.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, "Failed to delete highlight")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
