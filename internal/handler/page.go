package handler

import (
	"net/http"

	"github.com/chapterweb/chaptersite/internal/service"
)

// PageHandler serves the markdown-backed projects and achievements sections.
type PageHandler struct {
	pageService *service.PageService
}

func NewPageHandler(pageService *service.PageService) *PageHandler {
	return &PageHandler{
		pageService: pageService,
	}
}

func (h *PageHandler) List(w http.ResponseWriter, r *http.Request) {
	pages, err := h.pageService.Pages(r.PathValue("section"))
	if err != nil {
		writeServiceError(w, r, err, "Failed to load pages")
		return
	}
	writeJSON(w, http.StatusOK, pages)
}

func (h *PageHandler) Show(w http.ResponseWriter, r *http.Request) {
	page, err := h.pageService.Page(r.PathValue("section"), r.PathValue("slug"))
	if err != nil {
		writeServiceError(w, r, err, "Failed to load page")
		return
	}
	writeJSON(w, http.StatusOK, page)
}
