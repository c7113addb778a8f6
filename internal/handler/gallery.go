package handler

import (
	"net/http"

	"github.com/chapterweb/chaptersite/internal/service"
)

type GalleryHandler struct {
	galleryService *service.GalleryService
	maxSizeMB      int
}

func NewGalleryHandler(galleryService *service.GalleryService, maxSizeMB int) *GalleryHandler {
	return &GalleryHandler{
		galleryService: galleryService,
		maxSizeMB:      maxSizeMB,
	}
}

func (h *GalleryHandler) List(w http.ResponseWriter, r *http.Request) {
	images, err := h.galleryService.Images(r.URL.Query().Get("category"))
	if err != nil {
		writeServiceError(w, r, err, "Failed to load gallery")
		return
	}
	writeJSON(w, http.StatusOK, images)
}

func (h *GalleryHandler) Create(w http.ResponseWriter, r *http.Request) {
	err := parseMultipart(w, r, h.maxSizeMB, 1)
	if err != nil {
		writeServiceError(w, r, err, "Failed to add image")
		return
	}

	file, err := formFile(r, "file")
	if err != nil {
		writeServiceError(w, r, err, "Failed to add image")
		return
	}

	image, err := h.galleryService.Create(r.Context(), service.GalleryInput{
		Title:    r.FormValue("title"),
		Category: r.FormValue("category"),
	}, file)
	if err != nil {
		writeServiceError(w, r, err, "Failed to add image")
		return
	}
	writeJSON(w, http.StatusCreated, image)
}

func (h *GalleryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.galleryService.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, "Failed to delete image")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
