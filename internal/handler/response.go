package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/chapterweb/chaptersite/internal/repository"
	"github.com/chapterweb/chaptersite/internal/service"
	"github.com/chapterweb/chaptersite/internal/storage"
)

const (
	maxJSONBody      = 1 << 20
	multipartMemory  = 32 << 20
	multipartOverrun = 1 << 20 // Headers and form fields on top of the files
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
	err := json.NewDecoder(r.Body).Decode(v)
	if err != nil {
		return &service.ValidationError{Message: "invalid JSON body"}
	}
	return nil
}

var notFoundErrors = []error{
	repository.ErrEventNotFound,
	repository.ErrNoticeNotFound,
	repository.ErrGalleryImageNotFound,
	repository.ErrHighlightNotFound,
	repository.ErrMemberNotFound,
	repository.ErrUnknownGroup,
	service.ErrPageNotFound,
	service.ErrUnknownSection,
}

// writeServiceError maps service and repository errors to a status and a JSON body.
// Unexpected errors are logged and answered with fallback.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var valErr *service.ValidationError
	if errors.As(err, &valErr) {
		writeError(w, http.StatusBadRequest, valErr.Error())
		return
	}

	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
	}

	if errors.Is(err, storage.ErrNotConfigured) {
		writeError(w, http.StatusServiceUnavailable, "File storage is not configured")
		return
	}

	var writeErr *service.StorageWriteError
	if errors.As(err, &writeErr) {
		slog.Error("storage write failed", "error", err, "path", r.URL.Path)
		writeError(w, http.StatusBadGateway, "Failed to upload "+writeErr.Name)
		return
	}

	slog.Error(fallback, "error", err, "method", r.Method, "path", r.URL.Path)
	writeError(w, http.StatusInternalServerError, fallback)
}

// parseMultipart reads a multipart form capped at the configured upload size per file.
func parseMultipart(w http.ResponseWriter, r *http.Request, maxSizeMB, maxFiles int) error {
	limit := int64(maxSizeMB)<<20*int64(max(maxFiles, 1)) + multipartOverrun
	r.Body = http.MaxBytesReader(w, r.Body, limit)

	err := r.ParseMultipartForm(multipartMemory)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return &service.ValidationError{Message: "request body too large"}
		}
		return &service.ValidationError{Message: "invalid multipart form"}
	}
	return nil
}

// formFile returns the single file posted under field.
func formFile(r *http.Request, field string) (service.FileInput, error) {
	files := r.MultipartForm.File[field]
	if len(files) == 0 {
		return service.FileInput{}, &service.ValidationError{Field: field, Message: "file is required"}
	}
	return service.FileFromHeader(files[0]), nil
}
