package handler

import (
	"net/http"

	"github.com/chapterweb/chaptersite/internal/service"
	"github.com/chapterweb/chaptersite/internal/validation"
)

// UploadHandler exposes the upload and delete gateways directly to the admin client.
type UploadHandler struct {
	uploadService *service.UploadService
	buckets       func(string) bool
	maxSizeMB     int
}

func NewUploadHandler(uploadService *service.UploadService, hasBucket func(string) bool, maxSizeMB int) *UploadHandler {
	return &UploadHandler{
		uploadService: uploadService,
		buckets:       hasBucket,
		maxSizeMB:     maxSizeMB,
	}
}

func (h *UploadHandler) bucket(name string) (string, bool) {
	if name == "" {
		return h.uploadService.DefaultBucket(), true
	}
	return name, h.buckets(name)
}

// Upload stores the "file" part under the optional "folder" and "bucket" fields.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	err := parseMultipart(w, r, h.maxSizeMB, 1)
	if err != nil {
		writeServiceError(w, r, err, "Failed to upload file")
		return
	}

	bucket, ok := h.bucket(r.FormValue("bucket"))
	if !ok {
		writeError(w, http.StatusBadRequest, "bucket: unknown bucket")
		return
	}

	headers := r.MultipartForm.File["file"]
	if len(headers) == 0 {
		writeError(w, http.StatusBadRequest, "file: file is required")
		return
	}
	header := headers[0]

	err = validation.ValidateFileSize(header.Size, h.maxSizeMB)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	file, err := header.Open()
	if err != nil {
		writeServiceError(w, r, err, "Failed to read upload")
		return
	}
	defer func() { _ = file.Close() }()

	stored, err := h.uploadService.Upload(r.Context(), service.UploadInput{
		Reader:      file,
		Name:        header.Filename,
		ContentType: validation.DetectContentType(header),
		Size:        header.Size,
		Folder:      r.FormValue("folder"),
		Bucket:      bucket,
	})
	if err != nil {
		writeServiceError(w, r, err, "Failed to upload file")
		return
	}
	writeJSON(w, http.StatusCreated, stored)
}

type deleteRequest struct {
	Bucket string   `json:"bucket"`
	Refs   []string `json:"refs"`
}

// Delete removes objects by path or public URL. A store failure is reported
// in the result with 200, matching how the rest of the admin treats it.
func (h *UploadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req deleteRequest
	err := decodeJSON(w, r, &req)
	if err != nil {
		writeServiceError(w, r, err, "Failed to delete files")
		return
	}

	bucket, ok := h.bucket(req.Bucket)
	if !ok {
		writeError(w, http.StatusBadRequest, "bucket: unknown bucket")
		return
	}

	result := h.uploadService.Delete(r.Context(), bucket, req.Refs...)
	writeJSON(w, http.StatusOK, result)
}
