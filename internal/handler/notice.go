package handler

import (
	"net/http"
	"strconv"

	"github.com/chapterweb/chaptersite/internal/service"
)

type NoticeHandler struct {
	noticeService *service.NoticeService
	maxSizeMB     int
	maxFiles      int
}

func NewNoticeHandler(noticeService *service.NoticeService, maxSizeMB, maxFiles int) *NoticeHandler {
	return &NoticeHandler{
		noticeService: noticeService,
		maxSizeMB:     maxSizeMB,
		maxFiles:      maxFiles,
	}
}

func (h *NoticeHandler) List(w http.ResponseWriter, r *http.Request) {
	notices, err := h.noticeService.Notices()
	if err != nil {
		writeServiceError(w, r, err, "Failed to load notices")
		return
	}
	writeJSON(w, http.StatusOK, notices)
}

func (h *NoticeHandler) Show(w http.ResponseWriter, r *http.Request) {
	notice, err := h.noticeService.Notice(r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, "Failed to load notice")
		return
	}
	writeJSON(w, http.StatusOK, notice)
}

func (h *NoticeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in service.NoticeInput
	err := decodeJSON(w, r, &in)
	if err != nil {
		writeServiceError(w, r, err, "Failed to create notice")
		return
	}

	notice, err := h.noticeService.Create(in)
	if err != nil {
		writeServiceError(w, r, err, "Failed to create notice")
		return
	}
	writeJSON(w, http.StatusCreated, notice)
}

func (h *NoticeHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in service.NoticeInput
	err := decodeJSON(w, r, &in)
	if err != nil {
		writeServiceError(w, r, err, "Failed to update notice")
		return
	}

	notice, err := h.noticeService.Update(r.PathValue("id"), in)
	if err != nil {
		writeServiceError(w, r, err, "Failed to update notice")
		return
	}
	writeJSON(w, http.StatusOK, notice)
}

func (h *NoticeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.noticeService.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, "Failed to delete notice")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddAttachments uploads the "files" parts. Individually rejected files are
// listed in the response next to the updated notice.
func (h *NoticeHandler) AddAttachments(w http.ResponseWriter, r *http.Request) {
	err := parseMultipart(w, r, h.maxSizeMB, h.maxFiles)
	if err != nil {
		writeServiceError(w, r, err, "Failed to add attachments")
		return
	}

	headers := r.MultipartForm.File["files"]
	if len(headers) == 0 {
		writeError(w, http.StatusBadRequest, "files: at least one file is required")
		return
	}

	files := make([]service.FileInput, 0, len(headers))
	for _, header := range headers {
		files = append(files, service.FileFromHeader(header))
	}

	notice, result, err := h.noticeService.AddAttachments(r.Context(), r.PathValue("id"), files)
	if err != nil {
		writeServiceError(w, r, err, "Failed to add attachments")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"notice":   notice,
		"uploaded": result.Uploaded,
		"rejected": result.Rejected,
	})
}

func (h *NoticeHandler) RemoveAttachment(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "index must be a number")
		return
	}

	notice, result, err := h.noticeService.RemoveAttachment(r.Context(), r.PathValue("id"), index)
	if err != nil {
		writeServiceError(w, r, err, "Failed to remove attachment")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"notice": notice, "delete": result})
}
