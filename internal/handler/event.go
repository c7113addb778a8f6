package handler

import (
	"net/http"

	"github.com/chapterweb/chaptersite/internal/service"
)

type EventHandler struct {
	eventService *service.EventService
	maxSizeMB    int
}

func NewEventHandler(eventService *service.EventService, maxSizeMB int) *EventHandler {
	return &EventHandler{
		eventService: eventService,
		maxSizeMB:    maxSizeMB,
	}
}

func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.eventService.Events()
	if err != nil {
		writeServiceError(w, r, err, "Failed to load events")
		return
	}
	writeJSON(w, http.StatusOK, events)
}

func (h *EventHandler) Show(w http.ResponseWriter, r *http.Request) {
	event, err := h.eventService.Event(r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, "Failed to load event")
		return
	}
	writeJSON(w, http.StatusOK, event)
}

func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in service.EventInput
	err := decodeJSON(w, r, &in)
	if err != nil {
		writeServiceError(w, r, err, "Failed to create event")
		return
	}

	event, err := h.eventService.Create(in)
	if err != nil {
		writeServiceError(w, r, err, "Failed to create event")
		return
	}
	writeJSON(w, http.StatusCreated, event)
}

func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	var in service.EventInput
	err := decodeJSON(w, r, &in)
	if err != nil {
		writeServiceError(w, r, err, "Failed to update event")
		return
	}

	event, err := h.eventService.Update(r.PathValue("id"), in)
	if err != nil {
		writeServiceError(w, r, err, "Failed to update event")
		return
	}
	writeJSON(w, http.StatusOK, event)
}

func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.eventService.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, "Failed to delete event")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *EventHandler) UploadPoster(w http.ResponseWriter, r *http.Request) {
	err := parseMultipart(w, r, h.maxSizeMB, 1)
	if err != nil {
		writeServiceError(w, r, err, "Failed to upload poster")
		return
	}

	file, err := formFile(r, "file")
	if err != nil {
		writeServiceError(w, r, err, "Failed to upload poster")
		return
	}

	event, err := h.eventService.SetPoster(r.Context(), r.PathValue("id"), file)
	if err != nil {
		writeServiceError(w, r, err, "Failed to upload poster")
		return
	}
	writeJSON(w, http.StatusOK, event)
}

func (h *EventHandler) DeletePoster(w http.ResponseWriter, r *http.Request) {
	event, result, err := h.eventService.ClearPoster(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, "Failed to remove poster")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"event": event, "delete": result})
}
