package handler

import (
	"net/http"

	"github.com/chapterweb/chaptersite/internal/model"
	"github.com/chapterweb/chaptersite/internal/service"
)

type MemberHandler struct {
	memberService *service.MemberService
	maxSizeMB     int
}

func NewMemberHandler(memberService *service.MemberService, maxSizeMB int) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
		maxSizeMB:     maxSizeMB,
	}
}

// group resolves the {group} path segment, writing a 404 when it is unknown.
func (h *MemberHandler) group(w http.ResponseWriter, r *http.Request) (model.MemberGroup, bool) {
	group, err := service.ParseGroup(r.PathValue("group"))
	if err != nil {
		writeServiceError(w, r, err, "Unknown member group")
		return "", false
	}
	return group, true
}

func (h *MemberHandler) List(w http.ResponseWriter, r *http.Request) {
	group, ok := h.group(w, r)
	if !ok {
		return
	}

	members, err := h.memberService.Members(group)
	if err != nil {
		writeServiceError(w, r, err, "Failed to load members")
		return
	}
	writeJSON(w, http.StatusOK, members)
}

func (h *MemberHandler) Create(w http.ResponseWriter, r *http.Request) {
	group, ok := h.group(w, r)
	if !ok {
		return
	}

	var in service.MemberInput
	err := decodeJSON(w, r, &in)
	if err != nil {
		writeServiceError(w, r, err, "Failed to create member")
		return
	}

	member, err := h.memberService.Create(group, in)
	if err != nil {
		writeServiceError(w, r, err, "Failed to create member")
		return
	}
	writeJSON(w, http.StatusCreated, member)
}

func (h *MemberHandler) Update(w http.ResponseWriter, r *http.Request) {
	group, ok := h.group(w, r)
	if !ok {
		return
	}

	var in service.MemberInput
	err := decodeJSON(w, r, &in)
	if err != nil {
		writeServiceError(w, r, err, "Failed to update member")
		return
	}

	member, err := h.memberService.Update(group, r.PathValue("id"), in)
	if err != nil {
		writeServiceError(w, r, err, "Failed to update member")
		return
	}
	writeJSON(w, http.StatusOK, member)
}

func (h *MemberHandler) Delete(w http.ResponseWriter, r *http.Request) {
	group, ok := h.group(w, r)
	if !ok {
		return
	}

	err := h.memberService.Delete(r.Context(), group, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, "Failed to delete member")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *MemberHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	group, ok := h.group(w, r)
	if !ok {
		return
	}

	err := parseMultipart(w, r, h.maxSizeMB, 1)
	if err != nil {
		writeServiceError(w, r, err, "Failed to upload photo")
		return
	}

	file, err := formFile(r, "file")
	if err != nil {
		writeServiceError(w, r, err, "Failed to upload photo")
		return
	}

	member, err := h.memberService.SetPhoto(r.Context(), group, r.PathValue("id"), file)
	if err != nil {
		writeServiceError(w, r, err, "Failed to upload photo")
		return
	}
	writeJSON(w, http.StatusOK, member)
}

func (h *MemberHandler) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	group, ok := h.group(w, r)
	if !ok {
		return
	}

	member, result, err := h.memberService.ClearPhoto(r.Context(), group, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, "Failed to remove photo")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"member": member, "delete": result})
}
