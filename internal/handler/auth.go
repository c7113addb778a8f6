package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/chapterweb/chaptersite/internal/ctxkeys"
	"github.com/chapterweb/chaptersite/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Email     string `json:"email"`
	CSRFToken string `json:"csrf_token"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	err := decodeJSON(w, r, &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	err = h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrAdminDisabled) {
			writeError(w, http.StatusServiceUnavailable, "Admin login is not configured")
			return
		}
		slog.Warn("admin login failed", "email", req.Email)
		writeError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := h.authService.GenerateJWT()
	if err != nil {
		slog.Error("failed to generate JWT", "error", err)
		writeError(w, http.StatusInternalServerError, "An error occurred. Please try again.")
		return
	}

	h.authService.SetJWTCookie(w, token, time.Now().Add(h.authService.JWTExpiry()))
	slog.Info("admin logged in", "email", req.Email)

	writeJSON(w, http.StatusOK, sessionResponse{
		Email:     req.Email,
		CSRFToken: ctxkeys.CSRFToken(r.Context()),
	})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.authService.ClearJWTCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

// Session reports the signed-in admin and the CSRF token to send with writes.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, sessionResponse{
		Email:     ctxkeys.Admin(r.Context()),
		CSRFToken: ctxkeys.CSRFToken(r.Context()),
	})
}
