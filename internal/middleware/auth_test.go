package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chapterweb/chaptersite/internal/ctxkeys"
	"github.com/chapterweb/chaptersite/internal/service"
)

func adminHandler(auth *service.AuthService) http.Handler {
	return AdminAuth(auth)(RequireAdmin(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(ctxkeys.Admin(r.Context())))
	}))
}

func TestRequireAdminWithoutSession(t *testing.T) {
	auth := service.NewAuthService("admin@chapter.example", "", "secret", time.Hour, false)

	rec := httptest.NewRecorder()
	adminHandler(auth).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/session", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Authentication required")
}

func TestAdminAuthAcceptsValidCookie(t *testing.T) {
	auth := service.NewAuthService("admin@chapter.example", "", "secret", time.Hour, false)
	token, err := auth.GenerateJWT()
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin/session", nil)
	req.AddCookie(&http.Cookie{Name: service.AdminCookieName, Value: token})

	rec := httptest.NewRecorder()
	adminHandler(auth).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin@chapter.example", rec.Body.String())
}

func TestAdminAuthClearsForeignCookie(t *testing.T) {
	other := service.NewAuthService("admin@chapter.example", "", "rotated-secret", time.Hour, false)
	token, err := other.GenerateJWT()
	require.NoError(t, err)

	auth := service.NewAuthService("admin@chapter.example", "", "secret", time.Hour, false)
	req := httptest.NewRequest(http.MethodGet, "/admin/session", nil)
	req.AddCookie(&http.Cookie{Name: service.AdminCookieName, Value: token})

	rec := httptest.NewRecorder()
	adminHandler(auth).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var cleared bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == service.AdminCookieName && c.Value == "" {
			cleared = true
		}
	}
	assert.True(t, cleared)
}
