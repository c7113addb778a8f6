package service

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuth(t *testing.T) *AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)
	return NewAuthService("Admin@Chapter.example", string(hash), "test-secret", time.Hour, false)
}

func TestLogin(t *testing.T) {
	auth := newTestAuth(t)

	assert.NoError(t, auth.Login(" admin@chapter.example ", "correct horse"))
	assert.ErrorIs(t, auth.Login("admin@chapter.example", "wrong"), ErrInvalidCredentials)
	assert.ErrorIs(t, auth.Login("someone@chapter.example", "correct horse"), ErrInvalidCredentials)
}

func TestLoginDisabledWithoutConfig(t *testing.T) {
	auth := NewAuthService("", "", "secret", time.Hour, false)
	assert.ErrorIs(t, auth.Login("a@b.example", "x"), ErrAdminDisabled)
}

func TestJWTRoundTrip(t *testing.T) {
	auth := newTestAuth(t)

	token, err := auth.GenerateJWT()
	require.NoError(t, err)

	claims, err := auth.VerifyJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@chapter.example", claims["email"])

	other := NewAuthService("admin@chapter.example", "x", "other-secret", time.Hour, false)
	_, err = other.VerifyJWT(token)
	assert.Error(t, err)
}

func TestJWTCookie(t *testing.T) {
	auth := newTestAuth(t)
	rec := httptest.NewRecorder()

	auth.SetJWTCookie(rec, "tok", time.Now().Add(time.Hour))
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, AdminCookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
}
