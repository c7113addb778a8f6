package middleware

import (
	"net/http"

	"github.com/chapterweb/chaptersite/internal/ctxkeys"
	"github.com/chapterweb/chaptersite/internal/service"
)

// AdminAuth checks for the admin JWT cookie and adds the admin to context if valid
func AdminAuth(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(service.AdminCookieName)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := authService.VerifyJWT(cookie.Value)
			if err != nil {
				// Expired or signed with a rotated secret
				authService.ClearJWTCookie(w)
				next.ServeHTTP(w, r)
				return
			}

			email, _ := claims["email"].(string)
			ctx := ctxkeys.WithAdmin(r.Context(), email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin rejects requests without an admin session
func RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if ctxkeys.Admin(r.Context()) == "" {
			writeError(w, http.StatusUnauthorized, "Authentication required")
			return
		}
		next.ServeHTTP(w, r)
	}
}
