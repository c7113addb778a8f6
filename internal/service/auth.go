package service

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const AdminCookieName = "admin_token"

// AuthService authenticates the single admin account configured through
// ADMIN_EMAIL and ADMIN_PASSWORD_HASH and issues session tokens for it.
type AuthService struct {
	adminEmail   string
	passwordHash string
	jwtSecret    string
	jwtExpiry    time.Duration
	isProduction bool
}

func NewAuthService(adminEmail, passwordHash, jwtSecret string, jwtExpiry time.Duration, isProduction bool) *AuthService {
	return &AuthService{
		adminEmail:   strings.TrimSpace(strings.ToLower(adminEmail)),
		passwordHash: passwordHash,
		jwtSecret:    jwtSecret,
		jwtExpiry:    jwtExpiry,
		isProduction: isProduction,
	}
}

func (s *AuthService) JWTExpiry() time.Duration {
	return s.jwtExpiry
}

// Login checks the credentials against the configured admin account.
func (s *AuthService) Login(email, password string) error {
	if s.adminEmail == "" || s.passwordHash == "" {
		return ErrAdminDisabled
	}

	email = strings.TrimSpace(strings.ToLower(email))

	// Compare the password even on an email mismatch so both paths cost a bcrypt round.
	pwErr := s.ComparePassword(password, s.passwordHash)
	if email != s.adminEmail || pwErr != nil {
		return fmt.Errorf("invalid credentials: %w", ErrInvalidCredentials)
	}
	return nil
}

func (s *AuthService) HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

func (s *AuthService) ComparePassword(password, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

func (s *AuthService) GenerateJWT() (string, error) {
	claims := jwt.MapClaims{
		"sub":   "admin",
		"email": s.adminEmail,
		"exp":   time.Now().Add(s.jwtExpiry).Unix(),
		"iat":   time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func (s *AuthService) VerifyJWT(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	sub, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	if sub != "admin" || email != s.adminEmail {
		return nil, fmt.Errorf("token is not for the configured admin")
	}

	return claims, nil
}

func (s *AuthService) SetJWTCookie(w http.ResponseWriter, token string, expiry time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     AdminCookieName,
		Value:    token,
		Expires:  expiry,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.isProduction,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *AuthService) ClearJWTCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     AdminCookieName,
		Value:    "",
		Expires:  time.Unix(0, 0),
		Path:     "/",
		HttpOnly: true,
		Secure:   s.isProduction,
		SameSite: http.SameSiteLaxMode,
	})
}
