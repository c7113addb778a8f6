package ctxkeys

import (
	"context"

	"github.com/chapterweb/chaptersite/internal/config"
)

// contextKey is a type for context keys to avoid collisions
type contextKey string

const (
	AdminKey     contextKey = "admin"
	ConfigKey    contextKey = "config"
	CSRFTokenKey contextKey = "csrf_token"
)

// Admin returns the email of the signed-in admin, or "" for visitors.
func Admin(ctx context.Context) string {
	email, _ := ctx.Value(AdminKey).(string)
	return email
}

func WithAdmin(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, AdminKey, email)
}

func Config(ctx context.Context) *config.Config {
	cfg, _ := ctx.Value(ConfigKey).(*config.Config)
	return cfg
}

func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, ConfigKey, cfg)
}

func CSRFToken(ctx context.Context) string {
	token, _ := ctx.Value(CSRFTokenKey).(string)
	return token
}

func WithCSRFToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, CSRFTokenKey, token)
}
