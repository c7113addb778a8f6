package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Application
	AppName     string
	AppEnv      string
	AppURL      string
	Port        string
	ContentPath string

	// Database (optional driver switch via ENV, default: sqlite)
	DBDriver     string
	DBConnection string

	// Admin
	JWTSecret         string
	JWTExpiry         time.Duration
	AdminEmail        string
	AdminPasswordHash string

	// Email
	EmailFrom    string
	ResendAPIKey string
	ContactInbox string

	// HTTP
	CORSAllowedOrigins []string

	// Observability (optional)
	SentryDSN string

	// Storage (S3-compatible: Supabase Storage S3 endpoint, AWS S3, MinIO, R2, etc.)
	StorageDriver        string // "s3", "minio" or "" (unconfigured)
	StorageEndpoint      string
	StorageRegion        string
	StorageAccessKey     string
	StorageSecretKey     string
	StorageUseSSL        bool
	StoragePublicURL     string // Base of public object URLs, e.g. https://<project>.supabase.co/storage/v1
	StorageBuckets       []string
	StorageDefaultBucket string
	StorageCacheControl  int // seconds

	// Uploads
	UploadMaxSizeMB int
	UploadMaxFiles  int

	// Rendered markdown pages cache
	PageCacheSize int
	PageCacheTTL  time.Duration
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := &Config{
		// Application
		AppName:     envString("APP_NAME", "Student Chapter"),
		AppEnv:      envRequired("APP_ENV"), // Required: 'development' or 'production'
		AppURL:      envRequired("APP_URL"),
		Port:        envString("PORT", "8090"),
		ContentPath: envString("CONTENT_PATH", "content"),

		// Database
		DBDriver:     envString("DB_DRIVER", "sqlite"),
		DBConnection: envString("DB_CONNECTION", "./data/chapter.db?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)"),

		// Admin
		JWTSecret:         envString("JWT_SECRET", ""),
		JWTExpiry:         envDuration("JWT_EXPIRY", 24*time.Hour),
		AdminEmail:        strings.ToLower(envString("ADMIN_EMAIL", "")),
		AdminPasswordHash: envString("ADMIN_PASSWORD_HASH", ""),

		// Email (RESEND_API_KEY optional in development, required in production)
		EmailFrom:    envString("EMAIL_FROM", "noreply@example.com"),
		ResendAPIKey: envString("RESEND_API_KEY", ""),
		ContactInbox: envString("CONTACT_INBOX", "chapter@example.com"),

		// HTTP
		CORSAllowedOrigins: envList("CORS_ALLOWED_ORIGINS", []string{"*"}),

		// Observability
		SentryDSN: envString("SENTRY_DSN", ""),

		// Storage (optional: without a driver uploads are refused and deletes are no-ops)
		StorageDriver:        envString("STORAGE_DRIVER", ""),
		StorageEndpoint:      envString("STORAGE_ENDPOINT", ""),
		StorageRegion:        envString("STORAGE_REGION", "us-east-1"),
		StorageAccessKey:     envString("STORAGE_ACCESS_KEY", ""),
		StorageSecretKey:     envString("STORAGE_SECRET_KEY", ""),
		StorageUseSSL:        envBool("STORAGE_USE_SSL", true),
		StoragePublicURL:     strings.TrimSuffix(envString("STORAGE_PUBLIC_URL", ""), "/"),
		StorageBuckets:       envList("STORAGE_BUCKETS", []string{"images", "notice-attachments"}),
		StorageDefaultBucket: envString("STORAGE_DEFAULT_BUCKET", "images"),
		StorageCacheControl:  envInt("STORAGE_CACHE_CONTROL", 3600),

		// Uploads
		UploadMaxSizeMB: envInt("UPLOAD_MAX_SIZE_MB", 10),
		UploadMaxFiles:  envInt("UPLOAD_MAX_FILES", 5),

		PageCacheSize: envInt("PAGE_CACHE_SIZE", 128),
		PageCacheTTL:  envDuration("PAGE_CACHE_TTL", 10*time.Minute),
	}

	if cfg.IsProduction() {
		validateProduction(cfg)
	}

	return cfg
}

// validateProduction ensures all required services are configured for production deployments.
// Development allows email to log instead of send and admin login to stay disabled.
func validateProduction(cfg *Config) {
	missing := []string{}
	if cfg.ResendAPIKey == "" {
		missing = append(missing, "RESEND_API_KEY")
	}
	if cfg.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if cfg.AdminPasswordHash == "" {
		missing = append(missing, "ADMIN_PASSWORD_HASH")
	}
	if len(missing) > 0 {
		slog.Error("production deployment requires configuration",
			"missing", missing,
			"hint", "set APP_ENV=development for local testing with email log mode")
		os.Exit(1)
	}
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("config invalid bool, using default", "key", key, "value", v, "default", def)
		return def
	}
	return b
}

func envInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil || i <= 0 {
		slog.Warn("config invalid int, using default", "key", key, "value", v, "default", def)
		return def
	}
	return i
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

// envList reads a comma separated list, dropping empty items.
func envList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var items []string
	for _, item := range strings.Split(v, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return def
	}
	return items
}

func envRequired(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	slog.Error("config required env var missing", "key", key)
	os.Exit(1)
	return ""
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// StorageConfigured reports whether an object store driver and credentials are present.
func (c *Config) StorageConfigured() bool {
	return c.StorageDriver != "" && c.StorageAccessKey != "" && c.StorageSecretKey != ""
}

// HasBucket reports whether bucket is one of the configured buckets.
func (c *Config) HasBucket(bucket string) bool {
	for _, b := range c.StorageBuckets {
		if b == bucket {
			return true
		}
	}
	return false
}

// Sanitized returns a copy of the config with only public/safe fields.
// All secrets, credentials, and sensitive data are excluded.
func (c *Config) Sanitized() *Config {
	return &Config{
		AppName: c.AppName,
		AppEnv:  c.AppEnv,
		AppURL:  c.AppURL,
		Port:    c.Port,

		EmailFrom: c.EmailFrom,

		StoragePublicURL:     c.StoragePublicURL,
		StorageBuckets:       c.StorageBuckets,
		StorageDefaultBucket: c.StorageDefaultBucket,
		UploadMaxSizeMB:      c.UploadMaxSizeMB,
		UploadMaxFiles:       c.UploadMaxFiles,
	}
}
