package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	cfg "github.com/chapterweb/chaptersite/internal/config"
)

// ErrNotConfigured is returned by writes and removals when no object store credentials are present.
var ErrNotConfigured = errors.New("storage not configured")

// UploadOptions mirrors the store's write options. Writes never overwrite an existing key.
type UploadOptions struct {
	ContentType  string
	CacheControl string
	Size         int64 // -1 when unknown
}

// Client is the narrow surface of the object store used by the application.
type Client interface {
	// Upload writes r to bucket/path and fails if an object already exists at that key.
	Upload(ctx context.Context, bucket, path string, r io.Reader, opts UploadOptions) error

	// PublicURL returns the browser-accessible URL of bucket/path.
	PublicURL(bucket, path string) string

	// Remove deletes all paths from bucket in a single request.
	Remove(ctx context.Context, bucket string, paths []string) error
}

// New builds the object store client selected by STORAGE_DRIVER.
// Without a driver or credentials it returns Unconfigured so callers never need nil checks.
func New(c *cfg.Config) (Client, error) {
	codec := NewCodec(c.StoragePublicURL)

	if !c.StorageConfigured() {
		slog.Warn("object storage not configured, uploads disabled",
			"hint", "set STORAGE_DRIVER, STORAGE_ACCESS_KEY and STORAGE_SECRET_KEY")
		return NewUnconfigured(codec), nil
	}

	slog.Info("initializing object storage",
		"driver", c.StorageDriver,
		"endpoint", c.StorageEndpoint,
		"buckets", c.StorageBuckets,
	)

	switch c.StorageDriver {
	case "s3":
		return NewS3Client(S3Config{
			Region:    c.StorageRegion,
			AccessKey: c.StorageAccessKey,
			SecretKey: c.StorageSecretKey,
			Endpoint:  c.StorageEndpoint,
			Buckets:   c.StorageBuckets,
		}, codec)
	case "minio":
		return NewMinioClient(MinioConfig{
			Endpoint:  c.StorageEndpoint,
			AccessKey: c.StorageAccessKey,
			SecretKey: c.StorageSecretKey,
			UseSSL:    c.StorageUseSSL,
			Buckets:   c.StorageBuckets,
		}, codec)
	default:
		return nil, fmt.Errorf("unknown storage driver %q (expected s3 or minio)", c.StorageDriver)
	}
}

// Unconfigured stands in for the object store when no credentials are present.
// Uploads and removals are refused with ErrNotConfigured.
type Unconfigured struct {
	codec *Codec
}

func NewUnconfigured(codec *Codec) *Unconfigured {
	return &Unconfigured{codec: codec}
}

func (u *Unconfigured) Upload(ctx context.Context, bucket, path string, r io.Reader, opts UploadOptions) error {
	return ErrNotConfigured
}

func (u *Unconfigured) PublicURL(bucket, path string) string {
	return u.codec.PublicURL(bucket, path)
}

// Remove reports ErrNotConfigured so callers can tell "nothing removed" from a real delete.
func (u *Unconfigured) Remove(ctx context.Context, bucket string, paths []string) error {
	slog.Debug("storage not configured, skipping remove", "bucket", bucket, "paths", paths)
	return ErrNotConfigured
}
