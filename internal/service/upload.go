package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/chapterweb/chaptersite/internal/model"
	"github.com/chapterweb/chaptersite/internal/storage"
)

// UploadService writes files to the object store under generated keys and removes them again.
type UploadService struct {
	store         storage.Client
	codec         *storage.Codec
	defaultBucket string
	cacheControl  string
}

func NewUploadService(store storage.Client, codec *storage.Codec, defaultBucket string, cacheControlSeconds int) *UploadService {
	return &UploadService{
		store:         store,
		codec:         codec,
		defaultBucket: defaultBucket,
		cacheControl:  fmt.Sprintf("max-age=%d", cacheControlSeconds),
	}
}

type UploadInput struct {
	Reader      io.Reader
	Name        string // Original filename
	ContentType string
	Size        int64 // -1 when unknown
	Folder      string
	Bucket      string // Empty means the default bucket
}

func (s *UploadService) DefaultBucket() string {
	return s.defaultBucket
}

func (s *UploadService) bucket(bucket string) string {
	if bucket == "" {
		return s.defaultBucket
	}
	return bucket
}

// Upload stores the file under a fresh key and returns how to reach it.
// Size and type are expected to be validated by the caller.
func (s *UploadService) Upload(ctx context.Context, in UploadInput) (*model.StoredFile, error) {
	bucket := s.bucket(in.Bucket)
	path := s.codec.Key(in.Name, in.Folder)

	err := s.store.Upload(ctx, bucket, path, in.Reader, storage.UploadOptions{
		ContentType:  in.ContentType,
		CacheControl: s.cacheControl,
		Size:         in.Size,
	})
	if err != nil {
		uploadsTotal.WithLabelValues(bucket, "error").Inc()
		return nil, &StorageWriteError{Bucket: bucket, Path: path, Name: in.Name, Err: err}
	}

	uploadsTotal.WithLabelValues(bucket, "ok").Inc()
	slog.Info("file uploaded", "bucket", bucket, "path", path, "name", in.Name, "size", in.Size)

	return &model.StoredFile{
		Path: path,
		URL:  s.store.PublicURL(bucket, path),
		Name: in.Name,
		Type: in.ContentType,
	}, nil
}

// Delete removes the referenced objects from bucket with a single store call.
// A reference is a storage path or a public URL; URLs that do not belong to the
// store (data URIs, foreign links, other buckets) are skipped, and so is
// everything when no store is configured. Store errors are logged and
// returned in the result, never as a Go error, since callers proceed regardless.
func (s *UploadService) Delete(ctx context.Context, bucket string, refs ...string) model.DeleteResult {
	bucket = s.bucket(bucket)
	result := model.DeleteResult{Bucket: bucket}

	seen := make(map[string]bool, len(refs))
	for _, ref := range refs {
		ref = strings.TrimSpace(ref)
		if ref == "" {
			continue
		}

		path := ref
		if s.codec.IsURL(ref) {
			owner, derived, ok := s.codec.Locate(ref)
			if !ok {
				result.Skipped = append(result.Skipped, ref)
				continue
			}
			if owner != bucket {
				// The key belongs to another bucket.
				slog.Warn("skipping reference from another bucket", "bucket", bucket, "url_bucket", owner, "path", derived)
				result.Skipped = append(result.Skipped, ref)
				continue
			}
			path = derived
		}

		if !seen[path] {
			seen[path] = true
			result.Paths = append(result.Paths, path)
		}
	}

	if len(result.Paths) == 0 {
		result.Outcome = model.DeleteOutcomeSkipped
		deletesTotal.WithLabelValues(bucket, string(result.Outcome)).Inc()
		return result
	}

	err := s.store.Remove(ctx, bucket, result.Paths)
	if errors.Is(err, storage.ErrNotConfigured) {
		result.Outcome = model.DeleteOutcomeSkipped
		result.Skipped = append(result.Skipped, result.Paths...)
		result.Paths = nil
		result.Error = err.Error()
		deletesTotal.WithLabelValues(bucket, string(result.Outcome)).Inc()
		return result
	}
	if err != nil {
		delErr := &StorageDeleteError{Bucket: bucket, Paths: result.Paths, Err: err}
		slog.Warn("failed to delete files from storage", "error", err, "bucket", bucket, "paths", result.Paths)
		result.Outcome = model.DeleteOutcomeFailed
		result.Err = delErr
		result.Error = delErr.Error()
	} else {
		result.Outcome = model.DeleteOutcomeDeleted
	}

	deletesTotal.WithLabelValues(bucket, string(result.Outcome)).Inc()
	return result
}
