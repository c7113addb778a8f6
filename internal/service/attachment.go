package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"strings"

	"github.com/chapterweb/chaptersite/internal/model"
	"github.com/chapterweb/chaptersite/internal/storage"
	"github.com/chapterweb/chaptersite/internal/validation"
)

const (
	DefaultMaxSizeMB = 10
	DefaultMaxFiles  = 5
)

// FileInput is a file picked in an admin form, opened lazily so a
// rejected file is never read.
type FileInput struct {
	Name        string
	ContentType string
	Size        int64
	Open        func() (io.ReadCloser, error)
}

// FileFromHeader wraps a multipart part as a FileInput.
func FileFromHeader(header *multipart.FileHeader) FileInput {
	return FileInput{
		Name:        header.Filename,
		ContentType: validation.DetectContentType(header),
		Size:        header.Size,
		Open: func() (io.ReadCloser, error) {
			return header.Open()
		},
	}
}

// FileError names a file that could not be added and why.
type FileError struct {
	Name string `json:"name"`
	Err  error  `json:"-"`
	// Message is Err rendered for JSON responses
	Message string `json:"error"`
}

func newFileError(name string, err error) FileError {
	return FileError{Name: name, Err: err, Message: err.Error()}
}

func upload(ctx context.Context, uploads *UploadService, file FileInput, folder, bucket string) (*model.StoredFile, error) {
	r, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", file.Name, err)
	}
	defer func() { _ = r.Close() }()

	return uploads.Upload(ctx, UploadInput{
		Reader:      r,
		Name:        file.Name,
		ContentType: file.ContentType,
		Size:        file.Size,
		Folder:      folder,
		Bucket:      bucket,
	})
}

// SingleFileField manages a record field holding at most one uploaded file,
// such as an event poster or a member photo.
type SingleFileField struct {
	Uploads   *UploadService
	MaxSizeMB int
	Folder    string
	Bucket    string
}

func (f SingleFileField) maxSizeMB() int {
	if f.MaxSizeMB <= 0 {
		return DefaultMaxSizeMB
	}
	return f.MaxSizeMB
}

// Upload checks the size limit and stores file.
func (f SingleFileField) Upload(ctx context.Context, file FileInput) (model.FileRef, error) {
	err := validation.ValidateFileSize(file.Size, f.maxSizeMB())
	if err != nil {
		return model.FileRef{}, newValidationError(file.Name, err.Error())
	}

	stored, err := upload(ctx, f.Uploads, file, f.Folder, f.Bucket)
	if err != nil {
		return model.FileRef{}, err
	}
	return model.FileRef{URL: stored.URL, Path: stored.Path}, nil
}

// Replace uploads file and hands the new reference to save. If save fails the
// new object is removed again and current stays in place; otherwise the object
// current pointed to is removed. A failed removal never fails the replace.
func (f SingleFileField) Replace(ctx context.Context, current model.FileRef, file FileInput, save func(model.FileRef) error) (model.FileRef, error) {
	next, err := f.Upload(ctx, file)
	if err != nil {
		return current, err
	}

	err = save(next)
	if err != nil {
		f.Clear(ctx, next)
		return current, err
	}

	if !current.IsZero() {
		f.Clear(ctx, current)
	}
	return next, nil
}

// Clear deletes the object behind current. The stored path wins over the URL;
// data URIs never reach the store. The caller clears its value whatever the outcome.
func (f SingleFileField) Clear(ctx context.Context, current model.FileRef) model.DeleteResult {
	ref := current.Path
	if ref == "" {
		ref = current.URL
	}
	if ref == "" || storage.IsDataURI(ref) {
		return model.DeleteResult{Outcome: model.DeleteOutcomeSkipped, Bucket: f.bucket()}
	}
	return f.Uploads.Delete(ctx, f.Bucket, ref)
}

func (f SingleFileField) bucket() string {
	if f.Bucket == "" {
		return f.Uploads.DefaultBucket()
	}
	return f.Bucket
}

// AttachmentList manages a bounded list of attachments on a record.
type AttachmentList struct {
	Uploads   *UploadService
	MaxSizeMB int
	MaxFiles  int
	Folder    string
	Bucket    string
}

// AddResult is the outcome of adding a batch. Attachments is the full list
// after the add; Uploaded counts the files that made it in.
type AddResult struct {
	Attachments []model.Attachment `json:"attachments"`
	Uploaded    int                `json:"uploaded"`
	Rejected    []FileError        `json:"rejected,omitempty"`
}

func (l AttachmentList) limits() (maxSizeMB, maxFiles int) {
	maxSizeMB, maxFiles = l.MaxSizeMB, l.MaxFiles
	if maxSizeMB <= 0 {
		maxSizeMB = DefaultMaxSizeMB
	}
	if maxFiles <= 0 {
		maxFiles = DefaultMaxFiles
	}
	return maxSizeMB, maxFiles
}

// Add uploads files one at a time and appends each success to existing.
// A batch that would exceed MaxFiles is refused before any upload; otherwise
// oversized files and store failures are reported by name and the rest proceed.
func (l AttachmentList) Add(ctx context.Context, existing []model.Attachment, files []FileInput) (AddResult, error) {
	maxSizeMB, maxFiles := l.limits()

	list := make([]model.Attachment, len(existing), len(existing)+len(files))
	copy(list, existing)
	result := AddResult{Attachments: list}

	if len(existing)+len(files) > maxFiles {
		return result, newValidationError("files", fmt.Sprintf(
			"too many files: %d attached, %d selected, maximum is %d", len(existing), len(files), maxFiles))
	}

	for _, file := range files {
		err := validation.ValidateFileSize(file.Size, maxSizeMB)
		if err != nil {
			result.Rejected = append(result.Rejected, newFileError(file.Name, err))
			continue
		}

		stored, err := upload(ctx, l.Uploads, file, l.Folder, l.Bucket)
		if err != nil {
			slog.Warn("attachment upload failed", "error", err, "name", file.Name)
			result.Rejected = append(result.Rejected, newFileError(file.Name, err))
			continue
		}

		result.Attachments = append(result.Attachments, stored.Attachment())
		result.Uploaded++
	}

	return result, nil
}

// Remove drops the attachment at index from list and deletes its object.
// The item is removed even when the store refuses the delete.
func (l AttachmentList) Remove(ctx context.Context, list []model.Attachment, index int) ([]model.Attachment, model.DeleteResult, error) {
	rest, removed, err := l.Detach(list, index)
	if err != nil {
		return list, model.DeleteResult{}, err
	}
	return rest, l.RemoveObjects(ctx, removed), nil
}

// Detach returns list without the item at index, leaving the stored object alone.
func (l AttachmentList) Detach(list []model.Attachment, index int) ([]model.Attachment, model.Attachment, error) {
	if index < 0 || index >= len(list) {
		return list, model.Attachment{}, newValidationError("index", fmt.Sprintf("no attachment at index %d", index))
	}

	rest := make([]model.Attachment, 0, len(list)-1)
	rest = append(rest, list[:index]...)
	rest = append(rest, list[index+1:]...)
	return rest, list[index], nil
}

// RemoveObjects deletes the stored objects of attachments in one store call.
func (l AttachmentList) RemoveObjects(ctx context.Context, attachments ...model.Attachment) model.DeleteResult {
	refs := make([]string, 0, len(attachments))
	for _, a := range attachments {
		ref := strings.TrimSpace(a.StoragePath)
		if ref == "" {
			ref = a.URL
		}
		refs = append(refs, ref)
	}
	return l.Uploads.Delete(ctx, l.Bucket, refs...)
}
