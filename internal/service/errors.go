package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAdminDisabled      = errors.New("admin login is not configured")
	ErrEmailNotConfigured = errors.New("email service not configured (missing RESEND_API_KEY)")
)

// ValidationError is raised before any network call for bad user input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// StorageWriteError reports an upload the object store rejected.
type StorageWriteError struct {
	Bucket string
	Path   string
	Name   string
	Err    error
}

func (e *StorageWriteError) Error() string {
	return fmt.Sprintf("upload %q to %s/%s: %v", e.Name, e.Bucket, e.Path, e.Err)
}

func (e *StorageWriteError) Unwrap() error { return e.Err }

// StorageDeleteError reports a removal the object store rejected.
// Callers log it and carry on; the objects are leaked.
type StorageDeleteError struct {
	Bucket string
	Paths  []string
	Err    error
}

func (e *StorageDeleteError) Error() string {
	return fmt.Sprintf("delete %d object(s) from %s: %v", len(e.Paths), e.Bucket, e.Err)
}

func (e *StorageDeleteError) Unwrap() error { return e.Err }

// MigrationTableError reports a seed table that could not be loaded.
type MigrationTableError struct {
	Table string
	Err   error
}

func (e *MigrationTableError) Error() string {
	return fmt.Sprintf("seed table %s: %v", e.Table, e.Err)
}

func (e *MigrationTableError) Unwrap() error { return e.Err }
