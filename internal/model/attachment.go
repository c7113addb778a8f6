package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Attachment is a file embedded in a notice, member or event record.
// Name is the filename the admin selected, not the storage path.
type Attachment struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Type        string `json:"type"`
	StoragePath string `json:"storage_path,omitempty"` // Kept so deletion does not have to re-derive it from URL
}

// Attachments is stored as a JSON array in a TEXT column.
type Attachments []Attachment

func (a Attachments) Value() (driver.Value, error) {
	if a == nil {
		return "[]", nil
	}
	b, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (a *Attachments) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*a = Attachments{}
		return nil
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		return fmt.Errorf("attachments: unsupported column type %T", src)
	}
	if len(data) == 0 {
		*a = Attachments{}
		return nil
	}
	return json.Unmarshal(data, a)
}

// StoredFile describes an object written by the upload gateway.
type StoredFile struct {
	Path string `json:"path"`
	URL  string `json:"url"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// Attachment converts the descriptor into the value embedded in records.
func (f *StoredFile) Attachment() Attachment {
	return Attachment{
		Name:        f.Name,
		URL:         f.URL,
		Type:        f.Type,
		StoragePath: f.Path,
	}
}

type DeleteOutcome string

const (
	DeleteOutcomeDeleted DeleteOutcome = "deleted"
	DeleteOutcomeSkipped DeleteOutcome = "skipped" // Nothing referenced lives in the store
	DeleteOutcomeFailed  DeleteOutcome = "failed"  // Store rejected the removal, objects leak
)

// DeleteResult reports what the deletion gateway did with a set of references.
type DeleteResult struct {
	Outcome DeleteOutcome `json:"outcome"`
	Bucket  string        `json:"bucket"`
	Paths   []string      `json:"paths,omitempty"`   // Paths sent to the store
	Skipped []string      `json:"skipped,omitempty"` // References with no derivable path
	Err     error         `json:"-"`
	Error   string        `json:"error,omitempty"`
}

func (r DeleteResult) Deleted() bool { return r.Outcome == DeleteOutcomeDeleted }
func (r DeleteResult) Failed() bool  { return r.Outcome == DeleteOutcomeFailed }
