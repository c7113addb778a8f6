package validation

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"asha@example.com", true},
		{"first.last+chapter@mail.college.edu", true},
		{"", false},
		{"not-an-email", false},
		{"Asha <asha@example.com>", false},
		{"asha@localhost", false},
		{strings.Repeat("a", 250) + "@x.io", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidateFileSize(t *testing.T) {
	assert.NoError(t, ValidateFileSize(10<<20, 10))
	assert.EqualError(t, ValidateFileSize(10<<20+1, 10), "file too large: maximum size is 10 MB")
	assert.NoError(t, ValidateFileSize(1<<30, 0))
}

func TestValidateFields(t *testing.T) {
	assert.EqualError(t, ValidateRequired("title", "  "), "title is required")
	assert.NoError(t, ValidateRequired("title", "Hackathon"))

	assert.NoError(t, ValidateLength("name", "Åsa", 3))
	assert.Error(t, ValidateLength("name", "Åsaa", 3))

	assert.NoError(t, ValidateDate("date", ""))
	assert.NoError(t, ValidateDate("date", "2024-02-29"))
	assert.Error(t, ValidateDate("date", "29/02/2024"))
}

func fileHeader(t *testing.T, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", `form-data; name="file"; filename="upload"`)
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req, err := http.NewRequest(http.MethodPost, "/", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	return req.MultipartForm.File["file"][0]
}

func TestDetectContentType(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n0000")

	assert.Equal(t, "application/pdf", DetectContentType(fileHeader(t, "application/pdf", []byte("%PDF-1.7"))))
	assert.Equal(t, "image/png", DetectContentType(fileHeader(t, "application/octet-stream", png)))
	assert.Equal(t, "image/png", DetectContentType(fileHeader(t, "", png)))
}
