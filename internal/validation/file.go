package validation

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

const bytesPerMB = 1 << 20

// ValidateFileSize rejects files larger than maxMB megabytes.
// Type is not enforced here; the admin file picker filters by MIME type.
func ValidateFileSize(size int64, maxMB int) error {
	if maxMB <= 0 {
		return nil
	}
	if size > int64(maxMB)*bytesPerMB {
		return fmt.Errorf("file too large: maximum size is %d MB", maxMB)
	}
	return nil
}

// DetectContentType returns the declared Content-Type of an uploaded part,
// falling back to sniffing the first 512 bytes when the browser sent none.
func DetectContentType(header *multipart.FileHeader) string {
	declared := header.Header.Get("Content-Type")
	if declared != "" && declared != "application/octet-stream" {
		return declared
	}

	file, err := header.Open()
	if err != nil {
		return "application/octet-stream"
	}
	defer func() { _ = file.Close() }()

	// http.DetectContentType reads max 512 bytes to determine MIME type
	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		return "application/octet-stream"
	}

	return http.DetectContentType(buffer[:n])
}
