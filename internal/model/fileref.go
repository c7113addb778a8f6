package model

// FileRef is a single-file field on a record: the public URL shown to
// visitors and, when the file was uploaded here, its storage path.
type FileRef struct {
	URL  string `json:"url"`
	Path string `json:"path,omitempty"`
}

func (r FileRef) IsZero() bool {
	return r.URL == "" && r.Path == ""
}
