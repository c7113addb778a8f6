package storage

import (
	"fmt"
	"math/rand/v2"
	"net/url"
	"regexp"
	"strings"
	"time"
)

const (
	keyRandomLen  = 8
	base36Charset = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// publicPathPattern matches the public object URL scheme
// <base>/object/public/<bucket>/<path> and captures the escaped <bucket> and <path>.
var publicPathPattern = regexp.MustCompile(`/object/public/([^/?#]+)/([^?#]+)`)

// Codec owns the storage key format and the public URL scheme.
// It is the only place that knows how paths map to URLs.
type Codec struct {
	publicBase string
	now        func() time.Time
}

func NewCodec(publicBase string) *Codec {
	return &Codec{
		publicBase: strings.TrimSuffix(publicBase, "/"),
		now:        time.Now,
	}
}

// Key returns a fresh storage key for filename, optionally under folder:
// [folder/]<unix millis>_<random>.<ext>
// The extension is whatever follows the last dot; a name without one yields a trailing dot.
func (c *Codec) Key(filename, folder string) string {
	ext := ""
	if i := strings.LastIndex(filename, "."); i >= 0 {
		ext = filename[i+1:]
	}

	name := fmt.Sprintf("%d_%s.%s", c.now().UnixMilli(), randomToken(keyRandomLen), ext)

	folder = strings.Trim(folder, "/")
	if folder == "" {
		return name
	}
	return folder + "/" + name
}

// PublicURL returns the URL visitors use to fetch bucket/path.
// Each path segment is escaped, so keys holding '?', '#' or spaces survive the trip back through Path.
func (c *Codec) PublicURL(bucket, path string) string {
	segments := strings.Split(strings.TrimPrefix(path, "/"), "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return fmt.Sprintf("%s/object/public/%s/%s", c.publicBase, url.PathEscape(bucket), strings.Join(segments, "/"))
}

// Path recovers the storage path from a public URL issued by PublicURL.
// Data URIs, foreign URLs and malformed input report false.
func (c *Codec) Path(rawURL string) (string, bool) {
	_, path, ok := c.Locate(rawURL)
	return path, ok
}

// Locate recovers both the bucket and the storage path from a public URL.
func (c *Codec) Locate(rawURL string) (bucket, path string, ok bool) {
	if rawURL == "" || strings.HasPrefix(rawURL, "data:") {
		return "", "", false
	}
	m := publicPathPattern.FindStringSubmatch(rawURL)
	if m == nil || m[2] == "" {
		return "", "", false
	}

	bucket, err := url.PathUnescape(m[1])
	if err != nil {
		return "", "", false
	}
	path, err = url.PathUnescape(m[2])
	if err != nil || path == "" {
		return "", "", false
	}
	return bucket, path, true
}

// IsURL reports whether ref is a URL (including data URIs) rather than a bare storage path.
func (c *Codec) IsURL(ref string) bool {
	return strings.HasPrefix(ref, "data:") || strings.Contains(ref, "://")
}

// IsDataURI reports whether ref holds inline content that never lived in the store.
func IsDataURI(ref string) bool {
	return strings.HasPrefix(ref, "data:")
}

func randomToken(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = base36Charset[rand.IntN(len(base36Charset))]
	}
	return string(b)
}
