package storage

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBase = "https://demo.supabase.co/storage/v1"

func fixedCodec(ms int64) *Codec {
	c := NewCodec(testBase)
	c.now = func() time.Time { return time.UnixMilli(ms) }
	return c
}

func TestKeyFormat(t *testing.T) {
	c := fixedCodec(1700000000123)

	tests := []struct {
		name     string
		filename string
		folder   string
		prefix   string
		suffix   string
	}{
		{"with folder", "photo.JPG", "gallery", "gallery/1700000000123_", ".JPG"},
		{"folder slashes trimmed", "poster.png", "/events/", "events/1700000000123_", ".png"},
		{"no folder", "notice.pdf", "", "1700000000123_", ".pdf"},
		{"last dot wins", "archive.tar.gz", "", "1700000000123_", ".gz"},
		{"no extension keeps trailing dot", "README", "", "1700000000123_", "."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := c.Key(tt.filename, tt.folder)
			assert.True(t, strings.HasPrefix(key, tt.prefix), key)
			assert.True(t, strings.HasSuffix(key, tt.suffix), key)

			token := strings.TrimSuffix(strings.TrimPrefix(key, tt.prefix), tt.suffix)
			assert.Len(t, token, keyRandomLen)
			for _, r := range token {
				assert.True(t, strings.ContainsRune(base36Charset, r), "non base36 rune %q", r)
			}
		})
	}
}

func TestKeyUniqueness(t *testing.T) {
	c := NewCodec(testBase)
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		key := c.Key("photo.jpg", "gallery")
		_, dup := seen[key]
		require.False(t, dup, "duplicate key %s", key)
		seen[key] = struct{}{}
	}
}

func TestPublicURLRoundTrip(t *testing.T) {
	c := NewCodec(testBase + "/")
	paths := []string{
		"gallery/1700000000123_abcd1234.jpg",
		"1700000000123_abcd1234.pdf",
		"events/2024/1700000000123_abcd1234.png",
		c.Key("name with spaces.webp", "members"),
		c.Key("scan.p#df", "notices"),
		c.Key("report.pdf", "my folder?"),
		"my folder?/1_abcdefgh.jpg",
		"100% done/1_abcdefgh.jpg",
	}
	buckets := []string{"images", "notice-attachments"}

	for _, bucket := range buckets {
		for _, p := range paths {
			url := c.PublicURL(bucket, p)
			assert.True(t, strings.HasPrefix(url, testBase+"/object/public/"+bucket+"/"), url)

			got, ok := c.Path(url)
			require.True(t, ok, url)
			assert.Equal(t, p, got)
		}
	}
}

func TestPublicURLEscapesSegments(t *testing.T) {
	c := NewCodec(testBase)
	url := c.PublicURL("images", "my folder?/1_abcdefgh.p#df")
	assert.Equal(t, testBase+"/object/public/images/my%20folder%3F/1_abcdefgh.p%23df", url)
}

func TestLocateReturnsBucket(t *testing.T) {
	c := NewCodec(testBase)

	bucket, path, ok := c.Locate(c.PublicURL("notice-attachments", "notices/1_abcdefgh.pdf"))
	require.True(t, ok)
	assert.Equal(t, "notice-attachments", bucket)
	assert.Equal(t, "notices/1_abcdefgh.pdf", path)

	_, _, ok = c.Locate(testBase + "/object/public/images/bad%zzescape.jpg")
	assert.False(t, ok)
}

func TestPathRejectsForeignReferences(t *testing.T) {
	c := NewCodec(testBase)
	refs := []string{
		"",
		"data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNk",
		"https://instagram.com/p/abc",
		"https://demo.supabase.co/storage/v1/object/sign/images/a.jpg?token=x",
		"https://demo.supabase.co/storage/v1/object/public/images/",
		"not a url at all",
		"%%%",
	}
	for _, ref := range refs {
		got, ok := c.Path(ref)
		assert.False(t, ok, ref)
		assert.Empty(t, got)
	}
}

func TestPathIgnoresQueryString(t *testing.T) {
	c := NewCodec(testBase)
	got, ok := c.Path(testBase + "/object/public/images/gallery/a_b.jpg?width=200#top")
	require.True(t, ok)
	assert.Equal(t, "gallery/a_b.jpg", got)
}

func TestIsURL(t *testing.T) {
	c := NewCodec(testBase)
	assert.True(t, c.IsURL("https://demo.supabase.co/x"))
	assert.True(t, c.IsURL("data:text/plain;base64,aGk="))
	assert.False(t, c.IsURL("gallery/1700000000123_abcd1234.jpg"))
	assert.True(t, IsDataURI("data:image/png;base64,AAA"))
	assert.False(t, IsDataURI("https://x/y"))
}

func TestUnconfigured(t *testing.T) {
	u := NewUnconfigured(NewCodec(testBase))

	err := u.Upload(context.Background(), "images", "a.jpg", strings.NewReader("x"), UploadOptions{Size: 1})
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.ErrorIs(t, u.Remove(context.Background(), "images", []string{"a.jpg"}), ErrNotConfigured)
	assert.Equal(t, testBase+"/object/public/images/a.jpg", u.PublicURL("images", "a.jpg"))
}
