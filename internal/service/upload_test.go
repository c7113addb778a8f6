package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chapterweb/chaptersite/internal/model"
	"github.com/chapterweb/chaptersite/internal/storage"
)

func TestUploadGalleryImage(t *testing.T) {
	store := newFakeStore()
	uploads := newTestUploads(store)

	content := strings.Repeat("x", 2<<20)
	stored, err := uploads.Upload(context.Background(), UploadInput{
		Reader:      strings.NewReader(content),
		Name:        "annual-meet.jpg",
		ContentType: "image/jpeg",
		Size:        int64(len(content)),
		Folder:      "gallery",
		Bucket:      "images",
	})
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^gallery/\d{13}_[0-9a-z]{8}\.jpg$`), stored.Path)
	assert.Equal(t, testPublicBase+"/object/public/images/"+stored.Path, stored.URL)
	assert.Equal(t, "annual-meet.jpg", stored.Name)
	assert.Equal(t, "image/jpeg", stored.Type)
	assert.True(t, store.has("images", stored.Path))
}

func TestUploadDefaultsBucket(t *testing.T) {
	store := newFakeStore()
	uploads := newTestUploads(store)

	stored, err := uploads.Upload(context.Background(), UploadInput{
		Reader: strings.NewReader("pdf"),
		Name:   "circular.pdf",
		Size:   3,
	})
	require.NoError(t, err)
	assert.True(t, store.has("images", stored.Path))
	assert.NotContains(t, stored.Path, "/")
}

func TestUploadStoreError(t *testing.T) {
	store := newFakeStore()
	store.uploadErr["boom"] = errors.New("quota exceeded")
	uploads := newTestUploads(store)

	stored, err := uploads.Upload(context.Background(), UploadInput{
		Reader: strings.NewReader("boom"),
		Name:   "big.png",
		Size:   4,
		Bucket: "images",
	})
	assert.Nil(t, stored)

	var writeErr *StorageWriteError
	require.ErrorAs(t, err, &writeErr)
	assert.Equal(t, "big.png", writeErr.Name)
	assert.Equal(t, "images", writeErr.Bucket)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestUploadUnconfiguredStore(t *testing.T) {
	codec := storage.NewCodec(testPublicBase)
	uploads := NewUploadService(storage.NewUnconfigured(codec), codec, "images", 3600)

	_, err := uploads.Upload(context.Background(), UploadInput{Reader: strings.NewReader("x"), Name: "a.png", Size: 1})
	assert.ErrorIs(t, err, storage.ErrNotConfigured)

	result := uploads.Delete(context.Background(), "images", "gallery/1_abc.png")
	assert.Equal(t, model.DeleteOutcomeSkipped, result.Outcome)
	assert.False(t, result.Deleted())
	assert.Empty(t, result.Paths)
	assert.Equal(t, []string{"gallery/1_abc.png"}, result.Skipped)
	assert.Contains(t, result.Error, "not configured")
}

func TestDeleteSkipsURLFromAnotherBucket(t *testing.T) {
	store := newFakeStore()
	uploads := newTestUploads(store)
	ctx := context.Background()

	stored, err := uploads.Upload(ctx, UploadInput{Reader: strings.NewReader("pdf"), Name: "circular.pdf", Size: 3, Folder: "notices", Bucket: "notice-attachments"})
	require.NoError(t, err)

	result := uploads.Delete(ctx, "images", stored.URL)
	assert.Equal(t, model.DeleteOutcomeSkipped, result.Outcome)
	assert.Equal(t, []string{stored.URL}, result.Skipped)
	assert.Empty(t, store.removes)
	assert.True(t, store.has("notice-attachments", stored.Path))

	result = uploads.Delete(ctx, "notice-attachments", stored.URL)
	assert.True(t, result.Deleted())
	assert.False(t, store.has("notice-attachments", stored.Path))
}

func TestDeleteURLWithEscapedCharacters(t *testing.T) {
	store := newFakeStore()
	uploads := newTestUploads(store)
	ctx := context.Background()

	stored, err := uploads.Upload(ctx, UploadInput{Reader: strings.NewReader("scan"), Name: "scan.p#df", Size: 4, Folder: "my folder?"})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(stored.Path, "my folder?/"), stored.Path)

	result := uploads.Delete(ctx, "images", stored.URL)
	assert.True(t, result.Deleted())
	assert.Equal(t, []string{stored.Path}, result.Paths)
	assert.False(t, store.has("images", stored.Path))
}

func TestDeleteBatchIsSingleStoreCall(t *testing.T) {
	store := newFakeStore()
	uploads := newTestUploads(store)
	ctx := context.Background()

	var paths []string
	for _, name := range []string{"a.pdf", "b.pdf", "c.pdf"} {
		stored, err := uploads.Upload(ctx, UploadInput{Reader: strings.NewReader(name), Name: name, Size: 5, Bucket: "notice-attachments"})
		require.NoError(t, err)
		paths = append(paths, stored.Path)
	}

	result := uploads.Delete(ctx, "notice-attachments", paths...)
	assert.True(t, result.Deleted())
	assert.Equal(t, paths, result.Paths)
	require.Len(t, store.removes, 1)
	assert.Equal(t, paths, store.removes[0].paths)
}

func TestDeleteDerivesPathFromURL(t *testing.T) {
	store := newFakeStore()
	uploads := newTestUploads(store)
	ctx := context.Background()

	stored, err := uploads.Upload(ctx, UploadInput{Reader: strings.NewReader("img"), Name: "p.png", Size: 3, Folder: "members"})
	require.NoError(t, err)

	result := uploads.Delete(ctx, "images", stored.URL, stored.Path)
	assert.True(t, result.Deleted())
	assert.Equal(t, []string{stored.Path}, result.Paths, "duplicate references collapse")
	assert.False(t, store.has("images", stored.Path))
}

func TestDeleteNonStorageReferenceIsNoop(t *testing.T) {
	store := newFakeStore()
	uploads := newTestUploads(store)

	refs := []string{
		"data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNk",
		"https://cdn.example.com/poster.png",
		"",
	}
	result := uploads.Delete(context.Background(), "images", refs...)

	assert.Equal(t, model.DeleteOutcomeSkipped, result.Outcome)
	assert.False(t, result.Failed())
	assert.Empty(t, result.Paths)
	assert.Len(t, result.Skipped, 2)
	assert.Empty(t, store.removes)
}

func TestDeleteMissingObjectFails(t *testing.T) {
	store := newFakeStore()
	uploads := newTestUploads(store)

	result := uploads.Delete(context.Background(), "images", "gallery/1700000000000_never000.png")

	assert.True(t, result.Failed())
	var delErr *StorageDeleteError
	require.ErrorAs(t, result.Err, &delErr)
	assert.Equal(t, "images", delErr.Bucket)
	assert.Equal(t, []string{"gallery/1700000000000_never000.png"}, delErr.Paths)
	assert.NotEmpty(t, result.Error)
}
