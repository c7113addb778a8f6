package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/chapterweb/chaptersite/internal/storage"
)

const testPublicBase = "https://demo.supabase.co/storage/v1"

type removeCall struct {
	bucket string
	paths  []string
}

// fakeStore is an in-memory storage.Client that records every call.
type fakeStore struct {
	mu        sync.Mutex
	codec     *storage.Codec
	objects   map[string][]byte
	uploads   []string
	removes   []removeCall
	uploadErr map[string]error // keyed by file content
	removeErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		codec:     storage.NewCodec(testPublicBase),
		objects:   map[string][]byte{},
		uploadErr: map[string]error{},
	}
}

func (f *fakeStore) Upload(ctx context.Context, bucket, path string, r io.Reader, opts storage.UploadOptions) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if err, ok := f.uploadErr[string(data)]; ok {
		return err
	}

	key := bucket + "/" + path
	if _, exists := f.objects[key]; exists {
		return fmt.Errorf("object %s already exists", key)
	}
	f.objects[key] = data
	f.uploads = append(f.uploads, key)
	return nil
}

func (f *fakeStore) PublicURL(bucket, path string) string {
	return f.codec.PublicURL(bucket, path)
}

func (f *fakeStore) Remove(ctx context.Context, bucket string, paths []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.removes = append(f.removes, removeCall{bucket: bucket, paths: append([]string(nil), paths...)})
	if f.removeErr != nil {
		return f.removeErr
	}

	var missing []string
	for _, p := range paths {
		key := bucket + "/" + p
		if _, ok := f.objects[key]; !ok {
			missing = append(missing, p)
			continue
		}
		delete(f.objects, key)
	}
	if len(missing) > 0 {
		return fmt.Errorf("not found: %s", strings.Join(missing, ", "))
	}
	return nil
}

func (f *fakeStore) has(bucket, path string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.objects[bucket+"/"+path]
	return ok
}

func newTestUploads(store *fakeStore) *UploadService {
	return NewUploadService(store, store.codec, "images", 3600)
}

// memFile builds a FileInput whose content doubles as the fake store's failure key.
func memFile(name, contentType, content string) FileInput {
	return FileInput{
		Name:        name,
		ContentType: contentType,
		Size:        int64(len(content)),
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader(content)), nil
		},
	}
}

// sizedFile reports size without holding that many bytes in memory.
func sizedFile(name string, size int64) FileInput {
	f := memFile(name, "application/pdf", name)
	f.Size = size
	return f
}
