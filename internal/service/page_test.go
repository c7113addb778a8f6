package service

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePage(t *testing.T, dir, section, slug, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, section), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, section, slug+".md"), []byte(body), 0o644))
}

func TestPagesNewestFirst(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "projects", "line-follower", "---\ntitle: Line Follower Robot\ndate: 2023-03-01\ntags: [robotics, embedded]\n---\n# Build log\n")
	writePage(t, dir, "projects", "campus-iot", "---\ntitle: Campus IoT Mesh\ndate: 2024-01-15\n---\nSensors everywhere.\n")

	svc := NewPageService(dir, 16, time.Minute)
	pages, err := svc.Pages("projects")
	require.NoError(t, err)
	require.Len(t, pages, 2)

	assert.Equal(t, "campus-iot", pages[0].Slug)
	assert.Equal(t, "line-follower", pages[1].Slug)
	assert.Equal(t, []string{"robotics", "embedded"}, pages[1].Tags)
	assert.Contains(t, pages[1].HTMLContent, "<h1")
}

func TestPageTitleFallsBackToSlug(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "achievements", "best-student-branch", "We won.\n")

	page, err := NewPageService(dir, 16, time.Minute).Page("achievements", "best-student-branch")
	require.NoError(t, err)
	assert.Equal(t, "Best Student Branch", page.Title)
}

func TestPageRejectsUnknownInput(t *testing.T) {
	svc := NewPageService(t.TempDir(), 16, time.Minute)

	_, err := svc.Pages("secrets")
	assert.ErrorIs(t, err, ErrUnknownSection)

	_, err = svc.Page("projects", "../../etc/passwd")
	assert.ErrorIs(t, err, ErrPageNotFound)

	_, err = svc.Page("projects", "missing")
	assert.ErrorIs(t, err, ErrPageNotFound)
}

func TestPageIsCached(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "projects", "drone", "---\ntitle: Drone\n---\nv1\n")

	svc := NewPageService(dir, 16, time.Minute)
	first, err := svc.Page("projects", "drone")
	require.NoError(t, err)

	writePage(t, dir, "projects", "drone", "---\ntitle: Drone v2\n---\nv2\n")
	second, err := svc.Page("projects", "drone")
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, "Drone", second.Title)
}
