package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chapterweb/chaptersite/internal/db/dbtest"
)

func TestTableRepositoryCountAndInsert(t *testing.T) {
	database := dbtest.New(t)
	tables := NewTableRepository(database)

	n, err := tables.Count("event_highlights")
	require.NoError(t, err)
	assert.Zero(t, n)

	err = tables.Insert("event_highlights", []map[string]any{
		{"id": "h1", "title": "Hackathon recap", "instagram_link": "https://instagram.com/p/abc"},
		{"id": "h2", "title": "Robotics workshop"},
	})
	require.NoError(t, err)

	n, err = tables.Count("event_highlights")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	highlight, err := NewHighlightRepository(database).ByID("h2")
	require.NoError(t, err)
	assert.Equal(t, "Robotics workshop", highlight.Title)
	assert.Empty(t, highlight.InstagramLink)
}

func TestTableRepositoryInsertIsAtomic(t *testing.T) {
	database := dbtest.New(t)
	tables := NewTableRepository(database)

	err := tables.Insert("gallery", []map[string]any{
		{"id": "g1", "title": "Orientation", "image_url": "/a.jpg"},
		{"id": "g1", "title": "Duplicate id", "image_url": "/b.jpg"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 1")

	n, err := tables.Count("gallery")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestTableRepositoryRejectsBadIdentifiers(t *testing.T) {
	tables := NewTableRepository(dbtest.New(t))

	_, err := tables.Count("events; DROP TABLE events")
	assert.Error(t, err)

	err = tables.Insert("events", []map[string]any{{"id": "e1", "title) VALUES (1); --": "x"}})
	assert.Error(t, err)

	err = tables.Insert("events", []map[string]any{{}})
	assert.Error(t, err)

	assert.NoError(t, tables.Insert("events", nil))
}

func TestInsertQuerySortsColumns(t *testing.T) {
	query, err := insertQuery("events", map[string]any{"title": "x", "id": "1", "date": "2024-01-01"})
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO events (date, id, title) VALUES (:date, :id, :title)", query)
}
