package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentsDecode(t *testing.T) {
	tables := map[string]bool{}
	for _, doc := range Documents() {
		rows, err := doc.Rows()
		require.NoError(t, err, doc.File)
		assert.NotEmpty(t, rows, doc.File)
		assert.False(t, tables[doc.Table], "table %s listed twice", doc.Table)
		tables[doc.Table] = true
	}
}

func TestHighlightsRenameInstagramLink(t *testing.T) {
	var doc Document
	for _, d := range Documents() {
		if d.Table == "event_highlights" {
			doc = d
		}
	}
	require.Equal(t, "event_highlights", doc.Table)

	rows, err := doc.Rows()
	require.NoError(t, err)
	for _, row := range rows {
		assert.NotContains(t, row, "instagramLink")
		assert.Contains(t, row, "instagram_link")
	}
}
