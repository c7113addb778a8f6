// Package seed bundles the JSON documents used to populate a fresh database.
package seed

import (
	"embed"
	"encoding/json"
	"fmt"
)

//go:embed data/*.json
var dataFS embed.FS

// Document is one seed file and the table it loads into.
type Document struct {
	Name    string            // Human readable source name
	File    string            // File under data/
	Table   string            // Target table
	Renames map[string]string // Source field -> column
}

// Documents returns the seed documents in load order.
func Documents() []Document {
	return []Document{
		{Name: "events", File: "events.json", Table: "events"},
		{Name: "faculty", File: "faculty.json", Table: "faculty"},
		{Name: "core team", File: "core_team.json", Table: "core_team"},
		{Name: "post holders", File: "post_holders.json", Table: "post_holders"},
		{Name: "executive team", File: "executive_team.json", Table: "executive_team"},
		{Name: "gallery", File: "gallery.json", Table: "gallery"},
		{Name: "notices", File: "notices.json", Table: "notices"},
		{Name: "event highlights", File: "event_highlights.json", Table: "event_highlights",
			Renames: map[string]string{"instagramLink": "instagram_link"}},
	}
}

// Rows decodes the document and applies its field renames.
func (d Document) Rows() ([]map[string]any, error) {
	data, err := dataFS.ReadFile("data/" + d.File)
	if err != nil {
		return nil, fmt.Errorf("read seed %s: %w", d.File, err)
	}

	var rows []map[string]any
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("decode seed %s: %w", d.File, err)
	}

	for _, row := range rows {
		for from, to := range d.Renames {
			v, ok := row[from]
			if !ok {
				continue
			}
			delete(row, from)
			row[to] = v
		}
	}
	return rows, nil
}
