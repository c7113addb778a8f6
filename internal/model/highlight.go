package model

import "time"

type EventHighlight struct {
	ID            string    `db:"id" json:"id"`
	Title         string    `db:"title" json:"title"`
	Description   string    `db:"description" json:"description"`
	ImageURL      string    `db:"image_url" json:"image_url"`
	ImagePath     string    `db:"image_path" json:"image_path,omitempty"`
	InstagramLink string    `db:"instagram_link" json:"instagram_link"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

func (h *EventHighlight) Image() FileRef {
	return FileRef{URL: h.ImageURL, Path: h.ImagePath}
}
