package model

import "time"

type GalleryImage struct {
	ID        string    `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Category  string    `db:"category" json:"category"`
	ImageURL  string    `db:"image_url" json:"image_url"`
	ImagePath string    `db:"image_path" json:"image_path,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

func (g *GalleryImage) Image() FileRef {
	return FileRef{URL: g.ImageURL, Path: g.ImagePath}
}
