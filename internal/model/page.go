package model

import (
	"time"
)

// Page is a markdown document from the content directory (projects, achievements).
type Page struct {
	Section     string    `json:"section"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags,omitempty"`
	Image       string    `json:"image,omitempty"`
	Content     string    `json:"-"`
	HTMLContent string    `json:"html,omitempty"`
}
