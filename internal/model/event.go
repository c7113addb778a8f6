package model

import "time"

type Event struct {
	ID               string    `db:"id" json:"id"`
	Title            string    `db:"title" json:"title"`
	Description      string    `db:"description" json:"description"`
	Date             string    `db:"date" json:"date"` // YYYY-MM-DD
	Time             string    `db:"time" json:"time"`
	Venue            string    `db:"venue" json:"venue"`
	Category         string    `db:"category" json:"category"`
	PosterURL        string    `db:"poster_url" json:"poster_url"`
	PosterPath       string    `db:"poster_path" json:"poster_path,omitempty"`
	RegistrationLink string    `db:"registration_link" json:"registration_link"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
}

// Poster returns the event's file reference.
func (e *Event) Poster() FileRef {
	return FileRef{URL: e.PosterURL, Path: e.PosterPath}
}

func (e *Event) SetPoster(ref FileRef) {
	e.PosterURL = ref.URL
	e.PosterPath = ref.Path
}
