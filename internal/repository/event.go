package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/chapterweb/chaptersite/internal/model"
)

var (
	ErrEventNotFound = errors.New("event not found")
)

type EventRepository interface {
	Create(event *model.Event) error
	ByID(id string) (*model.Event, error)
	List() ([]*model.Event, error)
	Update(event *model.Event) error
	Delete(id string) error
}

type eventRepository struct {
	db *sqlx.DB
}

func NewEventRepository(db *sqlx.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(event *model.Event) error {
	query := `INSERT INTO events (id, title, description, date, time, venue, category, poster_url, poster_path, registration_link, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.Exec(query,
		event.ID,
		event.Title,
		event.Description,
		event.Date,
		event.Time,
		event.Venue,
		event.Category,
		event.PosterURL,
		event.PosterPath,
		event.RegistrationLink,
		event.CreatedAt,
	)
	return err
}

func (r *eventRepository) ByID(id string) (*model.Event, error) {
	event := &model.Event{}
	query := `SELECT * FROM events WHERE id = $1`

	err := r.db.Get(event, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrEventNotFound
	}

	return event, err
}

func (r *eventRepository) List() ([]*model.Event, error) {
	events := []*model.Event{}
	query := `SELECT * FROM events ORDER BY date DESC, created_at DESC`

	err := r.db.Select(&events, query)
	if err != nil {
		return nil, err
	}

	return events, nil
}

func (r *eventRepository) Update(event *model.Event) error {
	query := `UPDATE events SET title = $1, description = $2, date = $3, time = $4, venue = $5, category = $6,
	          poster_url = $7, poster_path = $8, registration_link = $9 WHERE id = $10`

	result, err := r.db.Exec(query,
		event.Title,
		event.Description,
		event.Date,
		event.Time,
		event.Venue,
		event.Category,
		event.PosterURL,
		event.PosterPath,
		event.RegistrationLink,
		event.ID,
	)
	if err != nil {
		return err
	}
	return expectRow(result, ErrEventNotFound)
}

func (r *eventRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return expectRow(result, ErrEventNotFound)
}

// expectRow maps "no rows affected" to notFound.
func expectRow(result sql.Result, notFound error) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return notFound
	}
	return nil
}
