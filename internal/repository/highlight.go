package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/chapterweb/chaptersite/internal/model"
)

var (
	ErrHighlightNotFound = errors.New("event highlight not found")
)

type HighlightRepository interface {
	Create(highlight *model.EventHighlight) error
	ByID(id string) (*model.EventHighlight, error)
	List() ([]*model.EventHighlight, error)
	Delete(id string) error
}

type highlightRepository struct {
	db *sqlx.DB
}

func NewHighlightRepository(db *sqlx.DB) HighlightRepository {
	return &highlightRepository{db: db}
}

func (r *highlightRepository) Create(h *model.EventHighlight) error {
	query := `INSERT INTO event_highlights (id, title, description, image_url, image_path, instagram_link, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(query, h.ID, h.Title, h.Description, h.ImageURL, h.ImagePath, h.InstagramLink, h.CreatedAt)
	return err
}

func (r *highlightRepository) ByID(id string) (*model.EventHighlight, error) {
	h := &model.EventHighlight{}
	err := r.db.Get(h, `SELECT * FROM event_highlights WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return nil, ErrHighlightNotFound
	}
	return h, err
}

func (r *highlightRepository) List() ([]*model.EventHighlight, error) {
	highlights := []*model.EventHighlight{}
	err := r.db.Select(&highlights, `SELECT * FROM event_highlights ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	return highlights, nil
}

func (r *highlightRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM event_highlights WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return expectRow(result, ErrHighlightNotFound)
}
