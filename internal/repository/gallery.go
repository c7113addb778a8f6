package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/chapterweb/chaptersite/internal/model"
)

var (
	ErrGalleryImageNotFound = errors.New("gallery image not found")
)

type GalleryRepository interface {
	Create(image *model.GalleryImage) error
	ByID(id string) (*model.GalleryImage, error)
	List(category string) ([]*model.GalleryImage, error)
	Delete(id string) error
}

type galleryRepository struct {
	db *sqlx.DB
}

func NewGalleryRepository(db *sqlx.DB) GalleryRepository {
	return &galleryRepository{db: db}
}

func (r *galleryRepository) Create(image *model.GalleryImage) error {
	query := `INSERT INTO gallery (id, title, category, image_url, image_path, created_at) VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(query, image.ID, image.Title, image.Category, image.ImageURL, image.ImagePath, image.CreatedAt)
	return err
}

func (r *galleryRepository) ByID(id string) (*model.GalleryImage, error) {
	image := &model.GalleryImage{}
	query := `SELECT * FROM gallery WHERE id = $1`

	err := r.db.Get(image, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrGalleryImageNotFound
	}

	return image, err
}

// List returns all images, newest first. An empty category means all categories.
func (r *galleryRepository) List(category string) ([]*model.GalleryImage, error) {
	images := []*model.GalleryImage{}

	var err error
	if category == "" {
		err = r.db.Select(&images, `SELECT * FROM gallery ORDER BY created_at DESC`)
	} else {
		err = r.db.Select(&images, `SELECT * FROM gallery WHERE category = $1 ORDER BY created_at DESC`, category)
	}
	if err != nil {
		return nil, err
	}

	return images, nil
}

func (r *galleryRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM gallery WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return expectRow(result, ErrGalleryImageNotFound)
}
