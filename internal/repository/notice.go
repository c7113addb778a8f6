package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/chapterweb/chaptersite/internal/model"
)

var (
	ErrNoticeNotFound = errors.New("notice not found")
)

type NoticeRepository interface {
	Create(notice *model.Notice) error
	ByID(id string) (*model.Notice, error)
	List() ([]*model.Notice, error)
	Update(notice *model.Notice) error
	Delete(id string) error
}

type noticeRepository struct {
	db *sqlx.DB
}

func NewNoticeRepository(db *sqlx.DB) NoticeRepository {
	return &noticeRepository{db: db}
}

func (r *noticeRepository) Create(notice *model.Notice) error {
	query := `INSERT INTO notices (id, title, content, date, attachments, created_at) VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(query, notice.ID, notice.Title, notice.Content, notice.Date, notice.Attachments, notice.CreatedAt)
	return err
}

func (r *noticeRepository) ByID(id string) (*model.Notice, error) {
	notice := &model.Notice{}
	query := `SELECT * FROM notices WHERE id = $1`

	err := r.db.Get(notice, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrNoticeNotFound
	}

	return notice, err
}

func (r *noticeRepository) List() ([]*model.Notice, error) {
	notices := []*model.Notice{}
	query := `SELECT * FROM notices ORDER BY date DESC, created_at DESC`

	err := r.db.Select(&notices, query)
	if err != nil {
		return nil, err
	}

	return notices, nil
}

func (r *noticeRepository) Update(notice *model.Notice) error {
	query := `UPDATE notices SET title = $1, content = $2, date = $3, attachments = $4 WHERE id = $5`

	result, err := r.db.Exec(query, notice.Title, notice.Content, notice.Date, notice.Attachments, notice.ID)
	if err != nil {
		return err
	}
	return expectRow(result, ErrNoticeNotFound)
}

func (r *noticeRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM notices WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return expectRow(result, ErrNoticeNotFound)
}
