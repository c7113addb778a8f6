package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/chapterweb/chaptersite/internal/model"
)

var (
	ErrMemberNotFound = errors.New("member not found")
	ErrUnknownGroup   = errors.New("unknown member group")
)

// MemberRepository serves the four member tables, which share one schema.
type MemberRepository interface {
	Create(group model.MemberGroup, member *model.Member) error
	ByID(group model.MemberGroup, id string) (*model.Member, error)
	List(group model.MemberGroup) ([]*model.Member, error)
	Update(group model.MemberGroup, member *model.Member) error
	Delete(group model.MemberGroup, id string) error
}

type memberRepository struct {
	db *sqlx.DB
}

func NewMemberRepository(db *sqlx.DB) MemberRepository {
	return &memberRepository{db: db}
}

func memberTable(group model.MemberGroup) (string, error) {
	table, ok := group.Table()
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownGroup, group)
	}
	return table, nil
}

func (r *memberRepository) Create(group model.MemberGroup, m *model.Member) error {
	table, err := memberTable(group)
	if err != nil {
		return err
	}

	query := `INSERT INTO ` + table + ` (id, name, role, department, email, linkedin, photo_url, photo_path, sort_order, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err = r.db.Exec(query, m.ID, m.Name, m.Role, m.Department, m.Email, m.LinkedIn, m.PhotoURL, m.PhotoPath, m.SortOrder, m.CreatedAt)
	return err
}

func (r *memberRepository) ByID(group model.MemberGroup, id string) (*model.Member, error) {
	table, err := memberTable(group)
	if err != nil {
		return nil, err
	}

	m := &model.Member{}
	err = r.db.Get(m, `SELECT * FROM `+table+` WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return nil, ErrMemberNotFound
	}
	return m, err
}

func (r *memberRepository) List(group model.MemberGroup) ([]*model.Member, error) {
	table, err := memberTable(group)
	if err != nil {
		return nil, err
	}

	members := []*model.Member{}
	err = r.db.Select(&members, `SELECT * FROM `+table+` ORDER BY sort_order ASC, name ASC`)
	if err != nil {
		return nil, err
	}
	return members, nil
}

func (r *memberRepository) Update(group model.MemberGroup, m *model.Member) error {
	table, err := memberTable(group)
	if err != nil {
		return err
	}

	query := `UPDATE ` + table + ` SET name = $1, role = $2, department = $3, email = $4, linkedin = $5,
	          photo_url = $6, photo_path = $7, sort_order = $8 WHERE id = $9`

	result, err := r.db.Exec(query, m.Name, m.Role, m.Department, m.Email, m.LinkedIn, m.PhotoURL, m.PhotoPath, m.SortOrder, m.ID)
	if err != nil {
		return err
	}
	return expectRow(result, ErrMemberNotFound)
}

func (r *memberRepository) Delete(group model.MemberGroup, id string) error {
	table, err := memberTable(group)
	if err != nil {
		return err
	}

	result, err := r.db.Exec(`DELETE FROM `+table+` WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return expectRow(result, ErrMemberNotFound)
}
