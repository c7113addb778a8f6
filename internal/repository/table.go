package repository

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"
)

var identPattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// TableRepository is the minimal query surface the seed runner needs:
// an existence check by row count and a bulk insert of loosely typed rows.
type TableRepository interface {
	Count(table string) (int, error)
	Insert(table string, rows []map[string]any) error
}

type tableRepository struct {
	db *sqlx.DB
}

func NewTableRepository(db *sqlx.DB) TableRepository {
	return &tableRepository{db: db}
}

func (r *tableRepository) Count(table string) (int, error) {
	if !identPattern.MatchString(table) {
		return 0, fmt.Errorf("invalid table name %q", table)
	}

	var n int
	err := r.db.Get(&n, "SELECT COUNT(*) FROM "+table)
	if err != nil {
		return 0, err
	}
	return n, nil
}

// Insert writes all rows in one transaction. Rows may carry different column sets;
// columns a row omits fall back to their database defaults.
func (r *tableRepository) Insert(table string, rows []map[string]any) error {
	if !identPattern.MatchString(table) {
		return fmt.Errorf("invalid table name %q", table)
	}
	if len(rows) == 0 {
		return nil
	}

	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for i, row := range rows {
		query, err := insertQuery(table, row)
		if err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
		_, err = tx.NamedExec(query, row)
		if err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
	}

	return tx.Commit()
}

func insertQuery(table string, row map[string]any) (string, error) {
	if len(row) == 0 {
		return "", fmt.Errorf("empty row")
	}

	columns := make([]string, 0, len(row))
	for col := range row {
		if !identPattern.MatchString(col) {
			return "", fmt.Errorf("invalid column name %q", col)
		}
		columns = append(columns, col)
	}
	sort.Strings(columns)

	params := make([]string, len(columns))
	for i, col := range columns {
		params[i] = ":" + col
	}

	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(columns, ", "), strings.Join(params, ", ")), nil
}
