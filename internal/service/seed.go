package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/google/uuid"

	"github.com/chapterweb/chaptersite/internal/model"
	"github.com/chapterweb/chaptersite/internal/repository"
	"github.com/chapterweb/chaptersite/internal/seed"
)

// SeedService loads the bundled seed documents into empty tables.
// A table with any rows counts as migrated and is left alone.
type SeedService struct {
	tables    repository.TableRepository
	documents []seed.Document
}

func NewSeedService(tables repository.TableRepository) *SeedService {
	return &SeedService{
		tables:    tables,
		documents: seed.Documents(),
	}
}

// Migrate visits every seed table in order. Table failures are recorded in the
// report and joined into the returned error; they never stop later tables.
func (s *SeedService) Migrate(ctx context.Context) (*model.SeedReport, error) {
	report := &model.SeedReport{Tables: make([]model.SeedTableResult, 0, len(s.documents))}

	var errs []error
	for _, doc := range s.documents {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		result, err := s.migrateTable(doc)
		if err != nil {
			tableErr := &MigrationTableError{Table: doc.Table, Err: err}
			result = model.SeedTableResult{Table: doc.Table, Status: model.SeedStatusFailed, Error: tableErr.Error()}
			errs = append(errs, tableErr)
			slog.Error("seed table failed", "error", err, "table", doc.Table, "source", doc.Name)
		}

		seedTablesTotal.WithLabelValues(doc.Table, string(result.Status)).Inc()
		report.Tables = append(report.Tables, result)
	}

	slog.Info("seed run finished",
		"migrated", report.Migrated(),
		"skipped", report.Skipped(),
		"failed", report.Failed(),
	)

	return report, errors.Join(errs...)
}

func (s *SeedService) migrateTable(doc seed.Document) (model.SeedTableResult, error) {
	count, err := s.tables.Count(doc.Table)
	if err != nil {
		return model.SeedTableResult{}, fmt.Errorf("count rows: %w", err)
	}
	if count > 0 {
		slog.Debug("seed table already populated", "table", doc.Table, "rows", count)
		return model.SeedTableResult{Table: doc.Table, Status: model.SeedStatusSkipped}, nil
	}

	rows, err := doc.Rows()
	if err != nil {
		return model.SeedTableResult{}, err
	}

	prepared := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		r, err := prepareRow(row)
		if err != nil {
			return model.SeedTableResult{}, err
		}
		prepared = append(prepared, r)
	}

	err = s.tables.Insert(doc.Table, prepared)
	if err != nil {
		return model.SeedTableResult{}, fmt.Errorf("insert rows: %w", err)
	}

	slog.Info("seed table migrated", "table", doc.Table, "rows", len(prepared))
	return model.SeedTableResult{Table: doc.Table, Status: model.SeedStatusMigrated, Rows: len(prepared)}, nil
}

// prepareRow turns decoded JSON values into values the SQL driver accepts.
func prepareRow(row map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(row)+1)
	for col, v := range row {
		switch val := v.(type) {
		case []any, map[string]any:
			b, err := json.Marshal(val)
			if err != nil {
				return nil, fmt.Errorf("encode column %s: %w", col, err)
			}
			out[col] = string(b)
		case float64:
			if val == math.Trunc(val) && math.Abs(val) < 1<<53 {
				out[col] = int64(val)
			} else {
				out[col] = val
			}
		default:
			out[col] = val
		}
	}

	id, _ := out["id"].(string)
	if id == "" {
		out["id"] = uuid.New().String()
	}
	return out, nil
}
