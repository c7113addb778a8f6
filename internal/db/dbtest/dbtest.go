// Package dbtest opens throwaway in-memory databases with the real schema applied.
package dbtest

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"

	"github.com/chapterweb/chaptersite/internal/db"
)

// New returns a migrated in-memory sqlite database that is closed when the test ends.
func New(t testing.TB) *sqlx.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", name)

	database, err := db.Init("sqlite", dsn)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	database.SetMaxOpenConns(1)

	t.Cleanup(func() { _ = database.Close() })

	if err := db.RunMigrations(database.DB, "sqlite"); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return database
}
