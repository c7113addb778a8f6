package cmd

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/chapterweb/chaptersite/internal/config"
	"github.com/chapterweb/chaptersite/internal/db"
	"github.com/chapterweb/chaptersite/internal/logger"
)

// loadConfig reads the same environment as the server and sets up logging.
func loadConfig() *config.Config {
	cfg := config.Load()
	logger.Init(cfg.IsDevelopment(), cfg.SentryDSN)
	return cfg
}

func openDB(cfg *config.Config) (*sqlx.DB, error) {
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return database, nil
}
