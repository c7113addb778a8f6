package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chapterweb/chaptersite/internal/db"
	"github.com/chapterweb/chaptersite/internal/repository"
	"github.com/chapterweb/chaptersite/internal/service"
)

func SeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the bundled seed data into empty tables",
		Long:  "Runs schema migrations, then fills every seed table that has no rows. Populated tables are skipped, so the command is safe to re-run.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()

			database, err := openDB(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			err = db.RunMigrations(database.DB, cfg.DBDriver)
			if err != nil {
				return err
			}

			report, err := service.NewSeedService(repository.NewTableRepository(database)).Migrate(cmd.Context())

			out := cmd.OutOrStdout()
			for _, t := range report.Tables {
				line := fmt.Sprintf("%-16s %-9s", t.Table, t.Status)
				if t.Rows > 0 {
					line += fmt.Sprintf(" %d rows", t.Rows)
				}
				if t.Error != "" {
					line += " " + t.Error
				}
				fmt.Fprintln(out, line)
			}
			fmt.Fprintf(out, "\n%d migrated, %d skipped, %d failed\n", report.Migrated(), report.Skipped(), report.Failed())

			return err
		},
	}
}
