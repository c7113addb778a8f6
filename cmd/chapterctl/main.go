package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/chapterweb/chaptersite/cmd/chapterctl/cmd"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "chapterctl",
		Short:         "Operator tools for the chapter site",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(cmd.SeedCmd())
	rootCmd.AddCommand(cmd.DBCmd())
	rootCmd.AddCommand(cmd.StorageCmd())
	rootCmd.AddCommand(cmd.AdminCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
