package main

import (
	"os"

	"github.com/spf13/cobra"

	"civicdesk/internal/interfaces/cli/migrate"
	"civicdesk/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "civicdesk",
		Short: "Civicdesk - civic complaint intake and triage service",
		Long:  `Civicdesk receives citizen complaints, categorizes them, detects duplicates and scores their priority for municipal follow-up.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
