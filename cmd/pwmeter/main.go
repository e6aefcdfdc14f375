// Package main provides the pwmeter command line tool: it rates passwords,
// generates new ones and mints API tokens for the HTTP service.
package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "pwmeter",
		Short:        "Check password strength and generate passwords",
		SilenceUsage: true,
	}

	root.AddCommand(
		checkCommand(),
		generateCommand(),
		tokenCommand(),
	)

	return root
}

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
