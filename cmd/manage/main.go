package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "manage",
	Short: "Study assistant maintenance commands",
	Long: `Maintenance commands for the study assistant backend.

Available subcommands:
  migrate - Create or update the database schema
  seed    - Create the initial study topics
  token   - Sign a development bearer token
  events  - Print chat events from NATS as they arrive`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(migrateCmd, seedCmd, tokenCmd, eventsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
