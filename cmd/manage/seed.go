package main

import (
	"fmt"
	"io"
	"os"

	"study-assistant-be/internal/config"
	"study-assistant-be/internal/repository/unitofwork"
	"study-assistant-be/internal/seed"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the initial study topics",
	Long: `Create the initial study topics. Topics that already exist by name are
reported and left untouched, so the command can be run repeatedly.`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "YAML topic catalog to use instead of the built-in one")
}

func runSeed(cmd *cobra.Command, args []string) error {
	topics, err := loadTopics(seedFile)
	if err != nil {
		return err
	}

	db, err := openDB(config.Load())
	if err != nil {
		return err
	}

	results, err := seed.NewSeeder(unitofwork.NewRepositoryFactory(db)).SeedTopics(cmd.Context(), topics)
	if err != nil {
		return err
	}

	printSeedResults(cmd.OutOrStdout(), results)
	return nil
}

func loadTopics(path string) ([]seed.TopicSeed, error) {
	if path == "" {
		return seed.DefaultTopics()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read topic catalog: %w", err)
	}
	return seed.ParseTopics(data)
}

func printSeedResults(w io.Writer, results []seed.TopicResult) {
	success := color.New(color.FgGreen)
	warning := color.New(color.FgYellow)

	created := 0
	for _, r := range results {
		if r.Created {
			created++
			success.Fprintf(w, "Created topic: %s\n", r.Name)
		} else {
			warning.Fprintf(w, "Topic already exists: %s\n", r.Name)
		}
	}
	success.Fprintf(w, "Successfully set up initial data. Created %d new topics.\n", created)
}
