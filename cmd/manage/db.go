package main

import (
	"fmt"

	"study-assistant-be/internal/config"
	"study-assistant-be/internal/model"
	"study-assistant-be/pkg/database"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run AutoMigrate for every model",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB(config.Load())
		if err != nil {
			return err
		}
		if err := Migrate(db); err != nil {
			return err
		}
		color.Green("Migration completed for %d tables", len(model.All()))
		return nil
	},
}

// Migrate creates or updates all tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(model.All()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

func openDB(cfg *config.Config) (*gorm.DB, error) {
	if cfg.Database.Connection == "" {
		return nil, fmt.Errorf("DB_CONNECTION_STRING is not set")
	}
	db, err := database.NewGormDB(cfg.Database.Driver, cfg.Database.Connection, true)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return db, nil
}
