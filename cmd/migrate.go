package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/artefakt/archive-api/internal/database"
	"github.com/artefakt/archive-api/internal/models"
	"github.com/artefakt/archive-api/pkg/config"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema",
	Long: `Bring the archive database schema up to date.

The schema is managed with GORM auto-migration: running this command
creates missing tables, columns, and indexes for every model. Existing
data is preserved.`,
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.Initialize(cfg.Database.Path, cfg.Database.Verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	if err := db.AutoMigrate(
		&models.Album{},
		&models.MediaItem{},
		&models.Person{},
		&models.User{},
		&models.Painting{},
		&models.MeetingMinute{},
		&models.ElementDetection{},
	); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Database schema is up to date")
	return nil
}
