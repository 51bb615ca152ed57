package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sabbir/outreach-composer/internal/db"
)

var (
	initConfigPath string
	initSkipSeed   bool
)

var initdbCmd = &cobra.Command{
	Use:   "initdb",
	Short: "Create the database schema and seed the catalogs",
	Long:  `Create all tables and indexes, then insert the built-in writing types, tones, role levels, prompt templates and the default profile. Seeding is idempotent and never overwrites existing rows.`,
	RunE:  runInitDB,
}

func init() {
	initdbCmd.Flags().StringVar(&initConfigPath, "config", "", "Path to JSON config file")
	initdbCmd.Flags().BoolVar(&initSkipSeed, "skip-seed", false, "Create the schema without seeding catalog data")
	rootCmd.AddCommand(initdbCmd)
}

func runInitDB(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(initConfigPath)
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	if err := database.EnsureSchema(ctx); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Schema created")

	if initSkipSeed {
		return nil
	}

	if err := database.Seed(ctx); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Catalogs seeded")
	return nil
}
