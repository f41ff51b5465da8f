package main

import (
	"github.com/spf13/cobra"

	"github.com/depositodopitty/pit/internal/db"
	"github.com/depositodopitty/pit/internal/logger"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Bring the database schema up to date and exit",
	Long: `Connect to DATABASE_DSN and apply the schema. With MIGRATIONS=true on
PostgreSQL the versioned SQL migrations run, otherwise the tables are created
with AutoMigrate.`,
	Example: `  # Schema only
  pit migrate

  # Schema plus the administrator and sample catalogue
  pit migrate --seed`,
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.Flags().Bool("seed", false, "Seed the administrator and sample rows (also enabled by DB_SEED)")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("migrate")
	seed, _ := cmd.Flags().GetBool("seed")

	opts := db.OptionsFromConfig(cfg)
	opts.Seed = opts.Seed || seed
	if _, err := db.ConnectAndMigrate(opts); err != nil {
		return err
	}
	log.Info().Bool("seeded", opts.Seed).Msg("migrations completed successfully")
	return nil
}
