package main

import (
	"fmt"

	migrate "github.com/rubenv/sql-migrate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/johnquangdev/contact-qa/internal/infrastructure/database"
)

var migrateMax int

// migrateCmd applies the embedded schema migrations
var migrateCmd = &cobra.Command{
	Use:   "migrate [up|down]",
	Short: "Apply or roll back database migrations",
	Long: `Apply or roll back the embedded schema migrations.

"up" applies pending migrations, "down" rolls back applied ones.
--max limits how many are run; 0 means all for up and one for down.`,
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"up", "down"},
	RunE:      runMigrate,
}

func init() {
	migrateCmd.Flags().IntVar(&migrateMax, "max", 0, "maximum number of migrations to run")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	direction := migrate.Up
	limit := migrateMax
	if args[0] == "down" {
		direction = migrate.Down
		if limit == 0 {
			limit = 1
		}
	}

	db, err := database.NewPostgresDB(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.CloseDB(db); err != nil {
			logger.Warn("Failed to close database", zap.Error(err))
		}
	}()

	n, err := database.Migrate(db, direction, limit, logger)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Applied %d migration(s) %s\n", n, args[0])
	return nil
}
