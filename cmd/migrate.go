package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrewpaige1/todolists/logger"
	"github.com/andrewpaige1/todolists/migrations"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the database schema",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := setup()
		if err != nil {
			return err
		}
		db, closeDB, err := connect(cfg)
		if err != nil {
			return err
		}
		defer closeDB()

		if err := migrations.Up(db); err != nil {
			return err
		}
		logger.Module("migrate").Info("migrations applied")
		return nil
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the last applied migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := setup()
		if err != nil {
			return err
		}
		db, closeDB, err := connect(cfg)
		if err != nil {
			return err
		}
		defer closeDB()

		if err := migrations.Down(db); err != nil {
			return err
		}
		logger.Module("migrate").Info("rolled back last migration")
		return nil
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "List migrations and whether they are applied",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := setup()
		if err != nil {
			return err
		}
		db, closeDB, err := connect(cfg)
		if err != nil {
			return err
		}
		defer closeDB()

		statuses, err := migrations.List(db)
		if err != nil {
			return err
		}
		for _, s := range statuses {
			state := "pending"
			if s.Applied {
				state = "applied"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s\n", state, s.ID)
		}
		return nil
	},
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
	migrateCmd.AddCommand(migrateStatusCmd)
}
