package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/andrewpaige1/todolists/config"
	"github.com/andrewpaige1/todolists/logger"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "todolists",
	Short: "Todo lists API",
	Long: `A small API for todo lists and their items.

Lists own their items: deleting a list deletes every item in it.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: $TODOLISTS_CONFIG or ./todolists.yaml)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(tokenCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads the configuration and installs the logger.
func setup() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	logger.Init(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	return cfg, nil
}

func connect(cfg *config.Config) (*gorm.DB, func(), error) {
	db, err := config.Connect(cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}
	return db, closeFn, nil
}
