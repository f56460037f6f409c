package main

import (
	"fmt"
	"os"

	"inventory-sync/config"
	"inventory-sync/internal/database"
	"inventory-sync/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// @title           Inventory Sync API
// @version         1.0
// @description     Stock ledger, order reservations, alerts and change feed for inventory clients.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootOptions struct {
	EnvFile string
	cfg     *config.Config
	log     *zap.Logger
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "inventory-sync",
		Short:         "Inventory synchronization service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := godotenv.Load(opts.EnvFile); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("load %s: %w", opts.EnvFile, err)
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log, err := logger.NewZapLogger(logger.Config{
				IsDevelopment:     cfg.Server.AppEnv == "dev",
				Encoding:          cfg.Logger.Encoding,
				Level:             cfg.Logger.Level,
				DisableCaller:     cfg.Logger.DisableCaller,
				DisableStacktrace: cfg.Logger.DisableStacktrace,
			})
			if err != nil {
				return fmt.Errorf("build logger: %w", err)
			}
			opts.cfg, opts.log = cfg, log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.log != nil {
				_ = opts.log.Sync()
			}
		},
	}

	cmd.PersistentFlags().StringVar(&opts.EnvFile, "env-file", "configs/.env", "dotenv file loaded before the environment is read")

	cmd.AddCommand(newServeCommand(opts))
	cmd.AddCommand(newMigrateCommand(opts))
	return cmd
}

func newMigrateCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := database.NewConnection(opts.cfg.Database, opts.log)
			if err != nil {
				return err
			}
			if sqlDB, err := db.DB(); err == nil {
				defer sqlDB.Close()
			}
			if err := database.Migrate(db); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			opts.log.Info("Schema is up to date", zap.String("driver", opts.cfg.Database.Driver))
			return nil
		},
	}
}
