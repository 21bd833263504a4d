// Package cli is the backoffice command tree.
package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/maxviazov/studio-backoffice/internal/config"
	"github.com/maxviazov/studio-backoffice/internal/logger"
)

// env is what PersistentPreRunE prepares for every subcommand.
type env struct {
	cfgFile string
	cfg     *config.Config
	log     zerolog.Logger
}

// NewRootCmd builds the command tree. Execute in main is the only caller outside tests.
func NewRootCmd() *cobra.Command {
	e := &env{}

	root := &cobra.Command{
		Use:   "backoffice",
		Short: "Studio back-office API",
		Long: `backoffice serves read-only, paginated listings of the studio's records
(finance, staff, blog, portfolio, careers, users) over HTTP.

Storage is Postgres or an embedded SQLite file, selected with storage.driver.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip config loading for commands that don't need it
			if cmd.Name() == "resources" || cmd.Name() == "help" {
				return nil
			}

			cfg, err := config.Load(e.cfgFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if cfg.Logger.ServiceName == "" {
				cfg.Logger.ServiceName = cfg.App.Name
			}
			if cfg.Logger.ServiceVersion == "" {
				cfg.Logger.ServiceVersion = cfg.App.Version
			}
			if cfg.Logger.Env == "" {
				cfg.Logger.Env = cfg.App.Env
			}
			log, err := logger.New(&cfg.Logger)
			if err != nil {
				return fmt.Errorf("failed to init logger: %w", err)
			}
			e.cfg, e.log = cfg, log
			return nil
		},
	}

	root.PersistentFlags().StringVar(&e.cfgFile, "config", "", "config file (YAML); APP_* environment variables override it")
	root.AddCommand(newServeCmd(e), newMigrateCmd(e), newResourcesCmd())
	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
