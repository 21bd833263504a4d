package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/maxviazov/studio-backoffice/internal/app"
)

func newServeCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API until SIGINT or SIGTERM",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, err := app.New(ctx, e.cfg, e.log)
			if err != nil {
				return err
			}
			defer func() {
				if err := a.Close(); err != nil {
					e.log.Error().Err(err).Msg("close storage")
				}
			}()

			e.log.Info().Str("version", e.cfg.App.Version).Msg("service started")
			return a.Run(ctx)
		},
	}
}
