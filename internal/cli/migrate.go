package cli

import (
	"github.com/spf13/cobra"

	"github.com/maxviazov/studio-backoffice/internal/app"
)

func newMigrateCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down|status]",
		Short:     "Apply, roll back or list schema migrations for the configured driver",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down", "status"},
		RunE: func(cmd *cobra.Command, args []string) error {
			direction := "up"
			if len(args) == 1 {
				direction = args[0]
			}

			storage, err := app.OpenStorage(cmd.Context(), e.cfg, e.log)
			if err != nil {
				return err
			}
			defer storage.Close()

			l := e.log.With().Str("module", "migrate").Str("dialect", string(storage.Dialect())).Logger()
			if err := storage.Migrate(direction, l); err != nil {
				return err
			}
			l.Info().Str("direction", direction).Msg("migrations done")
			return nil
		},
	}
}
