package root

import (
	"github.com/flarebyte/pyhelloworld/internal/status"
	"github.com/spf13/cobra"
)

func newStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show packaging inputs, outputs and whether installers are up to date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			status.Render(cmd.OutOrStdout(), status.Collect(a.cfg, a.finder.Stat))
			return nil
		},
	}
}
