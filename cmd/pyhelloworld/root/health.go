package root

import (
	"fmt"

	"github.com/flarebyte/pyhelloworld/internal/greeting"
	"github.com/spf13/cobra"
)

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Print the health status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), greeting.Health())
			return err
		},
	}
}
