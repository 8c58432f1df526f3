package root

import (
	"fmt"
	"io"
	"os"

	"github.com/flarebyte/pyhelloworld/internal/greeting"
	"github.com/flarebyte/pyhelloworld/internal/locator"
	"github.com/spf13/cobra"
)

func newPathsCmd(loc *locator.Locator) *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "paths",
		Short: "Show how resources are resolved",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writePaths(cmd.OutOrStdout(), loc, name)
		},
	}
	cmd.Flags().StringVar(&name, "data-path", greeting.DefaultDataFile, "Data file name to resolve")
	return cmd
}

// A missing data file is reported, not returned as an error.
func writePaths(w io.Writer, loc *locator.Locator, name string) error {
	p := loc.ResolveDataPath(name)
	lines := []string{
		fmt.Sprintf("Running bundled: %t", loc.IsBundled()),
		"Application directory: " + loc.ApplicationDirectory(),
		"Data path: " + p,
	}
	if st, err := os.Stat(p); err == nil && !st.IsDir() {
		content, err := greeting.Read(p)
		if err != nil {
			return fmt.Errorf("read data file: %w", err)
		}
		lines = append(lines, "Data file found at: "+p, "Data content: "+content)
	} else {
		lines = append(lines, "Data file not found at: "+p)
	}
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}
