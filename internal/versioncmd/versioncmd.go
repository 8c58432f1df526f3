// Package versioncmd provides the version subcommand shared by both binaries.
package versioncmd

import (
	"fmt"
	"runtime"
	"time"

	"github.com/flarebyte/pyhelloworld/internal/buildinfo"
	"github.com/spf13/cobra"
)

// New returns a `version` command printing prog and the build summary.
func New(prog string) *cobra.Command {
	var short, asJSON bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if short {
				v := buildinfo.Version
				if v == "" {
					v = "dev"
				}
				_, err := fmt.Fprintln(out, v)
				return err
			}
			if !asJSON {
				_, err := fmt.Fprintf(out, "%s %s\n", prog, buildinfo.Summary())
				return err
			}
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s version: %s\n", prog, buildinfo.Summary())
			return encodeJSON(out, map[string]any{
				"program":   prog,
				"version":   buildinfo.Version,
				"commit":    buildinfo.Commit,
				"date":      buildinfo.Date,
				"built_by":  buildinfo.BuiltBy,
				"mode":      modeName(),
				"go":        runtime.Version(),
				"go_os":     runtime.GOOS,
				"go_arch":   runtime.GOARCH,
				"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
			})
		},
	}
	cmd.Flags().BoolVar(&short, "short", false, "Print only the version string")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print detailed JSON version info")
	return cmd
}

func modeName() string {
	if buildinfo.Mode == "" {
		return "development"
	}
	return buildinfo.Mode
}
