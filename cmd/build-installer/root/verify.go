package root

import (
	"fmt"

	"github.com/flarebyte/pyhelloworld/internal/verify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newVerifyCmd(a *app) *cobra.Command {
	var exe string
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check that the bundled executable prints the expected greeting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if exe == "" {
				exe = a.cfg.Executable
			}
			a.log.Debug("verifying executable", zap.String("exe", exe))
			if err := verify.Executable(cmd.Context(), a.runner, exe, a.cfg.Verify); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "[v] %s prints %q\n", exe, a.cfg.Verify.Expect)
			return err
		},
	}
	cmd.Flags().StringVar(&exe, "exe", "", "Executable to check (default: configured executable)")
	return cmd
}

func newTestInstallCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "test-install",
		Short: "Silently install the test installer under $TEMP and verify it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			installer := a.cfg.Installer.TestOutput
			dir := verify.InstallDir(a.getenv("TEMP"), a.cfg.Verify)
			_, _ = fmt.Fprintf(out, "Installing %s to %s...\n", installer, dir)
			exe, err := verify.SilentInstall(cmd.Context(), a.runner, installer, dir, a.cfg.Verify)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(out, "[v] Installed: %s\n", exe)
			if err := verify.Executable(cmd.Context(), a.runner, exe, a.cfg.Verify); err != nil {
				return err
			}
			_, err = fmt.Fprintf(out, "[v] %s prints %q\n", exe, a.cfg.Verify.Expect)
			return err
		},
	}
}
