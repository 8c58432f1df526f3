package root

import (
	"context"
	"os"

	"github.com/flarebyte/pyhelloworld/internal/config"
	"github.com/flarebyte/pyhelloworld/internal/logging"
	"github.com/flarebyte/pyhelloworld/internal/pipeline"
	"github.com/flarebyte/pyhelloworld/internal/progress"
	"github.com/flarebyte/pyhelloworld/internal/versioncmd"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// app holds what PersistentPreRunE prepares for every subcommand.
type app struct {
	cfgPath string
	verbose bool

	cfg    config.Config
	log    *zap.Logger
	runner pipeline.CommandRunner
	finder pipeline.Finder
	getenv func(string) string
}

type buildFlags struct {
	test  bool
	force bool
}

func bindGlobalFlags(fs *pflag.FlagSet, a *app) {
	fs.StringVarP(&a.cfgPath, "config", "c", config.DefaultPath, "Path to packaging config (.cue)")
	fs.BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
}

func bindBuildFlags(fs *pflag.FlagSet, f *buildFlags) {
	fs.BoolVar(&f.test, "test", false, "Build the unprivileged test installer")
	fs.BoolVar(&f.force, "force", false, "Rebuild even when the installer is up to date")
}

// NewRootCmd creates the root command for build-installer. A nil runner uses
// the real process runner.
func NewRootCmd(runner pipeline.CommandRunner) *cobra.Command {
	if runner == nil {
		runner = pipeline.ExecRunner{}
	}
	return newRootCmd(&app{runner: runner, finder: pipeline.SystemFinder(), getenv: os.Getenv})
}

func newRootCmd(a *app) *cobra.Command {
	bf := &buildFlags{}
	cmd := &cobra.Command{
		Use:           "build-installer",
		Short:         "Compile and verify the Windows installer with makensis",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.prepare(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.build(cmd, pipeline.Options{TestMode: bf.test, Force: bf.force})
		},
	}
	bindGlobalFlags(cmd.PersistentFlags(), a)
	bindBuildFlags(cmd.Flags(), bf)

	cmd.AddCommand(newStatusCmd(a))
	cmd.AddCommand(newVerifyCmd(a))
	cmd.AddCommand(newTestInstallCmd(a))
	cmd.AddCommand(versioncmd.New("build-installer"))
	return cmd
}

// prepare builds the logger and loads the config. The default config file may be
// absent; an explicit --config must exist.
func (a *app) prepare(cmd *cobra.Command) error {
	a.log = logging.New(cmd.ErrOrStderr(), a.verbose)
	explicit := cmd.Root().PersistentFlags().Changed("config")
	cfg, err := config.Load(a.cfgPath, !explicit)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log.Debug("config loaded", zap.String("path", a.cfgPath), zap.Bool("explicit", explicit))
	return nil
}

func (a *app) build(cmd *cobra.Command, opts pipeline.Options) error {
	deps := pipeline.Deps{
		Config:   a.cfg,
		Runner:   a.runner,
		Finder:   a.finder,
		Out:      cmd.OutOrStdout(),
		Logger:   a.log,
		Progress: progress.New(cmd.ErrOrStderr()),
		Manifest: newManifestWriter(a.log, "."),
	}
	_, err := pipeline.Run(cmd.Context(), opts, deps)
	return err
}

// Execute runs the root command with provided args.
func Execute(args []string) error {
	cmd := NewRootCmd(nil)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(context.Background())
}
