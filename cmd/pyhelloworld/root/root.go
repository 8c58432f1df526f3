package root

import (
	"os"

	"github.com/flarebyte/pyhelloworld/data"
	"github.com/flarebyte/pyhelloworld/internal/buildinfo"
	"github.com/flarebyte/pyhelloworld/internal/bundle"
	"github.com/flarebyte/pyhelloworld/internal/greeting"
	"github.com/flarebyte/pyhelloworld/internal/locator"
	"github.com/flarebyte/pyhelloworld/internal/logging"
	"github.com/flarebyte/pyhelloworld/internal/versioncmd"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

type options struct {
	dataPath string
}

func bindFlags(fs *pflag.FlagSet, o *options) {
	fs.StringVar(&o.dataPath, "data-path", greeting.DefaultDataFile, "Data file name, relative to the data directory")
}

// NewRootCmd creates the root command for pyhelloworld using loc for every
// path lookup.
func NewRootCmd(loc *locator.Locator, log *zap.Logger) *cobra.Command {
	if log == nil {
		log = zap.NewNop()
	}
	o := &options{}
	cmd := &cobra.Command{
		Use:           "pyhelloworld",
		Short:         "Print a greeting read from a data file",
		Version:       buildinfo.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Debug("resolving data file",
				zap.String("name", o.dataPath),
				zap.Stringer("environment", loc.Environment()))
			return greeting.Run(cmd.OutOrStdout(), loc, o.dataPath)
		},
	}
	cmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")
	bindFlags(cmd.Flags(), o)

	cmd.AddCommand(newHealthCmd())
	cmd.AddCommand(newPathsCmd(loc))
	cmd.AddCommand(versioncmd.New("pyhelloworld"))
	return cmd
}

// Execute runs the root command with provided args. Bundled builds unpack
// their embedded data first and remove it on return.
func Execute(args []string) error {
	log := logging.FromEnv(os.Stderr, logging.DebugEnv, nil)
	defer func() { _ = log.Sync() }()

	env := locator.Detect()
	var opts []locator.Option
	if env == locator.Bundled {
		dir, cleanup, err := bundle.Unpack(data.FS)
		if err != nil {
			log.Warn("embedded data not unpacked; using executable directory", zap.Error(err))
		} else {
			defer cleanup()
			opts = append(opts, locator.WithBundleDir(dir))
		}
	}

	cmd := NewRootCmd(locator.New(env, opts...), log)
	cmd.SetArgs(args)
	return cmd.Execute()
}
