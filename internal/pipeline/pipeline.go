// Package pipeline drives the installer compiler to produce a verified
// installer. It orchestrates external tools and never reimplements them.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/flarebyte/pyhelloworld/internal/config"
	"go.uber.org/zap"
)

// Options are the per-run switches of the build CLI.
type Options struct {
	TestMode bool
	Force    bool
}

// Indicator shows activity while a captured child process runs.
type Indicator interface {
	Start(msg string)
	Stop()
}

// ManifestWriter records a successful build next to the installer.
type ManifestWriter func(st State) error

// Deps carries everything a step touches outside its State.
type Deps struct {
	Config   config.Config
	Runner   CommandRunner
	Finder   Finder
	Out      io.Writer
	Logger   *zap.Logger
	Progress Indicator
	Manifest ManifestWriter
}

// State flows through the steps. Field order follows the steps.
type State struct {
	Options      Options
	Tool         string
	Version      Version
	VersionKnown bool
	Built        bool
	Script       string
	Executable   string
	Output       string
	UpToDate     bool
	Compiled     bool
	Size         int64
	ModTime      time.Time
}

// SizeKB formats the artifact size with two decimals.
func (s State) SizeKB() string {
	return fmt.Sprintf("%.2f", float64(s.Size)/1024)
}

// Run executes Steps in order and stops at the first failure.
func Run(ctx context.Context, opts Options, deps Deps) (State, error) {
	deps = deps.withDefaults()
	in := State{
		Options:    opts,
		Script:     deps.Config.Installer.Script,
		Executable: deps.Config.Executable,
		Output:     deps.Config.OutputFor(opts.TestMode),
	}
	for _, name := range Steps {
		start := time.Now()
		out, err := RunStep(ctx, name, in, deps)
		deps.Logger.Debug("step finished",
			zap.String("step", name),
			zap.Duration("elapsed", time.Since(start)),
			zap.Bool("failed", err != nil))
		if err != nil {
			return in, err
		}
		in = out
	}
	return in, nil
}

func (d Deps) withDefaults() Deps {
	if d.Runner == nil {
		d.Runner = ExecRunner{}
	}
	if d.Finder.LookupEnv == nil || d.Finder.LookPath == nil || d.Finder.Stat == nil {
		sys := SystemFinder()
		if d.Finder.LookupEnv == nil {
			d.Finder.LookupEnv = sys.LookupEnv
		}
		if d.Finder.LookPath == nil {
			d.Finder.LookPath = sys.LookPath
		}
		if d.Finder.Stat == nil {
			d.Finder.Stat = sys.Stat
		}
	}
	if d.Out == nil {
		d.Out = os.Stdout
	}
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Progress == nil {
		d.Progress = noopIndicator{}
	}
	return d
}

type noopIndicator struct{}

func (noopIndicator) Start(string) {}
func (noopIndicator) Stop()        {}

func (d Deps) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(d.Out, format+"\n", args...)
}
