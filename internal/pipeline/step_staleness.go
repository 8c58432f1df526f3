package pipeline

import (
	"context"
)

func checkStalenessRunner(ctx context.Context, in State, deps Deps) (State, error) {
	if in.Options.Force {
		deps.printf("Rebuilding installer (forced)...")
		return in, nil
	}
	stat := deps.Finder.Stat
	if IsUpToDate(StampOf(stat, in.Output), StampOf(stat, in.Script), StampOf(stat, in.Executable)) {
		in.UpToDate = true
		deps.printf("Installer is up to date: %s", in.Output)
		return in, nil
	}
	deps.printf("Rebuilding installer (dependencies changed)...")
	return in, nil
}

func init() { Register(StepCheckStaleness, checkStalenessRunner) }
