package pipeline

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

func ensurePrerequisiteRunner(ctx context.Context, in State, deps Deps) (State, error) {
	if StampOf(deps.Finder.Stat, in.Executable).Exists {
		return in, nil
	}
	argv := deps.Config.Prerequisite
	deps.printf("Bundled executable not found. Building first...")
	deps.Logger.Info("running prerequisite build", zap.Strings("argv", argv))
	cmd := Command{Program: argv[0], Args: argv[1:], Stdout: deps.Out, Stderr: deps.Out}
	res, err := deps.Runner.Run(ctx, cmd)
	if err == nil && res.ExitCode == 0 {
		in.Built = true
		return in, nil
	}
	e := &Error{
		Kind:    ErrPrerequisiteBuildFailed,
		Step:    StepEnsurePrerequisite,
		Message: "Failed to build bundled executable",
		Err:     err,
	}
	if err != nil {
		e.Hints = []string{err.Error()}
	} else {
		e.Hints = []string{fmt.Sprintf("%s exited with code %d", strings.Join(argv, " "), res.ExitCode)}
	}
	return in, e
}

func init() { Register(StepEnsurePrerequisite, ensurePrerequisiteRunner) }
