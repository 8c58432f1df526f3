package pipeline

import (
	"context"
	"fmt"

	"github.com/flarebyte/pyhelloworld/internal/config"
	"go.uber.org/zap"
)

// CompileArgs builds the compiler argv after the program name.
func CompileArgs(c config.Compiler, script string, testMode bool) []string {
	args := make([]string, 0, 2)
	if testMode && c.TestDefine != "" {
		args = append(args, c.TestDefine)
	}
	return append(args, script)
}

// ModeDescription labels the privilege level of an installer build.
func ModeDescription(testMode bool) string {
	if testMode {
		return "(user-level, no UAC)"
	}
	return "(admin-level)"
}

func compileRunner(ctx context.Context, in State, deps Deps) (State, error) {
	if in.UpToDate {
		return in, nil
	}
	c := deps.Config.Compiler
	deps.printf("Creating installer using %s %s...", c.Name, ModeDescription(in.Options.TestMode))
	deps.printf("NSI file: %s", in.Script)
	deps.printf("Output: %s", in.Output)

	cmd := Command{Program: in.Tool, Args: CompileArgs(c, in.Script, in.Options.TestMode)}
	deps.Logger.Debug("invoking compiler", zap.String("cmd", cmd.String()))
	deps.Progress.Start("Compiling installer...")
	res, err := deps.Runner.Run(ctx, cmd)
	deps.Progress.Stop()
	if err != nil {
		return in, &Error{
			Kind:    ErrCompileFailed,
			Step:    StepCompile,
			Message: fmt.Sprintf("%s failed to start", c.Name),
			Hints:   []string{err.Error()},
			Err:     err,
		}
	}
	if res.ExitCode != 0 {
		return in, &Error{
			Kind:    ErrCompileFailed,
			Step:    StepCompile,
			Message: fmt.Sprintf("%s failed with exit code: %d", c.Name, res.ExitCode),
			Hints:   []string{"Output:"},
			Output:  res.Stdout + "\n" + res.Stderr,
		}
	}
	in.Compiled = true
	return in, nil
}

func init() { Register(StepCompile, compileRunner) }
