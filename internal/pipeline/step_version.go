package pipeline

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

func checkVersionRunner(ctx context.Context, in State, deps Deps) (State, error) {
	c := deps.Config.Compiler
	min := MinCompilerVersion
	if c.MinVersion != "" {
		v, ok := ParseVersion(c.MinVersion)
		if !ok {
			return in, fmt.Errorf("%s: invalid minimum version %q", StepCheckVersion, c.MinVersion)
		}
		min = v
	}
	v, ok := QueryVersion(ctx, deps.Runner, in.Tool, c.VersionFlag)
	if !ok {
		// Unparseable output is accepted with a warning.
		deps.Logger.Warn("compiler version unknown", zap.String("tool", in.Tool))
		deps.printf("[!] Warning: Could not determine %s version", c.Name)
		return in, nil
	}
	if err := GateVersion(c.Name, v, min); err != nil {
		return in, err
	}
	deps.printf("[v] %s version: %s (>= %s)", c.Name, v, min)
	in.Version = v
	in.VersionKnown = true
	return in, nil
}

func init() { Register(StepCheckVersion, checkVersionRunner) }
