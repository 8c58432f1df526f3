package pipeline

import (
	"context"

	"go.uber.org/zap"
)

func discoverToolRunner(ctx context.Context, in State, deps Deps) (State, error) {
	c := deps.Config.Compiler
	tool, err := deps.Finder.FindTool(ToolSpec{Name: c.Name, AltNames: c.AltNames, EnvVar: c.EnvVar})
	if err != nil {
		return in, err
	}
	deps.Logger.Debug("compiler located", zap.String("path", tool))
	deps.printf("[v] Found %s at: %s", c.Name, tool)
	in.Tool = tool
	return in, nil
}

func init() { Register(StepDiscoverTool, discoverToolRunner) }
