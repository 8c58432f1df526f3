package pipeline

import (
	"context"

	"go.uber.org/zap"
)

// The manifest is informational; a write failure is logged, not fatal.
func writeManifestRunner(ctx context.Context, in State, deps Deps) (State, error) {
	if in.UpToDate || !in.Compiled || deps.Manifest == nil {
		return in, nil
	}
	if err := deps.Manifest(in); err != nil {
		deps.Logger.Warn("build manifest not written", zap.String("output", in.Output), zap.Error(err))
	}
	return in, nil
}

func init() { Register(StepWriteManifest, writeManifestRunner) }
