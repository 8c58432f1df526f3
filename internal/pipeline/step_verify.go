package pipeline

import (
	"context"
)

func verifyOutputRunner(ctx context.Context, in State, deps Deps) (State, error) {
	if in.UpToDate {
		return in, nil
	}
	st := StampOf(deps.Finder.Stat, in.Output)
	if !st.Exists {
		return in, &Error{
			Kind:    ErrOutputMissing,
			Step:    StepVerifyOutput,
			Message: "Installer not created at expected location: " + in.Output,
		}
	}
	in.Size = st.Size
	in.ModTime = st.ModTime
	deps.printf("[v] %s", in.Output)
	deps.printf("    Size: %s KB", in.SizeKB())
	return in, nil
}

func init() { Register(StepVerifyOutput, verifyOutputRunner) }
