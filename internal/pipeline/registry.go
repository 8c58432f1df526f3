package pipeline

import "context"

// Step names, in execution order.
const (
	StepDiscoverTool       = "discover-tool"
	StepCheckVersion       = "check-version"
	StepEnsurePrerequisite = "ensure-prerequisite"
	StepCheckStaleness     = "check-staleness"
	StepCompile            = "compile"
	StepVerifyOutput       = "verify-output"
	StepWriteManifest      = "write-manifest"
)

// Steps is the fixed linear order of a pipeline run.
var Steps = []string{
	StepDiscoverTool,
	StepCheckVersion,
	StepEnsurePrerequisite,
	StepCheckStaleness,
	StepCompile,
	StepVerifyOutput,
	StepWriteManifest,
}

// Runner executes one step.
type Runner func(ctx context.Context, in State, deps Deps) (State, error)

var registry = map[string]Runner{}

// Register adds a step runner.
func Register(name string, r Runner) {
	registry[name] = r
}

// RunStep executes a registered step by name.
func RunStep(ctx context.Context, name string, in State, deps Deps) (State, error) {
	r, ok := registry[name]
	if !ok {
		return State{}, ErrUnknownStep{name: name}
	}
	return r(ctx, in, deps)
}

// ErrUnknownStep is returned when a step is not registered.
type ErrUnknownStep struct{ name string }

func (e ErrUnknownStep) Error() string { return "unknown step: " + e.name }
