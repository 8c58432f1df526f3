package pipeline

import "errors"

// Error kinds. Match with errors.Is.
var (
	ErrToolNotFound            = errors.New("ToolNotFound")
	ErrToolTooOld              = errors.New("ToolTooOld")
	ErrPrerequisiteBuildFailed = errors.New("PrerequisiteBuildFailed")
	ErrCompileFailed           = errors.New("CompileFailed")
	ErrOutputMissing           = errors.New("OutputMissing")
)

// Error is a terminal pipeline failure. None of them are retried.
type Error struct {
	Kind    error
	Step    string
	Message string
	Hints   []string
	// Output is the verbatim captured output of the failing tool, if any.
	Output string
	Err    error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Is(target error) bool { return target == e.Kind }

func (e *Error) Unwrap() error { return e.Err }

// ExitCode implements the exit code contract of the command entry point.
func (e *Error) ExitCode() int { return 1 }

// Hint returns follow-up lines for the user.
func (e *Error) Hint() []string { return e.Hints }

// CapturedOutput returns tool output to print verbatim.
func (e *Error) CapturedOutput() string { return e.Output }
