// Package verify runs the acceptance checks against built or installed
// executables: the first stdout line must be the expected greeting.
package verify

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/flarebyte/pyhelloworld/internal/config"
	"github.com/flarebyte/pyhelloworld/internal/pipeline"
)

// Error kinds. Match with errors.Is.
var (
	ErrExecutableMissing  = errors.New("ExecutableMissing")
	ErrInstallerMissing   = errors.New("InstallerMissing")
	ErrInstallFailed      = errors.New("InstallFailed")
	ErrRunFailed          = errors.New("RunFailed")
	ErrUnexpectedGreeting = errors.New("UnexpectedGreeting")
)

// Error is a terminal verification failure.
type Error struct {
	Kind    error
	Message string
	Output  string
}

func (e *Error) Error() string        { return e.Message }
func (e *Error) Is(target error) bool { return target == e.Kind }
func (e *Error) ExitCode() int        { return 1 }

// CapturedOutput returns child output to print verbatim.
func (e *Error) CapturedOutput() string { return e.Output }

// FirstLine returns the first line of trimmed stdout.
func FirstLine(stdout string) string {
	s := strings.TrimSpace(stdout)
	line, _, _ := strings.Cut(s, "\n")
	return strings.TrimRight(line, "\r")
}

// Executable runs exe with --data-path and checks the first stdout line.
func Executable(ctx context.Context, r pipeline.CommandRunner, exe string, v config.Verify) error {
	if _, err := os.Stat(exe); err != nil {
		return &Error{Kind: ErrExecutableMissing, Message: "Executable not found at " + exe}
	}
	res, err := r.Run(ctx, pipeline.Command{Program: exe, Args: []string{"--data-path", v.DataPath}})
	if err != nil {
		return &Error{Kind: ErrRunFailed, Message: err.Error()}
	}
	if res.ExitCode != 0 {
		return &Error{
			Kind:    ErrRunFailed,
			Message: fmt.Sprintf("%s exited with code: %d", exe, res.ExitCode),
			Output:  res.Stdout + "\n" + res.Stderr,
		}
	}
	if got := FirstLine(res.Stdout); got != v.Expect {
		return &Error{
			Kind:    ErrUnexpectedGreeting,
			Message: fmt.Sprintf("Expected %q, got: %q", v.Expect, got),
		}
	}
	return nil
}

// InstallArgs builds the silent install argv for dir.
func InstallArgs(v config.Verify, dir string) []string {
	return []string{v.SilentFlag, v.DirFlag + dir}
}

// InstallDir returns <tempRoot>/<installDirName>; an empty tempRoot falls back
// to the OS temporary directory.
func InstallDir(tempRoot string, v config.Verify) string {
	if tempRoot == "" {
		tempRoot = os.TempDir()
	}
	return filepath.Join(tempRoot, v.InstallDirName)
}

// SilentInstall runs installer silently into dir and returns the installed
// executable path.
func SilentInstall(ctx context.Context, r pipeline.CommandRunner, installer, dir string, v config.Verify) (string, error) {
	if _, err := os.Stat(installer); err != nil {
		return "", &Error{Kind: ErrInstallerMissing, Message: installer + " does not exist"}
	}
	res, err := r.Run(ctx, pipeline.Command{Program: installer, Args: InstallArgs(v, dir)})
	if err != nil {
		return "", &Error{Kind: ErrInstallFailed, Message: err.Error()}
	}
	if res.ExitCode != 0 {
		return "", &Error{
			Kind:    ErrInstallFailed,
			Message: fmt.Sprintf("Installation failed with exit code: %d", res.ExitCode),
			Output:  res.Stdout + "\n" + res.Stderr,
		}
	}
	exe := filepath.Join(dir, v.ExeName)
	if _, err := os.Stat(exe); err != nil {
		return "", &Error{Kind: ErrInstallFailed, Message: "Installed executable not found at: " + exe}
	}
	return exe, nil
}
