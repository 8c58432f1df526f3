// Package greeting reads the greeting data file and prints the greeting.
package greeting

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/flarebyte/pyhelloworld/internal/locator"
)

// DefaultDataFile is the logical data file name used when none is given.
const DefaultDataFile = "data.txt"

const (
	bundledLine     = "(Running from bundled application)"
	developmentLine = "(Running from development environment)"
)

// ErrDataFileMissing is matched by errors.Is for a missing data file.
var ErrDataFileMissing = errors.New("data file not found")

// DataFileMissingError reports the path that was tried.
type DataFileMissingError struct {
	Path    string
	Bundled bool
}

func (e *DataFileMissingError) Error() string {
	return "Error: Data file not found at " + e.Path
}

// Hint returns extra guidance lines for the user.
func (e *DataFileMissingError) Hint() []string {
	if !e.Bundled {
		return nil
	}
	return []string{
		"This appears to be a bundled application.",
		"Please ensure the data file is properly bundled in the build.",
	}
}

func (e *DataFileMissingError) Is(target error) bool { return target == ErrDataFileMissing }

// ExitCode implements the exit code contract of the command entry point.
func (e *DataFileMissingError) ExitCode() int { return 1 }

// Format returns the greeting line for content.
func Format(content string) string {
	return "Hello " + strings.TrimSpace(content)
}

// EnvironmentLine describes where the program runs.
func EnvironmentLine(env locator.Environment) string {
	if env == locator.Bundled {
		return bundledLine
	}
	return developmentLine
}

// Read returns the trimmed content of the data file at path.
func Read(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

// Run resolves name with loc, then writes the greeting and the environment
// line to w. A missing data file yields a *DataFileMissingError.
func Run(w io.Writer, loc *locator.Locator, name string) error {
	if name == "" {
		name = DefaultDataFile
	}
	p := loc.ResolveDataPath(name)
	if _, err := os.Stat(p); err != nil {
		if os.IsNotExist(err) {
			return &DataFileMissingError{Path: p, Bundled: loc.IsBundled()}
		}
		return fmt.Errorf("stat data file: %w", err)
	}
	content, err := Read(p)
	if err != nil {
		return fmt.Errorf("read data file: %w", err)
	}
	if _, err := fmt.Fprintln(w, Format(content)); err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, EnvironmentLine(loc.Environment()))
	return err
}

// Health returns the health check status.
func Health() string { return "ok" }
