package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
)

const nsisDownloadURL = "https://nsis.sourceforge.io/"

// ToolSpec names the executable to find and its override variable.
type ToolSpec struct {
	Name     string
	AltNames []string
	EnvVar   string
}

// Finder holds the environment probes used by FindTool.
type Finder struct {
	LookupEnv func(string) (string, bool)
	LookPath  func(string) (string, error)
	Stat      func(string) (os.FileInfo, error)
}

// SystemFinder probes the real process environment.
func SystemFinder() Finder {
	return Finder{LookupEnv: os.LookupEnv, LookPath: lookPath, Stat: os.Stat}
}

// FindTool returns the tool path from the override variable when it points at
// an existing file, else from the search path.
func (f Finder) FindTool(spec ToolSpec) (string, error) {
	override, set := "", false
	if spec.EnvVar != "" {
		override, set = f.LookupEnv(spec.EnvVar)
	}
	if set && override != "" {
		if st, err := f.Stat(override); err == nil && !st.IsDir() {
			if abs, err := filepath.Abs(override); err == nil {
				return abs, nil
			}
			return override, nil
		}
	}
	for _, name := range append([]string{spec.Name}, spec.AltNames...) {
		if p, err := f.LookPath(name); err == nil && p != "" {
			return p, nil
		}
	}
	hints := []string{"Please install NSIS from " + nsisDownloadURL}
	if set {
		hints = append(hints, fmt.Sprintf("%s is set to: %s", spec.EnvVar, override))
	} else if spec.EnvVar != "" {
		hints = append(hints, fmt.Sprintf("Set %s to point to %s, or add NSIS to your PATH.", spec.EnvVar, spec.Name))
	}
	return "", &Error{
		Kind:    ErrToolNotFound,
		Step:    StepDiscoverTool,
		Message: "Error: " + spec.Name + " not found",
		Hints:   hints,
	}
}
