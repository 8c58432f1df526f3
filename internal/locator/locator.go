// Package locator maps logical resource names to absolute paths, hiding the
// difference between running from a source checkout and running from a
// self-contained distribution build.
package locator

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/flarebyte/pyhelloworld/internal/buildinfo"
)

// DataDir is the checkout directory holding data files in development.
const DataDir = "data"

// Environment classifies how the current process was built and launched.
type Environment int

const (
	// Development means the binary was built from a source checkout.
	Development Environment = iota
	// Bundled means the binary is a self-contained distribution build.
	Bundled
)

func (e Environment) String() string {
	if e == Bundled {
		return "bundled"
	}
	return "development"
}

// Detect reads the process-global bundle flag stamped at link time.
func Detect() Environment {
	if buildinfo.Mode == buildinfo.ModeBundled {
		return Bundled
	}
	return Development
}

// Locator resolves resource paths for one execution environment.
type Locator struct {
	env         Environment
	bundleDir   string
	executable  func() (string, error)
	projectRoot string
}

// Option customises a Locator.
type Option func(*Locator)

// WithBundleDir sets the private extraction directory of a bundled run.
// An empty dir makes bundled lookups fall back to the executable directory.
func WithBundleDir(dir string) Option {
	return func(l *Locator) { l.bundleDir = dir }
}

// WithExecutable replaces os.Executable.
func WithExecutable(fn func() (string, error)) Option {
	return func(l *Locator) { l.executable = fn }
}

// WithProjectRoot overrides the checkout root used in development.
func WithProjectRoot(dir string) Option {
	return func(l *Locator) { l.projectRoot = dir }
}

// New returns a Locator for env.
func New(env Environment, opts ...Option) *Locator {
	l := &Locator{
		env:         env,
		executable:  os.Executable,
		projectRoot: defaultProjectRoot(),
	}
	for _, o := range opts {
		o(l)
	}
	return l
}

// Environment returns the environment the locator was built for.
func (l *Locator) Environment() Environment { return l.env }

// IsBundled reports whether the locator resolves against a bundle.
func (l *Locator) IsBundled() bool { return l.env == Bundled }

// ResolveDataPath returns the absolute path of the named data file. Bundled
// builds keep data files at the bundle root; checkouts keep them under data/.
// The path is not checked for existence.
func (l *Locator) ResolveDataPath(name string) string {
	if filepath.IsAbs(name) {
		return canonical(name)
	}
	if l.IsBundled() {
		return l.ResolveResource(name)
	}
	return l.ResolveResource(filepath.Join(DataDir, name))
}

// ResolveResource joins rel onto the environment's base directory.
func (l *Locator) ResolveResource(rel string) string {
	return canonical(filepath.Join(l.baseDir(), rel))
}

// ApplicationDirectory returns the executable directory when bundled and the
// project root otherwise.
func (l *Locator) ApplicationDirectory() string {
	if l.IsBundled() {
		return canonical(l.executableDir())
	}
	return canonical(l.projectRoot)
}

func (l *Locator) baseDir() string {
	if !l.IsBundled() {
		return l.projectRoot
	}
	if l.bundleDir != "" {
		return l.bundleDir
	}
	return l.executableDir()
}

func (l *Locator) executableDir() string {
	exe, err := l.executable()
	if err != nil || exe == "" {
		return "."
	}
	return filepath.Dir(exe)
}

// defaultProjectRoot is three directory levels above this source file.
func defaultProjectRoot() string {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return "."
	}
	return filepath.Dir(filepath.Dir(filepath.Dir(file)))
}
