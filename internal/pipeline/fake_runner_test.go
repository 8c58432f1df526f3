package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/flarebyte/pyhelloworld/internal/config"
)

type fakeRunner struct {
	calls   []Command
	respond func(c Command) (Result, error)
}

func (f *fakeRunner) Run(_ context.Context, c Command) (Result, error) {
	f.calls = append(f.calls, c)
	if f.respond == nil {
		return Result{}, nil
	}
	return f.respond(c)
}

func (f *fakeRunner) compileCalls(tool string) []Command {
	var out []Command
	for _, c := range f.calls {
		if c.Program == tool && (len(c.Args) == 0 || c.Args[0] != "/VERSION") {
			out = append(out, c)
		}
	}
	return out
}

type fixture struct {
	dir  string
	tool string
	cfg  config.Config
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Installer.Script = filepath.Join(dir, "installer", "pyhelloworld.nsi")
	cfg.Installer.Output = filepath.Join(dir, "dist", "pyhelloworld-installer.exe")
	cfg.Installer.TestOutput = filepath.Join(dir, "dist", "pyhelloworld-test-installer.exe")
	cfg.Executable = filepath.Join(dir, "dist", "pyhelloworld.exe")
	tool := filepath.Join(dir, "nsis", "makensis.exe")
	writeFileAt(t, tool, "bin", time.Now())
	return fixture{dir: dir, tool: tool, cfg: cfg}
}

func writeFileAt(t *testing.T, p, content string, mtime time.Time) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.Chtimes(p, mtime, mtime); err != nil {
		t.Fatalf("chtimes: %v", err)
	}
}

func (fx fixture) finder(env map[string]string) Finder {
	return Finder{
		LookupEnv: func(k string) (string, bool) {
			v, ok := env[k]
			return v, ok
		},
		LookPath: func(string) (string, error) { return "", os.ErrNotExist },
		Stat:     os.Stat,
	}
}

// compilerThatWrites simulates the installer compiler: it answers the version
// query and writes the selected output file on compile.
func compilerThatWrites(fx fixture, version string) func(c Command) (Result, error) {
	return func(c Command) (Result, error) {
		if len(c.Args) == 1 && c.Args[0] == "/VERSION" {
			return Result{Stdout: version}, nil
		}
		out := fx.cfg.Installer.Output
		if len(c.Args) == 2 && c.Args[0] == "/DTEST_MODE=1" {
			out = fx.cfg.Installer.TestOutput
		}
		if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
			return Result{}, err
		}
		return Result{}, os.WriteFile(out, make([]byte, 2048), 0o644)
	}
}
