package greeting

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/flarebyte/pyhelloworld/internal/locator"
)

func writeData(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return p
}

func firstLine(s string) string {
	return strings.SplitN(s, "\n", 2)[0]
}

func TestRun_FirstLineIsTrimmedContent(t *testing.T) {
	cases := []string{"world", "world\n", "  padded  \n", "Grüße", "a b c\r\n", ""}
	for _, content := range cases {
		dir := t.TempDir()
		p := writeData(t, dir, "data.txt", content)
		var out bytes.Buffer
		if err := Run(&out, locator.New(locator.Development), p); err != nil {
			t.Fatalf("run(%q): %v", content, err)
		}
		want := "Hello " + strings.TrimSpace(content)
		if got := firstLine(out.String()); got != want {
			t.Fatalf("content %q: got %q want %q", content, got, want)
		}
	}
}

func TestRun_DevelopmentUsesDataDir(t *testing.T) {
	root := t.TempDir()
	writeData(t, root, filepath.Join("data", "data.txt"), "world\n")
	var out bytes.Buffer
	if err := Run(&out, locator.New(locator.Development, locator.WithProjectRoot(root)), ""); err != nil {
		t.Fatalf("run: %v", err)
	}
	want := "Hello world\n(Running from development environment)\n"
	if out.String() != want {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

func TestRun_BundledReadsBundleRoot(t *testing.T) {
	bundle := t.TempDir()
	writeData(t, bundle, "data.txt", "world\n")
	var out bytes.Buffer
	loc := locator.New(locator.Bundled, locator.WithBundleDir(bundle))
	if err := Run(&out, loc, "data.txt"); err != nil {
		t.Fatalf("run: %v", err)
	}
	want := "Hello world\n(Running from bundled application)\n"
	if out.String() != want {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

func TestRun_MissingDataFile(t *testing.T) {
	root := t.TempDir()
	var out bytes.Buffer
	err := Run(&out, locator.New(locator.Development, locator.WithProjectRoot(root)), "data.txt")
	if !errors.Is(err, ErrDataFileMissing) {
		t.Fatalf("expected ErrDataFileMissing, got %v", err)
	}
	var missing *DataFileMissingError
	if !errors.As(err, &missing) {
		t.Fatalf("expected *DataFileMissingError")
	}
	if !strings.Contains(err.Error(), filepath.Join("data", "data.txt")) {
		t.Fatalf("message should contain path: %s", err.Error())
	}
	if missing.ExitCode() != 1 || missing.Hint() != nil {
		t.Fatalf("unexpected exit code/hint: %d %v", missing.ExitCode(), missing.Hint())
	}
	if out.Len() != 0 {
		t.Fatalf("expected no greeting output, got %q", out.String())
	}
}

func TestRun_MissingDataFileBundledHint(t *testing.T) {
	loc := locator.New(locator.Bundled, locator.WithBundleDir(t.TempDir()))
	err := Run(&bytes.Buffer{}, loc, "data.txt")
	var missing *DataFileMissingError
	if !errors.As(err, &missing) || len(missing.Hint()) != 2 {
		t.Fatalf("expected bundled hint, got %v", err)
	}
}

func TestHealth(t *testing.T) {
	if Health() != "ok" {
		t.Fatalf("unexpected health: %q", Health())
	}
}
