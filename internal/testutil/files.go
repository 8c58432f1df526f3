// Package testutil holds helpers shared by package and end-to-end tests.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"
)

// WriteFileAt writes data to p, creating parents, and sets its mtime.
func WriteFileAt(tb testing.TB, p string, data []byte, mtime time.Time) {
	tb.Helper()
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		tb.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(p, data, 0o644); err != nil {
		tb.Fatalf("write: %v", err)
	}
	if err := os.Chtimes(p, mtime, mtime); err != nil {
		tb.Fatalf("chtimes: %v", err)
	}
}

// RepoRoot returns the module root, two levels above this file.
func RepoRoot(tb testing.TB) string {
	tb.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		tb.Fatalf("cannot locate testutil source")
	}
	return filepath.Dir(filepath.Dir(filepath.Dir(file)))
}
