package manifest

import (
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func sample(dir string) Manifest {
	return Manifest{
		Installer:       filepath.Join(dir, "dist", "pyhelloworld-installer.exe"),
		Mode:            "admin",
		SizeBytes:       2048,
		CompilerPath:    "/opt/nsis/makensis",
		CompilerVersion: "3.11",
		AppVersion:      "0.1.0",
		Commit:          "a1b2c3d4e5f6",
		BuiltAt:         time.Date(2026, 2, 9, 10, 0, 0, 0, time.UTC),
	}
}

func TestMarshal_CanonicalSortedKeys(t *testing.T) {
	m := sample("")
	m.Installer = "dist/pyhelloworld-installer.exe"
	b, err := Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := "app_version: 0.1.0\n" +
		"built_at: \"2026-02-09T10:00:00Z\"\n" +
		"compiler:\n" +
		"  path: /opt/nsis/makensis\n" +
		"  version: \"3.11\"\n" +
		"installer: dist/pyhelloworld-installer.exe\n" +
		"mode: admin\n" +
		"size_bytes: 2048\n" +
		"source:\n" +
		"  commit: a1b2c3d4e5f6\n"
	if string(b) != want {
		t.Fatalf("unexpected yaml:\n%s", string(b))
	}
}

func TestMarshal_OmitsEmptyCommit(t *testing.T) {
	m := sample("")
	m.Commit = ""
	b, err := Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if got := string(b); strings.Contains(got, "source:") {
		t.Fatalf("expected no source section:\n%s", got)
	}
}

func TestWriteRead_RoundTripsThroughPathFor(t *testing.T) {
	dir := t.TempDir()
	m := sample(dir)
	path, err := Write(m)
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if path != filepath.Join(dir, "dist", "pyhelloworld-installer.manifest.yaml") {
		t.Fatalf("unexpected path: %s", path)
	}
	got, err := Read(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !got.BuiltAt.Equal(m.BuiltAt) {
		t.Fatalf("built_at mismatch: %v vs %v", got.BuiltAt, m.BuiltAt)
	}
	got.BuiltAt = m.BuiltAt
	if got != m {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, m)
	}
}
