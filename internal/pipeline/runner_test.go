package pipeline

import (
	"bytes"
	"context"
	"runtime"
	"strings"
	"testing"
)

func requirePOSIXShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("runner tests require POSIX shell")
	}
}

func TestExecRunner_SuccessCapturesStreams(t *testing.T) {
	requirePOSIXShell(t)
	r, err := ExecRunner{}.Run(context.Background(), Command{Program: "sh", Args: []string{"-c", "printf 'ok'; printf 'warn' >&2"}})
	if err != nil {
		t.Fatalf("run err: %v", err)
	}
	if r.ExitCode != 0 || r.Stdout != "ok" || r.Stderr != "warn" || r.Combined() != "okwarn" {
		t.Fatalf("unexpected result: %+v", r)
	}
}

func TestExecRunner_NonZeroExitIsNotAnError(t *testing.T) {
	requirePOSIXShell(t)
	r, err := ExecRunner{}.Run(context.Background(), Command{Program: "sh", Args: []string{"-c", "printf 'bad' >&2; exit 7"}})
	if err != nil {
		t.Fatalf("run err: %v", err)
	}
	if r.ExitCode != 7 || r.Stderr != "bad" {
		t.Fatalf("unexpected result: %+v", r)
	}
}

func TestExecRunner_MissingProgram(t *testing.T) {
	r, err := ExecRunner{}.Run(context.Background(), Command{Program: "this-program-does-not-exist-xyz"})
	if err == nil || !strings.Contains(err.Error(), "program this-program-does-not-exist-xyz not found") {
		t.Fatalf("unexpected err: %v", err)
	}
	if r.ExitCode != -1 {
		t.Fatalf("unexpected exit code: %d", r.ExitCode)
	}
}

func TestExecRunner_TruncationExactMaxBytes(t *testing.T) {
	requirePOSIXShell(t)
	r, err := ExecRunner{CaptureMaxBytes: 5}.Run(context.Background(), Command{Program: "sh", Args: []string{"-c", "printf '0123456789'"}})
	if err != nil {
		t.Fatalf("run err: %v", err)
	}
	if r.Stdout != "01234" || !r.StdoutTruncated {
		t.Fatalf("unexpected result: %+v", r)
	}
}

func TestExecRunner_StreamingAndEnvOverlay(t *testing.T) {
	requirePOSIXShell(t)
	var out bytes.Buffer
	r, err := ExecRunner{}.Run(context.Background(), Command{
		Program: "sh",
		Args:    []string{"-c", "printf '%s' \"$PIPELINE_TEST_ENV\""},
		Env:     map[string]string{"PIPELINE_TEST_ENV": "overlay"},
		Stdout:  &out,
	})
	if err != nil {
		t.Fatalf("run err: %v", err)
	}
	if out.String() != "overlay" || r.Stdout != "" {
		t.Fatalf("unexpected streaming result: out=%q res=%+v", out.String(), r)
	}
}

func TestApplyEnvOverlay(t *testing.T) {
	got := applyEnvOverlay([]string{"A=1", "B=2", "=ignored", "C=x=y"}, map[string]string{"B": "3", "D": "4"})
	want := []string{"A=1", "B=3", "C=x=y", "D=4"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("unexpected env: %v", got)
	}
}

func TestCommandString(t *testing.T) {
	c := Command{Program: "makensis.exe", Args: []string{"/DTEST_MODE=1", "installer/pyhelloworld.nsi"}}
	if c.String() != "makensis.exe /DTEST_MODE=1 installer/pyhelloworld.nsi" {
		t.Fatalf("unexpected: %s", c.String())
	}
}
