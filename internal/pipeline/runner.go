package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sort"
	"strings"
)

// defaultCaptureMaxBytes bounds each captured stream of a child process.
const defaultCaptureMaxBytes = 4 << 20

// Command describes one child process invocation.
type Command struct {
	Program string
	Args    []string
	Dir     string
	Env     map[string]string
	// Stdout and Stderr stream the child's output when set; otherwise the
	// output is captured into Result.
	Stdout io.Writer
	Stderr io.Writer
}

// String renders the argv for logs.
func (c Command) String() string {
	return strings.Join(append([]string{c.Program}, c.Args...), " ")
}

// Result is the outcome of a child process that started.
type Result struct {
	ExitCode        int
	Stdout          string
	Stderr          string
	StdoutTruncated bool
	StderrTruncated bool
}

// Combined returns stdout followed by stderr.
func (r Result) Combined() string { return r.Stdout + r.Stderr }

// CommandRunner runs child processes to completion.
type CommandRunner interface {
	Run(ctx context.Context, cmd Command) (Result, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct {
	// CaptureMaxBytes caps each captured stream; zero means the default.
	CaptureMaxBytes int
}

type limitedBuffer struct {
	max       int
	buf       bytes.Buffer
	truncated bool
}

func (b *limitedBuffer) Write(p []byte) (int, error) {
	n := len(p)
	remain := b.max - b.buf.Len()
	if remain > 0 {
		if remain > len(p) {
			remain = len(p)
		}
		_, _ = b.buf.Write(p[:remain])
	}
	if len(p) > remain {
		b.truncated = true
	}
	return n, nil
}

func (b *limitedBuffer) String() string { return b.buf.String() }

// Run starts cmd and waits for it. A non-zero exit is reported through
// Result.ExitCode; an error is returned only when the process could not run.
func (r ExecRunner) Run(ctx context.Context, c Command) (Result, error) {
	max := r.CaptureMaxBytes
	if max <= 0 {
		max = defaultCaptureMaxBytes
	}
	cmd := exec.CommandContext(ctx, c.Program, c.Args...)
	cmd.Dir = c.Dir
	cmd.Env = applyEnvOverlay(os.Environ(), c.Env)

	outBuf := &limitedBuffer{max: max}
	errBuf := &limitedBuffer{max: max}
	cmd.Stdout = outBuf
	if c.Stdout != nil {
		cmd.Stdout = c.Stdout
	}
	cmd.Stderr = errBuf
	if c.Stderr != nil {
		cmd.Stderr = c.Stderr
	}

	if err := cmd.Start(); err != nil {
		var ee *exec.Error
		if errors.As(err, &ee) {
			return Result{ExitCode: -1}, fmt.Errorf("program %s not found", c.Program)
		}
		return Result{ExitCode: -1}, fmt.Errorf("program %s start failed: %w", c.Program, err)
	}
	runErr := cmd.Wait()

	res := Result{
		Stdout:          outBuf.String(),
		Stderr:          errBuf.String(),
		StdoutTruncated: outBuf.truncated,
		StderrTruncated: errBuf.truncated,
	}
	if runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		res.ExitCode = -1
		return res, fmt.Errorf("program %s execution failed: %w", c.Program, runErr)
	}
	return res, nil
}

func applyEnvOverlay(base []string, overlay map[string]string) []string {
	if len(overlay) == 0 {
		return append([]string(nil), base...)
	}
	m := map[string]string{}
	for _, kv := range base {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		m[k] = v
	}
	for k, v := range overlay {
		m[k] = v
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]string, 0, len(m))
	for _, k := range keys {
		out = append(out, k+"="+m[k])
	}
	return out
}
