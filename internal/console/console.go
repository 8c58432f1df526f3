// Package console renders terminal failures for the command entry points.
package console

import (
	"errors"
	"io"
	"strings"
)

// FailMarker prefixes failure lines of the build tool.
const FailMarker = "[x] "

type exitCoder interface {
	ExitCode() int
}

type hinter interface {
	Hint() []string
}

type outputer interface {
	CapturedOutput() string
}

// Report prints err to w and returns the process exit code. The message is
// collapsed onto one line; hints follow on their own lines and captured tool
// output is printed verbatim after them.
func Report(w io.Writer, err error, marker string) int {
	if err == nil {
		return 0
	}
	msg := strings.Join(strings.Fields(err.Error()), " ")
	if msg == "" {
		msg = "error"
	}
	var b strings.Builder
	b.WriteString(marker + msg + "\n")

	var h hinter
	if errors.As(err, &h) {
		for _, line := range h.Hint() {
			b.WriteString("    " + line + "\n")
		}
	}
	var o outputer
	if errors.As(err, &o) {
		if out := strings.TrimRight(o.CapturedOutput(), "\n"); strings.TrimSpace(out) != "" {
			b.WriteString(out + "\n")
		}
	}
	_, _ = io.WriteString(w, b.String())
	return ExitCode(err)
}

// ExitCode returns the code carried by err, or 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ec exitCoder
	if errors.As(err, &ec) {
		if c := ec.ExitCode(); c != 0 {
			return c
		}
	}
	return 1
}
