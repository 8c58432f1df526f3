// Package progress shows a terminal spinner while a child process runs.
package progress

import (
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"golang.org/x/term"
)

// Spinner implements the pipeline indicator. It is inert when its writer is
// not a terminal, so captured output stays free of control sequences.
type Spinner struct {
	f *os.File
	s *spinner.Spinner
}

// New returns a spinner drawing on w.
func New(w io.Writer) *Spinner {
	if !IsTerminal(w) {
		return &Spinner{}
	}
	return &Spinner{f: w.(*os.File)}
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Enabled reports whether Start will draw anything.
func (p *Spinner) Enabled() bool { return p.f != nil }

func (p *Spinner) Start(msg string) {
	if p.f == nil {
		return
	}
	if p.s != nil {
		p.s.Stop()
	}
	p.s = spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriterFile(p.f))
	p.s.Color("yellow") //nolint:errcheck
	p.s.Suffix = " " + msg
	p.s.Start()
}

func (p *Spinner) Stop() {
	if p.s != nil {
		p.s.Stop()
		p.s = nil
	}
}
