// Package status reports the packaging inputs and outputs as a table.
package status

import (
	"io"
	"os"
	"strconv"
	"time"

	"github.com/flarebyte/pyhelloworld/internal/config"
	"github.com/flarebyte/pyhelloworld/internal/pipeline"
	"github.com/jedib0t/go-pretty/v6/table"
)

// Entry is one row of the status table.
type Entry struct {
	Role  string
	Path  string
	Stamp pipeline.Stamp
	// State is empty for inputs and "up to date" or "stale" for installers.
	State string
}

// Collect stats every file the pipeline reads or writes.
func Collect(cfg config.Config, stat func(string) (os.FileInfo, error)) []Entry {
	if stat == nil {
		stat = os.Stat
	}
	script := pipeline.StampOf(stat, cfg.Installer.Script)
	exe := pipeline.StampOf(stat, cfg.Executable)
	out := []Entry{
		{Role: "script", Path: cfg.Installer.Script, Stamp: script},
		{Role: "executable", Path: cfg.Executable, Stamp: exe},
	}
	for _, inst := range []struct{ role, path string }{
		{"installer", cfg.Installer.Output},
		{"test installer", cfg.Installer.TestOutput},
	} {
		st := pipeline.StampOf(stat, inst.path)
		state := "stale"
		if pipeline.IsUpToDate(st, script, exe) {
			state = "up to date"
		}
		out = append(out, Entry{Role: inst.role, Path: inst.path, Stamp: st, State: state})
	}
	return out
}

// Render writes entries to w as a rounded table.
func Render(w io.Writer, entries []Entry) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Role", "Path", "Exists", "Modified", "Size (KB)", "State"})
	for _, e := range entries {
		modified, size := "-", "-"
		if e.Stamp.Exists {
			modified = e.Stamp.ModTime.UTC().Format(time.RFC3339)
			size = strconv.FormatFloat(float64(e.Stamp.Size)/1024, 'f', 2, 64)
		}
		state := e.State
		if state == "" {
			state = "-"
		}
		t.AppendRow(table.Row{e.Role, e.Path, yesNo(e.Stamp.Exists), modified, size, state})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
