// Package logging builds the zap loggers used by the command-line tools.
package logging

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DebugEnv enables debug logging for the greeting program when non-empty.
const DebugEnv = "PYHELLOWORLD_DEBUG"

// New returns a console logger writing to w. Info is the default level,
// verbose lowers it to Debug.
func New(w io.Writer, verbose bool) *zap.Logger {
	if w == nil {
		w = os.Stderr
	}
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "time"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), zap.NewAtomicLevelAt(level))
	return zap.New(core)
}

// FromEnv returns a debug logger on w when the named variable is set, and a
// no-op logger otherwise.
func FromEnv(w io.Writer, name string, lookup func(string) (string, bool)) *zap.Logger {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if v, ok := lookup(name); ok && v != "" {
		return New(w, true)
	}
	return zap.NewNop()
}
