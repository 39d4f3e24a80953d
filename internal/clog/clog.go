// Package clog provides the structured logger used by the `run --trace`
// and `--verbose` CLI flags. The reference codebase gates its own
// diagnostic printing with a bare `verbose bool` and fmt.Printf calls
// (cmd/dwscript/cmd/run.go); this package is the idiomatic stdlib
// upgrade, using log/slog instead of hand-rolled conditional printing.
package clog

import (
	"io"
	"log/slog"
)

// New builds a text-handler slog.Logger writing to w at the given level.
// verbose maps to slog.LevelDebug, otherwise slog.LevelInfo.
func New(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}

// Discard returns a logger that drops everything, used as the CLI's
// placeholder logger until flags are parsed so call sites never need a nil
// check.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
