package cmd

import (
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
)

// newCommandLogger returns a text logger when w is a terminal and a JSON
// logger otherwise. Debug records are kept only when verbose is set.
func newCommandLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	options := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		handler = slog.NewTextHandler(w, options)
	} else {
		handler = slog.NewJSONHandler(w, options)
	}
	return slog.New(handler)
}
