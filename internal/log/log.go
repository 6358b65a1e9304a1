// Package log configures the process-wide slog logger.
package log

import (
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// Setup installs a tint handler on stderr as the default slog logger. Only
// warnings are shown unless debug is set. The returned LevelVar can change
// the level later.
func Setup(debug bool) *slog.LevelVar {
	return setup(colorable.NewColorable(os.Stderr), !isatty.IsTerminal(os.Stderr.Fd()), debug)
}

func setup(w io.Writer, noColor, debug bool) *slog.LevelVar {
	ll := &slog.LevelVar{}
	ll.Set(slog.LevelWarn)
	if debug {
		ll.Set(slog.LevelDebug)
	}
	logger := slog.New(tint.NewHandler(w, &tint.Options{
		Level:      ll,
		TimeFormat: "15:04:05.000",
		NoColor:    noColor,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Timestamps are noise outside debug runs.
			if !debug && a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		},
	}))
	slog.SetDefault(logger)
	return ll
}
