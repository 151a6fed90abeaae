// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
	"log/slog"
)

// NewLogger returns a text logger on dst. quiet keeps only errors, verbose
// enables debug output, and the default level is warn.
func NewLogger(dst io.Writer, verbose, quiet bool) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case quiet:
		level = slog.LevelError
	case verbose:
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(dst, &slog.HandlerOptions{Level: level}))
}

// Warnf logs a formatted warning through logger.
func Warnf(logger *slog.Logger, format string, a ...any) {
	logger.Warn(fmt.Sprintf(format, a...))
}
