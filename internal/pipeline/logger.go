package pipeline

import "log/slog"

// SLogger is the subset of *slog.Logger the pipeline uses: Info for
// per-input events, Debug for run summaries.
type SLogger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
}

var _ SLogger = (*slog.Logger)(nil)

// discardSLogger is the default when Config.Logger is nil.
type discardSLogger struct{}

var _ SLogger = discardSLogger{}

func (discardSLogger) Debug(string, ...any) {}
func (discardSLogger) Info(string, ...any)  {}
