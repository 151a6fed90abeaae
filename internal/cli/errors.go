package cli

import (
	"errors"
	"strings"
)

// UsageError marks errors caused by bad flags, arguments or configuration.
type UsageError struct{ Err error }

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

// IsUsage reports whether err should be answered with exit status 2.
// Cobra reports unknown subcommands, argument counts and flag group
// conflicts as plain errors, so those are recognized by message.
func IsUsage(err error) bool {
	var ue *UsageError
	if errors.As(err, &ue) {
		return true
	}
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") ||
		strings.HasPrefix(msg, "accepts ") ||
		strings.HasPrefix(msg, "requires at least") ||
		strings.HasPrefix(msg, "if any flags in the group")
}
