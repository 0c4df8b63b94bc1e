// Package sl holds small helpers for structured logging with slog.
package sl

import "log/slog"

// Err renders an error as the standard "error" attribute.
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}
