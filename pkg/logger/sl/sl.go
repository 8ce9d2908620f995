// Package sl holds slog attribute helpers
package sl

import (
	"log/slog"

	"github.com/8thgencore/blip/pkg/lime"
)

// Err returns a slog.Attr with the error message
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}

	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}

// Command groups the routing fields of a command under "command". A nil
// command logs as an empty group.
func Command(cmd *lime.Command) slog.Attr {
	if cmd == nil {
		return slog.Group("command")
	}

	attrs := []any{
		slog.String("id", cmd.ID),
		slog.String("method", string(cmd.Method)),
		slog.String("uri", cmd.URI),
	}
	if cmd.To != "" {
		attrs = append(attrs, slog.String("to", cmd.To))
	}
	if cmd.Status != "" {
		attrs = append(attrs, slog.String("status", string(cmd.Status)))
	}

	return slog.Group("command", attrs...)
}
