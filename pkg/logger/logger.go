package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New creates a stdout logger from cfg with optional context extractors.
// An unknown level falls back to info.
func New(cfg Config, extractors ...ContextExtractor) *slog.Logger {
	return slog.New(WithContextExtractors(newHandler(os.Stdout, cfg), extractors...))
}

// NewNope creates a no-op logger that discards all output.
// Use this as a default when logging is not configured.
func NewNope() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newHandler(w io.Writer, cfg Config) slog.Handler {
	level, _ := ParseLevel(cfg.Level)
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(cfg.Format, "text") {
		return slog.NewTextHandler(w, opts)
	}
	return slog.NewJSONHandler(w, opts)
}
