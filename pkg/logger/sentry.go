package logger

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// FlushFunc waits up to timeout for buffered events to be sent.
type FlushFunc func(timeout time.Duration) bool

func noFlush(time.Duration) bool { return true }

// NewWithSentry creates a logger that writes to stdout and forwards warnings and
// errors to Sentry. Errors become Sentry issues; warnings are kept as logs.
// With an empty DSN, or when the SDK fails to start, only stdout is used.
// The returned FlushFunc must be called before the process exits.
func NewWithSentry(cfg Config, extractors ...ContextExtractor) (*slog.Logger, FlushFunc) {
	stdout := newHandler(os.Stdout, cfg)

	if cfg.Sentry.DSN == "" {
		return slog.New(WithContextExtractors(stdout, extractors...)), noFlush
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.Sentry.DSN,
		Environment: cfg.Sentry.Environment,
		Release:     cfg.Sentry.Release,
		EnableLogs:  true,
	}); err != nil {
		slog.New(stdout).Error("failed to initialize Sentry", slog.String("error", err.Error()))
		return slog.New(WithContextExtractors(stdout, extractors...)), noFlush
	}

	sentryHandler := sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   []slog.Level{slog.LevelWarn, slog.LevelError},
	}.NewSentryHandler(context.Background())

	h := WithContextExtractors(fanout{stdout, sentryHandler}, extractors...)
	return slog.New(h), sentry.Flush
}
