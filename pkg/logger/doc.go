// Package logger builds the service's structured slog.Logger.
//
// It adds two things on top of log/slog: attributes pulled from the request
// context on every call (request IDs), and optional forwarding to Sentry.
//
//	log, flush := logger.NewWithSentry(cfg.Log, middlewares.RequestIDExtractor())
//	defer flush(2 * time.Second)
//
//	log.InfoContext(ctx, "submission accepted")
//	// {"level":"INFO","msg":"submission accepted","request_id":"..."}
//
// Without a Sentry DSN the logger writes to stdout only, so development and
// production share one code path. NewNope returns a logger that discards everything.
package logger
