// Package middlewares provides the HTTP middleware used by the contact form service.
//
// # Request ID
//
// RequestID assigns an ID to each request. A printable ID from X-Request-ID or
// X-Correlation-ID is reused; otherwise a random UUID is generated. The ID is
// echoed in the X-Request-ID response header. Combine it with
// RequestIDExtractor so every log entry carries request_id:
//
//	log := logger.New(cfg.Log, middlewares.RequestIDExtractor())
//
// # Access log
//
// AccessLog writes one entry per request with method, path, status, size and
// duration. Query strings and form values are never logged.
//
// # Recover
//
// Recover converts panics into *PanicError, which the app error handler renders as 500.
//
// # Timeout
//
// Timeout installs a deadline on the request context and returns *TimeoutError
// (rendered as 504) when the handler does not finish in time.
//
// # Recommended order
//
//	internal.WithMiddleware(
//	    middlewares.RequestID(),
//	    middlewares.AccessLog("/health/live", "/health/ready"),
//	    middlewares.Recover(),
//	    middlewares.Timeout(cfg.Server.RequestTimeout),
//	)
package middlewares
