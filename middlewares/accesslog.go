package middlewares

import (
	"log/slog"
	"time"

	"github.com/cln-solutions/contactform/internal"
)

// statusRecorder is implemented by internal.ResponseWriter.
type statusRecorder interface {
	Status() int
	Size() int64
}

// AccessLog returns middleware that logs one line per request after it completes.
// Only the method, path (without query string), status, size and duration
// are recorded; form values never reach the log.
// Requests whose path is listed in skip (e.g. health probes) are not logged.
func AccessLog(skip ...string) internal.Middleware {
	skipped := make(map[string]struct{}, len(skip))
	for _, p := range skip {
		skipped[p] = struct{}{}
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			r := c.Request()
			if _, ok := skipped[r.URL.Path]; ok {
				return next(c)
			}

			start := time.Now()
			err := next(c)

			attrs := []any{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Duration("duration", time.Since(start)),
			}
			if rec, ok := c.Response().(statusRecorder); ok {
				attrs = append(attrs, slog.Int("status", rec.Status()), slog.Int64("size", rec.Size()))
			}
			if err != nil {
				attrs = append(attrs, slog.String("error", err.Error()))
			}

			c.LogInfo("request completed", attrs...)
			return err
		}
	}
}
