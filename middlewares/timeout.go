package middlewares

import (
	"context"
	"errors"
	"time"

	"github.com/cln-solutions/contactform/internal"
)

// DefaultTimeout is the default request timeout.
const DefaultTimeout = 30 * time.Second

// Timeout returns middleware that bounds the request with a deadline.
// The deadline is installed on the request context, so blocking calls made
// with c.Context() (mail delivery included) observe it and return early.
//
// The handler runs on the request goroutine: whatever it writes stays the
// response, even past the deadline. Only a handler that gives up without
// writing anything gets a TimeoutError.
func Timeout(timeout time.Duration) internal.Middleware {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			ctx, cancel := context.WithTimeout(c.Context(), timeout)
			defer cancel()

			c.SetContext(ctx)

			err := next(c)
			if c.Written() {
				return err
			}
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				c.LogWarn("request timeout", "timeout", timeout.String())
				return &TimeoutError{Duration: timeout}
			}
			return err
		}
	}
}
