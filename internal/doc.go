// Package internal is the HTTP core of the contact form service.
//
// It wraps chi with a small handler model: handlers return errors, receive a
// Context with request helpers and structured logging, and declare their routes
// through the Router interface. App wires middleware, handlers, static files and
// health endpoints; Run serves them with graceful shutdown.
//
//	app := internal.New(
//		internal.WithCustomLogger(log),
//		internal.WithMiddleware(middlewares.RequestID(), middlewares.Recover()),
//		internal.WithHandlers(handlers.NewContactHandler(m, cfg.Contact)),
//		internal.WithHealthChecks(internal.WithReadinessCheck("mail", check)),
//	)
//	err := app.Run(":8080", internal.Logger(log))
//
// Errors returned from handlers go to the configured ErrorHandler, or to
// DefaultErrorHandler, unless the handler already wrote a response.
package internal
