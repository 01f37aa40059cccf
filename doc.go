// Package contactform is a small HTTP service that relays a website contact
// form to a mailbox.
//
// The browser posts the form; the service sanitizes and validates the fields,
// mails a plain text notification and answers with a 303 redirect to a static
// page that reads the outcome from its status query parameter. There is no
// JSON API, no storage and no retry.
//
// # Quick Start
//
//	m := mailer.New(smtp.New(cfg.Mail.SMTP), cfg.Mail.Mailer)
//
//	app := contactform.New(
//	    contactform.WithCustomLogger(log),
//	    contactform.WithMiddleware(middlewares.RequestID(), middlewares.Recover()),
//	    contactform.WithHandlers(handlers.NewContactHandler(m, cfg.Contact)),
//	    contactform.WithHealthChecks(),
//	)
//
//	if err := app.Run(":8080", contactform.Logger(log)); err != nil {
//	    log.Error("server error", "error", err)
//	}
//
// The binary in cmd/server wires the same pieces from environment variables
// (see package config).
//
// # Handlers
//
// Handlers implement the [Handler] interface to declare routes:
//
//	func (h *ContactHandler) Routes(r contactform.Router) {
//	    r.Any(h.cfg.Path, h.submit)
//	}
//
// # Shutdown
//
// Run handles SIGINT/SIGTERM: the server stops accepting requests, in-flight
// ones finish, then hooks registered with ShutdownHook run with the remaining
// shutdown budget.
package contactform
