// Command server runs the contact form relay.
//
// Configuration comes from environment variables; see package config.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/cln-solutions/contactform"
	"github.com/cln-solutions/contactform/config"
	"github.com/cln-solutions/contactform/handlers"
	"github.com/cln-solutions/contactform/middlewares"
	"github.com/cln-solutions/contactform/pkg/logger"
	"github.com/cln-solutions/contactform/pkg/mailer"
)

var errSentryFlush = errors.New("sentry: events not flushed before shutdown deadline")

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.Log.Sentry.Release == "" {
		cfg.Log.Sentry.Release = "cln-contactform@" + version
	}

	log, flush := logger.NewWithSentry(cfg.Log, middlewares.RequestIDExtractor())
	log = log.With("app", "contactform")

	transport, check, err := cfg.Mail.Transport(log)
	if err != nil {
		return err
	}

	mailCfg := cfg.Mail.Mailer
	if mailCfg.XMailer == "" {
		mailCfg.XMailer = "cln-contactform/" + version
	}
	m := mailer.New(transport, mailCfg)

	opts := []contactform.Option{
		contactform.WithCustomLogger(log),
		contactform.WithMiddleware(
			middlewares.RequestID(),
			middlewares.AccessLog("/health/live", "/health/ready"),
			middlewares.Recover(),
			middlewares.Timeout(cfg.Server.RequestTimeout),
		),
		contactform.WithHandlers(handlers.NewContactHandler(m, cfg.Contact)),
		contactform.WithHealthChecks(
			contactform.WithReadinessCheck("mail", check),
		),
	}
	if cfg.Server.StaticDir != "" {
		opts = append(opts, contactform.WithStaticFiles("/", os.DirFS(cfg.Server.StaticDir), "."))
	}

	app := contactform.New(opts...)

	log.Info("contact form ready",
		slog.String("version", version),
		slog.String("driver", cfg.Mail.Driver),
		slog.String("path", cfg.Contact.Path),
	)

	return app.Run(cfg.Server.Address,
		contactform.Logger(log),
		contactform.ShutdownTimeout(cfg.Server.ShutdownTimeout),
		contactform.ShutdownHook(func(ctx context.Context) error {
			timeout := cfg.Server.ShutdownTimeout
			if deadline, ok := ctx.Deadline(); ok {
				timeout = time.Until(deadline)
			}
			if !flush(timeout) {
				return errSentryFlush
			}
			return nil
		}),
	)
}
