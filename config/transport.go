package config

import (
	"context"
	"log/slog"

	"github.com/cln-solutions/contactform/pkg/mailer"
	"github.com/cln-solutions/contactform/pkg/mailer/resend"
	"github.com/cln-solutions/contactform/pkg/mailer/smtp"
)

// Transport builds the configured mail transport and its readiness check.
// The log driver has no check and returns a nil func.
func (c MailConfig) Transport(log *slog.Logger) (mailer.Sender, func(context.Context) error, error) {
	switch c.Driver {
	case DriverResend:
		s, err := resend.New(c.Resend)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Healthcheck(), nil
	case DriverLog:
		return mailer.NewLogSender(log), nil, nil
	default:
		s := smtp.New(c.SMTP)
		return s, s.Healthcheck(), nil
	}
}
