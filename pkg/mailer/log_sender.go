package mailer

import (
	"context"
	"log/slog"
	"strings"
)

// LogSender is a Sender that logs messages instead of delivering them.
// Use it in development or when no transport is configured.
type LogSender struct {
	logger *slog.Logger
}

// NewLogSender creates a LogSender writing to l.
func NewLogSender(l *slog.Logger) *LogSender {
	if l == nil {
		l = slog.Default()
	}
	return &LogSender{logger: l}
}

// Send implements Sender. It never fails.
// Only the destination and sizes are logged: subject and reply-to carry
// the submitter's name and address.
func (s *LogSender) Send(ctx context.Context, email *Email) error {
	s.logger.InfoContext(ctx, "email not delivered: log driver",
		slog.String("to", strings.Join(email.To, ", ")),
		slog.Bool("has_reply_to", email.ReplyTo != ""),
		slog.Int("subject_bytes", len(email.Subject)),
		slog.Int("body_bytes", len(email.Text)),
	)
	return nil
}
