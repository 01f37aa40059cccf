// Package mailer provides a provider-agnostic interface for sending plain-text email.
//
// The package separates message delivery (providers implementing Sender) from the
// checks every message must pass before it leaves the process.
//
// # Architecture
//
//   - Sender: interface that email providers implement
//   - Email: a fully-prepared message (recipients, subject, text body, headers)
//   - Mailer: a Sender that validates, fills defaults, bounds delivery with a
//     timeout and delegates to a provider
//
// Providers:
//
//   - smtp.Sender delivers through an SMTP relay (STARTTLS and PLAIN auth when available)
//   - resend.Sender delivers through the Resend HTTP API
//   - LogSender only logs the message; useful in development
//
// # Usage
//
//	sender := smtp.New(smtp.Config{Host: "mail.example.com", Port: 587})
//	m := mailer.New(sender, mailer.Config{
//		FromEmail: "contact@example.com",
//		FromName:  "Example",
//		Timeout:   15 * time.Second,
//	})
//
//	err := m.Send(ctx, &mailer.Email{
//		To:      []string{"contact@example.com"},
//		Subject: "Demande de contact - Alice",
//		Text:    body,
//		ReplyTo: "alice@example.com",
//	})
//
// # Header safety
//
// Mailer.Send rejects any message whose addresses, subject or custom headers contain
// CR or LF characters with ErrHeaderInjection. Bodies may contain line breaks freely;
// they are normalised to CRLF when the message is serialised.
//
// # Errors
//
//   - ErrNoRecipient: no recipient specified
//   - ErrNoSubject: no subject provided
//   - ErrNoContent: empty text body
//   - ErrHeaderInjection: a header value contains a line break
//   - ErrSendFailed: the provider reported a failure (wraps the provider error)
package mailer
