package mailer

import (
	"context"
	"errors"
)

// Mailer validates outgoing email, applies configured defaults and delegates
// delivery to a provider. Mailer itself implements Sender.
type Mailer struct {
	sender Sender
	config Config
}

// New creates a new Mailer with the given provider.
func New(sender Sender, cfg Config) *Mailer {
	return &Mailer{
		sender: sender,
		config: cfg,
	}
}

// Send validates the email and hands it to the provider.
// Delivery is bounded by Config.Timeout when set. Provider failures are
// returned joined with ErrSendFailed.
func (m *Mailer) Send(ctx context.Context, email *Email) error {
	if email == nil {
		return ErrNoRecipient
	}

	msg := m.withDefaults(email)
	if err := msg.Validate(); err != nil {
		return err
	}

	if m.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.config.Timeout)
		defer cancel()
	}

	if err := m.sender.Send(ctx, msg); err != nil {
		return errors.Join(ErrSendFailed, err)
	}

	return nil
}

// withDefaults returns a shallow copy of email with the default sender
// and X-Mailer header filled in. The caller's value is never modified.
func (m *Mailer) withDefaults(email *Email) *Email {
	msg := *email
	if msg.From == "" && m.config.FromEmail != "" {
		msg.From = Recipient(m.config.FromName, m.config.FromEmail)
	}

	if m.config.XMailer != "" {
		if _, ok := msg.Header("X-Mailer"); !ok {
			headers := make(map[string]string, len(msg.Headers)+1)
			for k, v := range msg.Headers {
				headers[k] = v
			}
			msg.Headers = headers
			msg.SetHeader("X-Mailer", m.config.XMailer)
		}
	}
	return &msg
}
