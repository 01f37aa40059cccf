// Package resend implements mailer.Sender using the Resend HTTP API.
package resend

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/resend/resend-go/v3"

	"github.com/cln-solutions/contactform/pkg/mailer"
)

// ErrNoAPIKey indicates the sender was built without an API key.
var ErrNoAPIKey = errors.New("resend: api key is not configured")

// providerHeaders are set by Resend itself and must not be passed as custom headers.
var providerHeaders = []string{"Content-Type", "Content-Transfer-Encoding", "MIME-Version"}

// Sender implements mailer.Sender using the Resend API.
type Sender struct {
	client *resend.Client
	config Config
}

// New creates a new Resend sender.
func New(cfg Config) (*Sender, error) {
	client := resend.NewClient(cfg.APIKey)
	if cfg.BaseURL != "" {
		u, err := url.Parse(cfg.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("resend: invalid base url: %w", err)
		}
		if !strings.HasSuffix(u.Path, "/") {
			u.Path += "/"
		}
		client.BaseURL = u
	}

	return &Sender{
		client: client,
		config: cfg,
	}, nil
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	if s.config.APIKey == "" {
		return ErrNoAPIKey
	}

	req := &resend.SendEmailRequest{
		From:    email.From,
		To:      email.To,
		Subject: email.Subject,
		Text:    email.Text,
		ReplyTo: email.ReplyTo,
		Cc:      email.CC,
		Bcc:     email.BCC,
		Headers: customHeaders(email.Headers),
	}

	_, err := s.client.Emails.SendWithContext(ctx, req)
	if err != nil {
		return fmt.Errorf("resend: failed to send email: %w", err)
	}

	return nil
}

// Healthcheck reports whether the sender can authenticate requests.
func (s *Sender) Healthcheck() func(ctx context.Context) error {
	return func(ctx context.Context) error {
		if s.config.APIKey == "" {
			return ErrNoAPIKey
		}
		return ctx.Err()
	}
}

// customHeaders drops the MIME headers Resend manages itself.
func customHeaders(headers map[string]string) map[string]string {
	if len(headers) == 0 {
		return nil
	}
	out := make(map[string]string, len(headers))
	for k, v := range headers {
		if isProviderHeader(k) {
			continue
		}
		out[k] = v
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func isProviderHeader(key string) bool {
	for _, h := range providerHeaders {
		if strings.EqualFold(h, key) {
			return true
		}
	}
	return false
}
