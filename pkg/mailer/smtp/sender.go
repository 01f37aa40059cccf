// Package smtp implements mailer.Sender on top of an SMTP relay.
package smtp

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/mail"
	netsmtp "net/smtp"
	"strconv"
	"time"

	"github.com/cln-solutions/contactform/pkg/mailer"
)

// ErrNoEnvelopeSender indicates neither Config.EnvelopeFrom nor Email.From yields an address.
var ErrNoEnvelopeSender = errors.New("smtp: no envelope sender")

// Sender implements mailer.Sender using an SMTP relay.
type Sender struct {
	now       func() time.Time
	tlsConfig *tls.Config
	config    Config
}

// Option configures a Sender.
type Option func(*Sender)

// WithTLSConfig overrides the client TLS settings, e.g. to trust a private CA.
// ServerName defaults to Config.Host.
func WithTLSConfig(cfg *tls.Config) Option {
	return func(s *Sender) {
		if cfg != nil {
			s.tlsConfig = cfg.Clone()
		}
	}
}

// New creates a new SMTP sender.
func New(cfg Config, opts ...Option) *Sender {
	s := &Sender{config: cfg, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Addr returns the relay address in host:port form.
func (s *Sender) Addr() string {
	return net.JoinHostPort(s.config.Host, strconv.Itoa(s.config.Port))
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	from, err := s.envelopeFrom(email)
	if err != nil {
		return err
	}

	msg, err := mailer.WriteMessage(email, s.now())
	if err != nil {
		return err
	}

	c, err := s.dial(ctx)
	if err != nil {
		return err
	}
	defer c.Close()

	if err := c.Mail(from); err != nil {
		return fmt.Errorf("smtp: MAIL FROM failed: %w", err)
	}
	for _, rcpt := range email.Recipients() {
		addr, err := mail.ParseAddress(rcpt)
		if err != nil {
			return fmt.Errorf("smtp: invalid recipient %q: %w", rcpt, err)
		}
		if err := c.Rcpt(addr.Address); err != nil {
			return fmt.Errorf("smtp: RCPT TO failed: %w", err)
		}
	}

	wc, err := c.Data()
	if err != nil {
		return fmt.Errorf("smtp: DATA command failed: %w", err)
	}
	if _, err := wc.Write(msg); err != nil {
		return fmt.Errorf("smtp: failed to write message: %w", err)
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("smtp: message rejected: %w", err)
	}

	if err := c.Quit(); err != nil {
		return fmt.Errorf("smtp: QUIT failed: %w", err)
	}
	return nil
}

// Healthcheck returns a check that opens a session, issues NOOP and quits.
func (s *Sender) Healthcheck() func(ctx context.Context) error {
	return func(ctx context.Context) error {
		c, err := s.dial(ctx)
		if err != nil {
			return err
		}
		defer c.Close()

		if err := c.Noop(); err != nil {
			return fmt.Errorf("smtp: NOOP failed: %w", err)
		}
		return c.Quit()
	}
}

// dial connects, greets, upgrades to TLS when offered and authenticates when
// credentials are configured. The connection deadline follows ctx.
func (s *Sender) dial(ctx context.Context) (*netsmtp.Client, error) {
	conn, err := s.connect(ctx)
	if err != nil {
		return nil, fmt.Errorf("smtp: failed to connect to %s: %w", s.Addr(), err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	c, err := netsmtp.NewClient(conn, s.config.Host)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("smtp: handshake failed: %w", err)
	}

	helo := s.config.HELO
	if helo == "" {
		helo = "localhost"
	}
	if err := c.Hello(helo); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("smtp: HELO failed: %w", err)
	}

	if ok, _ := c.Extension("STARTTLS"); ok && !s.config.ImplicitTLS && !s.config.DisableStartTLS {
		if err := c.StartTLS(s.clientTLS()); err != nil {
			_ = c.Close()
			return nil, fmt.Errorf("smtp: STARTTLS failed: %w", err)
		}
	}

	if s.config.Username != "" {
		if ok, _ := c.Extension("AUTH"); !ok {
			_ = c.Close()
			return nil, errors.New("smtp: server does not support AUTH")
		}
		auth := netsmtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)
		if err := c.Auth(auth); err != nil {
			_ = c.Close()
			return nil, fmt.Errorf("smtp: AUTH failed: %w", err)
		}
	}

	return c, nil
}

// connect opens the TCP connection, completing the TLS handshake first in
// implicit TLS mode.
func (s *Sender) connect(ctx context.Context) (net.Conn, error) {
	if s.config.ImplicitTLS {
		d := tls.Dialer{Config: s.clientTLS()}
		return d.DialContext(ctx, "tcp", s.Addr())
	}
	var d net.Dialer
	return d.DialContext(ctx, "tcp", s.Addr())
}

func (s *Sender) clientTLS() *tls.Config {
	if s.tlsConfig == nil {
		return &tls.Config{ServerName: s.config.Host, MinVersion: tls.VersionTLS12}
	}
	cfg := s.tlsConfig.Clone()
	if cfg.ServerName == "" {
		cfg.ServerName = s.config.Host
	}
	return cfg
}

func (s *Sender) envelopeFrom(email *mailer.Email) (string, error) {
	raw := s.config.EnvelopeFrom
	if raw == "" {
		raw = email.From
	}
	if raw == "" {
		return "", ErrNoEnvelopeSender
	}
	addr, err := mail.ParseAddress(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoEnvelopeSender, err)
	}
	return addr.Address, nil
}
