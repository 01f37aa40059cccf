// Package config loads the service configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/cln-solutions/contactform/handlers"
	"github.com/cln-solutions/contactform/pkg/logger"
	"github.com/cln-solutions/contactform/pkg/mailer"
	"github.com/cln-solutions/contactform/pkg/mailer/resend"
	"github.com/cln-solutions/contactform/pkg/mailer/smtp"
	"github.com/cln-solutions/contactform/pkg/validator"
)

// Mail drivers.
const (
	DriverSMTP   = "smtp"
	DriverResend = "resend"
	DriverLog    = "log"
)

// ErrInvalidConfig is returned when the environment describes an unusable setup.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the complete service configuration.
type Config struct {
	Server  ServerConfig
	Contact handlers.ContactConfig
	Mail    MailConfig
	Log     logger.Config
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Address         string        `env:"ADDRESS" envDefault:":8080"`
	StaticDir       string        `env:"STATIC_DIR"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

// MailConfig selects and configures the mail transport.
type MailConfig struct {
	Driver string `env:"MAIL_DRIVER" envDefault:"smtp"`
	Mailer mailer.Config
	SMTP   smtp.Config
	Resend resend.Config
}

// Load parses the process environment.
func Load() (Config, error) {
	return parse(env.Options{})
}

// LoadFrom parses the given environment instead of the process one.
func LoadFrom(environ map[string]string) (Config, error) {
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](opts)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	cfg.Mail.Driver = strings.ToLower(strings.TrimSpace(cfg.Mail.Driver))

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every problem found in cfg, joined with ErrInvalidConfig.
func (c Config) Validate() error {
	var errs []error

	switch c.Mail.Driver {
	case DriverSMTP:
		if c.Mail.SMTP.Host == "" {
			errs = append(errs, errors.New("SMTP_HOST is required for the smtp driver"))
		}
		if c.Mail.SMTP.Port <= 0 || c.Mail.SMTP.Port > 65535 {
			errs = append(errs, fmt.Errorf("SMTP_PORT %d is out of range", c.Mail.SMTP.Port))
		}
	case DriverResend:
		if c.Mail.Resend.APIKey == "" {
			errs = append(errs, errors.New("RESEND_API_KEY is required for the resend driver"))
		}
	case DriverLog:
	default:
		errs = append(errs, fmt.Errorf("MAIL_DRIVER %q is not one of smtp, resend, log", c.Mail.Driver))
	}

	if !validator.IsEmail(c.Contact.Address) {
		errs = append(errs, fmt.Errorf("CONTACT_ADDRESS %q is not a valid email address", c.Contact.Address))
	}
	if !strings.HasPrefix(c.Contact.Path, "/") {
		errs = append(errs, fmt.Errorf("FORM_PATH %q must start with /", c.Contact.Path))
	}
	if c.Contact.FallbackPage == "" || c.Contact.SuccessPage == "" {
		errs = append(errs, errors.New("CONTACT_FALLBACK_PAGE and CONTACT_SUCCESS_PAGE must not be empty"))
	}
	if mail := c.Mail.Mailer.Timeout; mail > 0 && c.Server.RequestTimeout > 0 && c.Server.RequestTimeout <= mail {
		errs = append(errs, fmt.Errorf("REQUEST_TIMEOUT %s must be longer than MAIL_SEND_TIMEOUT %s", c.Server.RequestTimeout, mail))
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}

	if len(errs) == 0 {
		return nil
	}
	return errors.Join(append([]error{ErrInvalidConfig}, errs...)...)
}
