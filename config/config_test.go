package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cln-solutions/contactform/config"
	"github.com/cln-solutions/contactform/pkg/mailer"
	"github.com/cln-solutions/contactform/pkg/mailer/resend"
	"github.com/cln-solutions/contactform/pkg/mailer/smtp"
)

func TestLoadFrom_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadFrom(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Empty(t, cfg.Server.StaticDir)

	assert.Equal(t, "/contact", cfg.Contact.Path)
	assert.Equal(t, "patrick.lyonnet@cln-solutions.fr", cfg.Contact.Address)
	assert.Equal(t, "CLN", cfg.Contact.SenderName)
	assert.Equal(t, "contact.html", cfg.Contact.FallbackPage)
	assert.Equal(t, "merci.html", cfg.Contact.SuccessPage)

	assert.Equal(t, config.DriverSMTP, cfg.Mail.Driver)
	assert.Equal(t, 15*time.Second, cfg.Mail.Mailer.Timeout)
	assert.Equal(t, "localhost", cfg.Mail.SMTP.Host)
	assert.Equal(t, 25, cfg.Mail.SMTP.Port)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "production", cfg.Log.Sentry.Environment)
}

func TestLoadFrom_Overrides(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadFrom(map[string]string{
		"ADDRESS":            "127.0.0.1:9000",
		"STATIC_DIR":         "/srv/www",
		"FORM_PATH":          "/envoyer",
		"CONTACT_ADDRESS":    "contact@example.fr",
		"MAIL_DRIVER":        " Resend ",
		"RESEND_API_KEY":     "re_123",
		"MAIL_SEND_TIMEOUT":  "5s",
		"LOG_LEVEL":          "debug",
		"SENTRY_DSN":         "https://key@o0.ingest.sentry.io/0",
		"SENTRY_ENVIRONMENT": "staging",
	})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Address)
	assert.Equal(t, "/srv/www", cfg.Server.StaticDir)
	assert.Equal(t, "/envoyer", cfg.Contact.Path)
	assert.Equal(t, "contact@example.fr", cfg.Contact.Address)
	assert.Equal(t, config.DriverResend, cfg.Mail.Driver)
	assert.Equal(t, "re_123", cfg.Mail.Resend.APIKey)
	assert.Equal(t, 5*time.Second, cfg.Mail.Mailer.Timeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "staging", cfg.Log.Sentry.Environment)
}

func TestLoadFrom_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		env     map[string]string
		name    string
		message string
	}{
		{map[string]string{"MAIL_DRIVER": "sendmail"}, "unknown driver", "MAIL_DRIVER"},
		{map[string]string{"MAIL_DRIVER": "resend"}, "resend without key", "RESEND_API_KEY"},
		{map[string]string{"SMTP_PORT": "70000"}, "smtp port out of range", "SMTP_PORT"},
		{map[string]string{"CONTACT_ADDRESS": "not-an-email"}, "bad destination", "CONTACT_ADDRESS"},
		{map[string]string{"FORM_PATH": "contact"}, "relative form path", "FORM_PATH"},
		{map[string]string{"LOG_LEVEL": "verbose"}, "unknown log level", "verbose"},
		{map[string]string{"REQUEST_TIMEOUT": "10s"}, "request timeout below mail timeout", "REQUEST_TIMEOUT"},
		{map[string]string{"REQUEST_TIMEOUT": "15s", "MAIL_SEND_TIMEOUT": "15s"}, "request timeout equal to mail timeout", "MAIL_SEND_TIMEOUT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := config.LoadFrom(tt.env)
			require.Error(t, err)
			require.ErrorIs(t, err, config.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestLoadFrom_ParseError(t *testing.T) {
	t.Parallel()

	_, err := config.LoadFrom(map[string]string{"REQUEST_TIMEOUT": "soon"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, config.ErrInvalidConfig)
}

func TestValidate_LogDriverNeedsNoTransport(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadFrom(map[string]string{"MAIL_DRIVER": "log", "SMTP_HOST": ""})
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
}

func TestLoadFrom_SMTPImplicitTLS(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadFrom(map[string]string{
		"SMTP_HOST":         "smtp.hostinger.com",
		"SMTP_PORT":         "465",
		"SMTP_IMPLICIT_TLS": "true",
	})
	require.NoError(t, err)
	assert.True(t, cfg.Mail.SMTP.ImplicitTLS)
	assert.Equal(t, 465, cfg.Mail.SMTP.Port)
}

func TestMailConfig_Transport(t *testing.T) {
	t.Parallel()

	log := slog.New(slog.DiscardHandler)

	t.Run("smtp", func(t *testing.T) {
		t.Parallel()
		cfg, err := config.LoadFrom(map[string]string{})
		require.NoError(t, err)

		sender, check, err := cfg.Mail.Transport(log)
		require.NoError(t, err)
		assert.IsType(t, &smtp.Sender{}, sender)
		assert.NotNil(t, check)
	})

	t.Run("resend", func(t *testing.T) {
		t.Parallel()
		cfg, err := config.LoadFrom(map[string]string{"MAIL_DRIVER": "resend", "RESEND_API_KEY": "re_123"})
		require.NoError(t, err)

		sender, check, err := cfg.Mail.Transport(log)
		require.NoError(t, err)
		assert.IsType(t, &resend.Sender{}, sender)
		assert.NotNil(t, check)
	})

	t.Run("log", func(t *testing.T) {
		t.Parallel()
		cfg, err := config.LoadFrom(map[string]string{"MAIL_DRIVER": "log"})
		require.NoError(t, err)

		sender, check, err := cfg.Mail.Transport(log)
		require.NoError(t, err)
		assert.IsType(t, &mailer.LogSender{}, sender)
		assert.Nil(t, check)
	})
}
