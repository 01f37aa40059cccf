package smtp

// Config holds SMTP relay configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	Host     string `env:"SMTP_HOST" envDefault:"localhost"`
	Username string `env:"SMTP_USERNAME"`
	Password string `env:"SMTP_PASSWORD"`
	// HELO overrides the name announced in EHLO/HELO. Defaults to "localhost".
	HELO string `env:"SMTP_HELO"`
	// EnvelopeFrom overrides the MAIL FROM address. Defaults to the From header address.
	EnvelopeFrom string `env:"SMTP_ENVELOPE_FROM"`
	Port         int    `env:"SMTP_PORT" envDefault:"25"`
	// ImplicitTLS opens the connection with TLS before the greeting (SMTPS, usually port 465).
	ImplicitTLS bool `env:"SMTP_IMPLICIT_TLS"`
	// DisableStartTLS keeps the session in plain text even when STARTTLS is offered.
	DisableStartTLS bool `env:"SMTP_DISABLE_STARTTLS"`
}
