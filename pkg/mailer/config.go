package mailer

import "time"

// Config holds mailer configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	FromEmail string        `env:"MAILER_FROM_EMAIL"`
	FromName  string        `env:"MAILER_FROM_NAME"`
	XMailer   string        `env:"MAILER_X_MAILER"`
	Timeout   time.Duration `env:"MAIL_SEND_TIMEOUT" envDefault:"15s"`
}
