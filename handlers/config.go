package handlers

// ContactConfig configures ContactHandler.
// Embed this in your app config for env parsing with caarlos0/env.
type ContactConfig struct {
	// Path is the route the form posts to.
	Path string `env:"FORM_PATH" envDefault:"/contact"`

	// Address receives the submissions and is also used as the From address.
	Address string `env:"CONTACT_ADDRESS" envDefault:"patrick.lyonnet@cln-solutions.fr"`

	// SenderName is the From display name.
	SenderName string `env:"CONTACT_SENDER_NAME" envDefault:"CLN"`

	// FallbackPage is the redirect target for every non-success outcome.
	FallbackPage string `env:"CONTACT_FALLBACK_PAGE" envDefault:"contact.html"`

	// SuccessPage is the thank-you page.
	SuccessPage string `env:"CONTACT_SUCCESS_PAGE" envDefault:"merci.html"`
}

// DefaultContactConfig returns the configuration used when no environment is set.
func DefaultContactConfig() ContactConfig {
	return ContactConfig{
		Path:         "/contact",
		Address:      "patrick.lyonnet@cln-solutions.fr",
		SenderName:   "CLN",
		FallbackPage: "contact.html",
		SuccessPage:  "merci.html",
	}
}
