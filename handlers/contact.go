package handlers

import (
	"net/http"

	"github.com/cln-solutions/contactform/internal"
	"github.com/cln-solutions/contactform/pkg/mailer"
	"github.com/cln-solutions/contactform/pkg/validator"
)

const subjectPrefix = "Demande de contact CLN - "

// ContactHandler relays contact form submissions by email.
// Receives dependencies via constructor injection.
type ContactHandler struct {
	sender mailer.Sender
	cfg    ContactConfig
}

// NewContactHandler creates a contact handler delivering through sender.
// Empty config fields fall back to DefaultContactConfig.
func NewContactHandler(sender mailer.Sender, cfg ContactConfig) *ContactHandler {
	def := DefaultContactConfig()
	if cfg.Path == "" {
		cfg.Path = def.Path
	}
	if cfg.Address == "" {
		cfg.Address = def.Address
	}
	if cfg.FallbackPage == "" {
		cfg.FallbackPage = def.FallbackPage
	}
	if cfg.SuccessPage == "" {
		cfg.SuccessPage = def.SuccessPage
	}
	return &ContactHandler{sender: sender, cfg: cfg}
}

// Routes declares the form endpoint for every method; submit rejects
// non-POST requests itself so they get the redirect instead of a 405.
func (h *ContactHandler) Routes(r internal.Router) {
	r.Any(h.cfg.Path, h.submit)
}

// submit runs method check, extraction, validation, delivery and redirect.
// It never returns an error: every outcome is a 303.
func (h *ContactHandler) submit(c internal.Context) error {
	if c.Request().Method != http.MethodPost {
		return c.Redirect(http.StatusSeeOther, h.cfg.FallbackPage)
	}

	sub := ParseSubmission(c)
	if err := sub.Validate(); err != nil {
		c.LogInfo("contact form rejected",
			"fields", validator.ExtractValidationErrors(err).Fields(),
		)
		return c.Redirect(http.StatusSeeOther, StatusInvalid.Location(h.cfg.FallbackPage))
	}

	if err := h.sender.Send(c.Context(), h.compose(sub)); err != nil {
		c.LogError("contact form delivery failed", "error", err)
		return c.Redirect(http.StatusSeeOther, StatusError.Location(h.cfg.FallbackPage))
	}

	c.LogInfo("contact form delivered", "has_company", sub.Company != "")
	return c.Redirect(http.StatusSeeOther, StatusSuccess.Location(h.cfg.SuccessPage))
}

// compose builds the notification email for a valid submission.
func (h *ContactHandler) compose(sub Submission) *mailer.Email {
	return &mailer.Email{
		To:      []string{h.cfg.Address},
		From:    mailer.Recipient(h.cfg.SenderName, h.cfg.Address),
		ReplyTo: sub.Email,
		Subject: subjectPrefix + sub.Name,
		Text:    sub.Body(),
		Headers: map[string]string{
			"Content-Type":              "text/plain; charset=UTF-8",
			"Content-Transfer-Encoding": "8bit",
		},
	}
}
