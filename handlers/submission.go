package handlers

import (
	"strings"

	"github.com/cln-solutions/contactform/pkg/sanitizer"
	"github.com/cln-solutions/contactform/pkg/validator"
)

// Form keys posted by the contact page.
const (
	fieldName    = "name"
	fieldEmail   = "_replyto"
	fieldCompany = "company"
	fieldMessage = "message"
	fieldConsent = "consent"
)

const noCompany = "(non renseignée)"

// FormReader reads values from a request body.
// internal.Context satisfies it.
type FormReader interface {
	Form(name string) string
	HasForm(name string) bool
}

// Submission is a sanitized contact form submission.
type Submission struct {
	Name    string
	Email   string
	Company string
	Message string // CRLF line endings
	Consent bool
}

// ParseSubmission extracts and sanitizes the form fields.
// Line breaks are removed from the single-line fields since they end up in
// mail headers; the message keeps its lines, normalized to CRLF.
// Consent is true whenever the key is present, whatever its value.
func ParseSubmission(f FormReader) Submission {
	return Submission{
		Name:    sanitizer.SingleLine(f.Form(fieldName)),
		Email:   sanitizer.SingleLine(f.Form(fieldEmail)),
		Company: sanitizer.SingleLine(f.Form(fieldCompany)),
		Message: sanitizer.Multiline(f.Form(fieldMessage)),
		Consent: f.HasForm(fieldConsent),
	}
}

// Validate returns validator.ValidationErrors naming every failing field,
// or nil when the submission can be sent.
func (s Submission) Validate() error {
	return validator.Apply(
		validator.RequiredString(fieldName, s.Name),
		validator.ValidEmail(fieldEmail, s.Email),
		validator.RequiredString(fieldMessage, s.Message),
		validator.Accepted(fieldConsent, s.Consent),
	)
}

// Body renders the plain text notification, lines joined with CRLF.
func (s Submission) Body() string {
	company := s.Company
	if company == "" {
		company = noCompany
	}

	return strings.Join([]string{
		"Nom et prénom : " + s.Name,
		"Email : " + s.Email,
		"Organisation : " + company,
		"Consentement : oui",
		"",
		"Message :",
		s.Message,
		"",
		"—",
		"Message envoyé depuis le formulaire CLN (cln-solutions.fr).",
	}, "\r\n")
}
