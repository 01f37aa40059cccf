package handlers_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cln-solutions/contactform/handlers"
	"github.com/cln-solutions/contactform/pkg/validator"
)

// values adapts url.Values to handlers.FormReader.
type values url.Values

func (v values) Form(name string) string { return url.Values(v).Get(name) }

func (v values) HasForm(name string) bool {
	_, ok := v[name]
	return ok
}

func TestParseSubmission(t *testing.T) {
	t.Parallel()

	sub := handlers.ParseSubmission(values{
		"name":     {"  Eve\r\nBcc: attacker@evil.com  "},
		"_replyto": {" eve@example.com\n"},
		"company":  {"\tACME\r\n"},
		"message":  {"\n  Ligne 1\rLigne 2\nLigne 3\r\n\r\n"},
		"consent":  {""},
	})

	assert.Equal(t, "EveBcc: attacker@evil.com", sub.Name)
	assert.Equal(t, "eve@example.com", sub.Email)
	assert.Equal(t, "ACME", sub.Company)
	assert.Equal(t, "Ligne 1\r\nLigne 2\r\nLigne 3", sub.Message)
	assert.True(t, sub.Consent)
}

func TestParseSubmission_MissingFields(t *testing.T) {
	t.Parallel()

	sub := handlers.ParseSubmission(values{})
	assert.Equal(t, handlers.Submission{}, sub)
}

func TestSubmission_Validate(t *testing.T) {
	t.Parallel()

	valid := handlers.Submission{
		Name:    "Alice",
		Email:   "alice@example.com",
		Message: "Bonjour",
		Consent: true,
	}
	require.NoError(t, valid.Validate())

	invalid := handlers.Submission{Email: "nope"}
	err := invalid.Validate()
	require.Error(t, err)
	require.ErrorIs(t, err, validator.ErrValidation)
	assert.Equal(t,
		[]string{"name", "_replyto", "message", "consent"},
		validator.ExtractValidationErrors(err).Fields(),
	)
}

func TestSubmission_Body(t *testing.T) {
	t.Parallel()

	t.Run("with company", func(t *testing.T) {
		t.Parallel()

		body := handlers.Submission{
			Name:    "Jean Dupont",
			Email:   "jean@example.fr",
			Company: "CLN",
			Message: "a\r\nb",
			Consent: true,
		}.Body()

		assert.Equal(t, "Nom et prénom : Jean Dupont\r\n"+
			"Email : jean@example.fr\r\n"+
			"Organisation : CLN\r\n"+
			"Consentement : oui\r\n"+
			"\r\n"+
			"Message :\r\n"+
			"a\r\nb\r\n"+
			"\r\n"+
			"—\r\n"+
			"Message envoyé depuis le formulaire CLN (cln-solutions.fr).", body)
	})

	t.Run("without company", func(t *testing.T) {
		t.Parallel()

		body := handlers.Submission{Name: "A", Email: "a@b.co", Message: "m"}.Body()
		assert.Contains(t, body, "\r\nOrganisation : (non renseignée)\r\n")
	})
}

func TestStatus_Location(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "contact.html?status=invalid", handlers.StatusInvalid.Location("contact.html"))
	assert.Equal(t, "merci.html?status=success", handlers.StatusSuccess.Location("merci.html"))
	assert.Equal(t, "/contact?lang=fr&status=error", handlers.StatusError.Location("/contact?lang=fr"))
}
