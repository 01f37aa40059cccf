package validator_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cln-solutions/contactform/pkg/validator"
)

func TestIsEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "simple address", input: "alice@example.com", want: true},
		{name: "plus tag and subdomain", input: "alice+contact@mail.example.co.uk", want: true},
		{name: "dots in local part", input: "alice.martin@example.fr", want: true},
		{name: "empty", input: "", want: false},
		{name: "no at sign", input: "not-an-email", want: false},
		{name: "missing local part", input: "@example.com", want: false},
		{name: "missing domain", input: "alice@", want: false},
		{name: "dotless domain", input: "alice@localhost", want: false},
		{name: "display name", input: "Alice <alice@example.com>", want: false},
		{name: "angle brackets only", input: "<alice@example.com>", want: false},
		{name: "surrounding space", input: " alice@example.com", want: false},
		{name: "two at signs", input: "alice@@example.com", want: false},
		{name: "empty domain label", input: "alice@example..com", want: false},
		{name: "label starting with hyphen", input: "alice@-example.com", want: false},
		{name: "embedded newline", input: "alice@example.com\r\nBcc: eve@evil.com", want: false},
		{name: "numeric top-level label", input: "a@b.123", want: false},
		{name: "non-ASCII local part", input: "élodie@example.fr", want: false},
		{name: "digits inside domain", input: "a@b2.example.fr", want: true},
		{name: "local part too long", input: strings.Repeat("a", 65) + "@example.com", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, validator.IsEmail(tt.input))
		})
	}
}

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("returns nil when every rule passes", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(
			validator.RequiredString("name", "Alice"),
			validator.ValidEmail("email", "alice@example.com"),
			validator.Accepted("consent", true),
		)
		require.NoError(t, err)
	})

	t.Run("collects every failing rule in order", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(
			validator.RequiredString("name", "   "),
			validator.ValidEmail("email", "nope"),
			validator.RequiredString("message", "hello"),
			validator.Accepted("consent", false),
		)
		require.Error(t, err)
		require.True(t, errors.Is(err, validator.ErrValidation))

		ve := validator.ExtractValidationErrors(err)
		require.Len(t, ve, 3)
		assert.Equal(t, []string{"name", "email", "consent"}, ve.Fields())
		assert.Equal(t, "must be a valid email address", ve[1].Message)
	})

	t.Run("survives wrapping", func(t *testing.T) {
		t.Parallel()
		err := fmt.Errorf("submission: %w", validator.Apply(validator.RequiredString("name", "")))
		assert.Equal(t, []string{"name"}, validator.ExtractValidationErrors(err).Fields())
		assert.Contains(t, err.Error(), "name: is required")
	})

	t.Run("plain errors are not validation errors", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, validator.ExtractValidationErrors(errors.New("boom")))
		assert.Nil(t, validator.ExtractValidationErrors(nil))
	})
}
