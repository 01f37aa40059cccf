package validator

import (
	"net/mail"
	"strings"
	"unicode/utf8"
)

// Rule is a single check bound to a field.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply evaluates every rule and returns ValidationErrors for the failing ones,
// or nil when all rules pass.
func Apply(rules ...Rule) error {
	var errs ValidationErrors
	for _, r := range rules {
		if r.Check == nil || r.Check() {
			continue
		}
		errs = append(errs, r.Error)
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// RequiredString fails when value is empty or whitespace only.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool { return strings.TrimSpace(value) != "" },
		Error: ValidationError{
			Field:   field,
			Message: "is required",
		},
	}
}

// ValidEmail fails unless value is a bare email address (see IsEmail).
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool { return IsEmail(value) },
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid email address",
		},
	}
}

// Accepted fails unless value is true. Used for consent checkboxes.
func Accepted(field string, value bool) Rule {
	return Rule{
		Check: func() bool { return value },
		Error: ValidationError{
			Field:   field,
			Message: "must be accepted",
		},
	}
}

const (
	maxEmailLength = 254
	maxLocalLength = 64
)

// IsEmail reports whether s is a bare RFC 5322 addr-spec: no display name,
// no angle brackets, no surrounding whitespace, an ASCII local part and a
// dotted domain whose top-level label starts with a letter.
func IsEmail(s string) bool {
	if s == "" || len(s) > maxEmailLength || strings.TrimSpace(s) != s {
		return false
	}
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Name != "" || addr.Address != s {
		return false
	}

	at := strings.LastIndexByte(s, '@')
	local, domain := s[:at], s[at+1:]
	if len(local) > maxLocalLength || !isASCII(local) {
		return false
	}
	return isHostname(domain)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// isHostname checks for at least two dot-separated LDH labels, the last
// one starting with a letter.
func isHostname(domain string) bool {
	labels := strings.Split(domain, ".")
	if len(labels) < 2 {
		return false
	}
	for _, label := range labels {
		if label == "" || len(label) > 63 {
			return false
		}
		if label[0] == '-' || label[len(label)-1] == '-' {
			return false
		}
		for _, r := range label {
			switch {
			case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			default:
				return false
			}
		}
	}
	tld := labels[len(labels)-1][0]
	return (tld >= 'a' && tld <= 'z') || (tld >= 'A' && tld <= 'Z')
}
