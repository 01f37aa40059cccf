package mailer

import (
	"fmt"
	"net/mail"
	"strings"
)

// Recipient formats a name and email into RFC 5322 address format.
// Returns "Name <email>" if name is provided, otherwise just email.
// Names with characters outside letters, digits and spaces are quoted
// or RFC 2047 encoded.
func Recipient(name, email string) string {
	if name == "" {
		return email
	}
	if isPlainPhrase(name) {
		return fmt.Sprintf("%s <%s>", name, email)
	}
	return (&mail.Address{Name: name, Address: email}).String()
}

func isPlainPhrase(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == ' ':
		default:
			return false
		}
	}
	return true
}

// Email represents a fully-prepared email message ready for sending.
type Email struct {
	Headers map[string]string // Custom headers (e.g. X-Mailer, Content-Type)
	Subject string            // Email subject, unencoded UTF-8
	Text    string            // Plain text body
	From    string            // Sender; Mailer fills the configured default when empty
	ReplyTo string            // Reply-to address
	To      []string          // Recipients (at least one required)
	CC      []string          // Carbon copy recipients
	BCC     []string          // Blind carbon copy recipients
}

// Recipients returns To, CC and BCC combined, in that order.
func (e *Email) Recipients() []string {
	all := make([]string, 0, len(e.To)+len(e.CC)+len(e.BCC))
	all = append(all, e.To...)
	all = append(all, e.CC...)
	return append(all, e.BCC...)
}

// Header returns the custom header value for key, matched case-insensitively.
func (e *Email) Header(key string) (string, bool) {
	for k, v := range e.Headers {
		if strings.EqualFold(k, key) {
			return v, true
		}
	}
	return "", false
}

// SetHeader sets a custom header, replacing any existing key that differs only in case.
func (e *Email) SetHeader(key, value string) {
	if e.Headers == nil {
		e.Headers = make(map[string]string)
	}
	for k := range e.Headers {
		if strings.EqualFold(k, key) {
			delete(e.Headers, k)
		}
	}
	e.Headers[key] = value
}

// Validate checks the message has recipients, a subject and a body,
// and that no header-bound value carries a line break.
func (e *Email) Validate() error {
	if len(e.To) == 0 {
		return ErrNoRecipient
	}
	if e.Subject == "" {
		return ErrNoSubject
	}
	if strings.TrimSpace(e.Text) == "" {
		return ErrNoContent
	}

	fields := map[string]string{
		"From":     e.From,
		"Reply-To": e.ReplyTo,
		"Subject":  e.Subject,
	}
	for name, v := range fields {
		if hasLineBreak(v) {
			return fmt.Errorf("%w: %s", ErrHeaderInjection, name)
		}
	}
	for _, addr := range e.Recipients() {
		if hasLineBreak(addr) {
			return fmt.Errorf("%w: recipient", ErrHeaderInjection)
		}
	}
	for k, v := range e.Headers {
		if hasLineBreak(k) || hasLineBreak(v) {
			return fmt.Errorf("%w: custom header", ErrHeaderInjection)
		}
	}
	return nil
}

func hasLineBreak(s string) bool {
	return strings.ContainsAny(s, "\r\n")
}
