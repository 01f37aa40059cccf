package mailer

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"mime"
	"net/mail"
	"slices"
	"strings"
	"time"

	"github.com/cln-solutions/contactform/pkg/sanitizer"
)

const (
	defaultContentType      = "text/plain; charset=UTF-8"
	defaultTransferEncoding = "8bit"

	// foldWidth keeps generated header lines near the RFC 5322 recommended 78 octets.
	foldWidth = 76
)

// structural headers are written by WriteMessage itself and ignored in Email.Headers.
var structuralHeaders = []string{"From", "To", "Cc", "Bcc", "Reply-To", "Subject", "Date", "Message-Id", "Mime-Version"}

// EncodeSubject RFC 2047 encodes s (base64, UTF-8) when it contains non-ASCII
// characters and folds the result onto continuation lines. Short ASCII
// subjects are returned unchanged.
func EncodeSubject(s string) string {
	return foldHeader(mime.BEncoding.Encode("UTF-8", s))
}

// foldHeader replaces the space before any word that would push the line
// past foldWidth with CRLF followed by a space. Unfolding restores the
// original value. A single word longer than foldWidth is kept whole.
func foldHeader(v string) string {
	if len(v) <= foldWidth {
		return v
	}

	var b strings.Builder
	b.Grow(len(v) + len(v)/foldWidth*2)
	lineLen := 0
	for i, word := range strings.Split(v, " ") {
		if i > 0 {
			if lineLen+1+len(word) > foldWidth {
				b.WriteString("\r\n ")
				lineLen = 1
			} else {
				b.WriteByte(' ')
				lineLen++
			}
		}
		b.WriteString(word)
		lineLen += len(word)
	}
	return b.String()
}

// WriteMessage serialises email as an RFC 5322 message with CRLF line endings.
// Bcc recipients are never written. Content-Type and Content-Transfer-Encoding
// default to UTF-8 plain text over 8bit unless set in Email.Headers.
func WriteMessage(email *Email, now time.Time) ([]byte, error) {
	if err := email.Validate(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	writeHeader := func(k, v string) {
		buf.WriteString(k)
		buf.WriteString(": ")
		buf.WriteString(v)
		buf.WriteString("\r\n")
	}

	if email.From != "" {
		writeHeader("From", email.From)
	}
	writeHeader("To", strings.Join(email.To, ", "))
	if len(email.CC) > 0 {
		writeHeader("Cc", strings.Join(email.CC, ", "))
	}
	if email.ReplyTo != "" {
		writeHeader("Reply-To", email.ReplyTo)
	}
	writeHeader("Subject", EncodeSubject(email.Subject))
	writeHeader("Date", now.Format(time.RFC1123Z))
	writeHeader("Message-ID", messageID(email.From, now))
	writeHeader("MIME-Version", "1.0")

	if _, ok := email.Header("Content-Type"); !ok {
		writeHeader("Content-Type", defaultContentType)
	}
	if _, ok := email.Header("Content-Transfer-Encoding"); !ok {
		writeHeader("Content-Transfer-Encoding", defaultTransferEncoding)
	}

	keys := make([]string, 0, len(email.Headers))
	for k := range email.Headers {
		if isStructural(k) {
			continue
		}
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		writeHeader(k, email.Headers[k])
	}

	buf.WriteString("\r\n")
	buf.WriteString(sanitizer.NormalizeNewlines(email.Text))
	if !strings.HasSuffix(email.Text, "\n") && !strings.HasSuffix(email.Text, "\r") {
		buf.WriteString("\r\n")
	}

	return buf.Bytes(), nil
}

func isStructural(key string) bool {
	for _, h := range structuralHeaders {
		if strings.EqualFold(h, key) {
			return true
		}
	}
	return false
}

// messageID builds a unique Message-ID on the sender's domain.
func messageID(from string, now time.Time) string {
	domain := "localhost"
	if addr, err := mail.ParseAddress(from); err == nil {
		if at := strings.LastIndexByte(addr.Address, '@'); at >= 0 {
			domain = addr.Address[at+1:]
		}
	}

	var rnd [8]byte
	_, _ = rand.Read(rnd[:])
	return fmt.Sprintf("<%d.%s@%s>", now.UnixNano(), hex.EncodeToString(rnd[:]), domain)
}
