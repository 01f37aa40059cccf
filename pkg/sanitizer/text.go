package sanitizer

import "strings"

const crlf = "\r\n"

var lineBreakRemover = strings.NewReplacer("\r", "", "\n", "")

// StripLineBreaks removes every CR and LF character from s.
func StripLineBreaks(s string) string {
	return lineBreakRemover.Replace(s)
}

// SingleLine strips CR/LF characters, then trims surrounding whitespace.
func SingleLine(s string) string {
	return strings.TrimSpace(StripLineBreaks(s))
}

// NormalizeNewlines rewrites CRLF, lone CR and lone LF to CRLF.
func NormalizeNewlines(s string) string {
	if !strings.ContainsAny(s, "\r\n") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + strings.Count(s, "\n"))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\r':
			b.WriteString(crlf)
			if i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
		case '\n':
			b.WriteString(crlf)
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// Multiline trims surrounding whitespace and normalises line endings to CRLF.
func Multiline(s string) string {
	return NormalizeNewlines(strings.TrimSpace(s))
}
