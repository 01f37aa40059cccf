// Package sanitizer normalises untrusted plain-text input before it reaches
// email headers or bodies.
//
// Two shapes of field are handled differently on purpose:
//
//   - SingleLine removes every CR and LF and trims surrounding whitespace.
//     Use it for any value that may end up in a header (names, addresses, subjects).
//   - Multiline trims surrounding whitespace and rewrites every line ending
//     (CRLF, lone CR, lone LF) to CRLF, keeping the line structure intact.
package sanitizer
