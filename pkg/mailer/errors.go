package mailer

import "errors"

var (
	// ErrNoRecipient indicates no recipient was specified.
	ErrNoRecipient = errors.New("email must have at least one recipient")

	// ErrNoSubject indicates no subject was provided.
	ErrNoSubject = errors.New("email must have a subject")

	// ErrNoContent indicates the text body is empty.
	ErrNoContent = errors.New("email must have text content")

	// ErrHeaderInjection indicates a header value contains CR or LF.
	ErrHeaderInjection = errors.New("email header contains a line break")

	// ErrSendFailed indicates email sending failed.
	ErrSendFailed = errors.New("failed to send email")
)
