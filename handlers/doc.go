// Package handlers holds the HTTP handlers of the contact form service.
//
// ContactHandler accepts the contact form POST, validates the submission,
// mails it to the configured mailbox and redirects the browser to a static
// page whose status query parameter reports the outcome:
//
//	merci.html?status=success
//	contact.html?status=invalid
//	contact.html?status=error
//
// Any other method is redirected to the fallback page without a status.
// Failures never produce an HTTP error status or a response body.
package handlers
