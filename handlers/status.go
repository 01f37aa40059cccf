package handlers

import "strings"

// Status is the outcome reported to the static pages through the
// "status" query parameter.
type Status string

const (
	StatusInvalid Status = "invalid"
	StatusError   Status = "error"
	StatusSuccess Status = "success"
)

// Location returns page with the status query parameter appended.
func (s Status) Location(page string) string {
	sep := "?"
	if strings.Contains(page, "?") {
		sep = "&"
	}
	return page + sep + "status=" + string(s)
}
