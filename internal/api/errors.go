package api

import "fmt"

// ServerError is a non-2xx response carrying an {"error": ...} body.
// The message is surfaced verbatim to the user (e.g. attempting to delete
// a protected category).
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server returned status %d", e.StatusCode)
}
