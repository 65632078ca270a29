package datastore

import (
	"errors"
	"fmt"
	"net/http"
)

// NetworkError is the single failure kind of the client: the request could not
// be completed or the Data Store answered with an unexpected status.
type NetworkError struct {
	Method     string
	URL        string
	StatusCode int // 0 when no response was received
	Message    string
	Err        error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Method, e.URL, e.Message)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is a 404 answer from the Data Store.
func IsNotFound(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr) && netErr.StatusCode == http.StatusNotFound
}

// Message extracts the user facing message of a NetworkError, falling back to err.Error().
func Message(err error) string {
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return netErr.Message
	}
	return err.Error()
}
