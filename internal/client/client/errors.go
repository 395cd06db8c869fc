package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnauthorized means the server rejected the credential (HTTP 401).
	ErrUnauthorized = errors.New("unauthorized")
	// ErrValidation means the server refused the request (any other 4xx).
	ErrValidation = errors.New("request rejected")
	// ErrUnavailable covers transport failures and 5xx responses.
	ErrUnavailable = errors.New("server unavailable")
)

// APIError is a non-2xx response. Message is the server's "error" text when
// it sent one, otherwise the standard status text.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d %s", e.Status, e.Message)
}

// Is matches the sentinel for the status class.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	case ErrValidation:
		return e.Status >= 400 && e.Status < 500 && e.Status != http.StatusUnauthorized
	case ErrUnavailable:
		return e.Status >= 500 || e.Status < 400
	}
	return false
}
