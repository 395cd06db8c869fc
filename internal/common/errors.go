package common

import "errors"

var (
	// ErrorInvalidInput marks malformed user input caught before any request is sent.
	ErrorInvalidInput = errors.New("invalid input")

	// ErrInvalidToken means a stored credential could not be decoded for display.
	ErrInvalidToken = errors.New("invalid token")
)
