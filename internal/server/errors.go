// Package server provides the HTTP API for the portfolio chatbot.
package server

import (
	"fmt"
	"net/http"
)

// ErrValidation indicates a malformed chat request body.
type ErrValidation struct {
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ErrConfiguration indicates a missing or unusable operator-supplied
// configuration value, such as the chat-completion credential.
type ErrConfiguration struct {
	Message string
}

func (e *ErrConfiguration) Error() string {
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
// Downstream service errors are handled separately because their status
// mirrors the upstream response.
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrValidation:
		return http.StatusBadRequest
	case *ErrConfiguration:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
