package server

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"validation", &ErrValidation{Message: "message is required"}, http.StatusBadRequest},
		{"configuration", &ErrConfiguration{Message: "missing credential"}, http.StatusInternalServerError},
		{"unknown", errors.New("anything else"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	assert.Contains(t, (&ErrValidation{Message: "bad body"}).Error(), "bad body")
	assert.Contains(t, (&ErrConfiguration{Message: "no key"}).Error(), "no key")
}
