package utils

import (
	"errors"
	"fmt"
)

// StatusError reports a non-2xx response from the users service.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("Code: %d, Message: %s", e.Code, e.Status)
}

func NewStatusError(code int, status string) error {
	return &StatusError{
		Code:   code,
		Status: status,
	}
}

// StatusCode returns the HTTP status carried by err, or 0 when err is not a StatusError.
func StatusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code
	}
	return 0
}
