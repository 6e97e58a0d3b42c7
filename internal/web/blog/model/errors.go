package model

import (
	"fmt"

	"github.com/Laisky/errors/v2"
)

// ErrInvalidCredentials indicates the login credentials are invalid.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrNotFound indicates the referenced record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrRateLimited indicates the submitter exceeded the comment rate limit.
var ErrRateLimited = errors.New("too many comments, please wait before submitting again")

// ValidationError is a client-caused failure carrying a user-facing message.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError formats a user-facing validation failure.
func NewValidationError(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
