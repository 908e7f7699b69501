package intake

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidLink is deliberately generic: the public endpoints answer the
	// same way for a malformed token and a token that matches nothing, so
	// callers can't probe which tokens exist.
	ErrInvalidLink = errors.New("invalid intake link")

	ErrAlreadySubmitted    = errors.New("this intake form has already been submitted")
	ErrLinkExpired         = errors.New("this intake link has expired")
	ErrIntakeNotFound      = errors.New("intake not found")
	ErrInvalidStatusFilter = errors.New("status filter must be COMPLETED or FLAGGED")
)

// ValidationError reports every missing required field in one pass.
type ValidationError struct {
	MissingFields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.MissingFields, ", "))
}
