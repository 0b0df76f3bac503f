package homework

import (
	"errors"
	"fmt"
)

// Error kinds returned while fetching and interpreting homework statuses.
// Callers match them with errors.Is / errors.As.
var (
	ErrTransientFetch    = errors.New("homework API request failed")
	ErrMalformedResponse = errors.New("homework API returned malformed body")
	ErrSchema            = errors.New("unexpected homework payload shape")
	ErrUnknownVerdict    = errors.New("unknown homework status")
	ErrNoHomeworks       = errors.New("no homeworks in response")
	ErrDelivery          = errors.New("notification delivery failed")
)

// UnexpectedStatusError is returned when the homework API answers with
// anything other than 200 OK.
type UnexpectedStatusError struct {
	StatusCode int
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("homework API responded with status %d", e.StatusCode)
}

func schemaError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrSchema, fmt.Sprintf(format, args...))
}
